package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
)

func TestNights(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "exactly two days",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 2),
			want:     2,
		},
		{
			name:     "partial day rounds up",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 1).Add(3 * time.Hour),
			want:     2,
		},
		{
			name:     "under one day is one night",
			checkIn:  base,
			checkOut: base.Add(5 * time.Hour),
			want:     1,
		},
		{
			name:     "exactly one day",
			checkIn:  base,
			checkOut: base.AddDate(0, 0, 1),
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"active to completed", model.StatusActive, model.StatusCompleted, true},
		{"active to cancelled", model.StatusActive, model.StatusCancelled, true},
		{"completed is terminal", model.StatusCompleted, model.StatusActive, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusActive, false},
		{"completed to cancelled", model.StatusCompleted, model.StatusCancelled, false},
		{"unknown status", "archived", model.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
