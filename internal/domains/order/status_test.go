package order_test

import (
	"testing"

	"frontdesk/internal/domains/order"

	"github.com/stretchr/testify/assert"
)

func TestFlow_Validate(t *testing.T) {
	tests := []struct {
		name      string
		flow      order.Flow
		current   order.Status
		requested order.Status
		wantErr   bool
	}{
		{"kitchen pending to preparing", order.KitchenFlow, order.StatusPending, order.StatusPreparing, false},
		{"kitchen preparing to ready", order.KitchenFlow, order.StatusPreparing, order.StatusReady, false},
		{"kitchen ready to delivered", order.KitchenFlow, order.StatusReady, order.StatusDelivered, false},
		{"kitchen delivered to completed", order.KitchenFlow, order.StatusDelivered, order.StatusCompleted, false},
		{"kitchen ready to served is illegal", order.KitchenFlow, order.StatusReady, order.StatusServed, true},
		{"kitchen skip a step", order.KitchenFlow, order.StatusPending, order.StatusReady, true},
		{"kitchen backwards", order.KitchenFlow, order.StatusReady, order.StatusPreparing, true},
		{"kitchen completed is terminal", order.KitchenFlow, order.StatusCompleted, order.StatusPending, true},
		{"bar ready to served", order.BarFlow, order.StatusReady, order.StatusServed, false},
		{"bar served to completed", order.BarFlow, order.StatusServed, order.StatusCompleted, false},
		{"bar ready to delivered is illegal", order.BarFlow, order.StatusReady, order.StatusDelivered, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flow.Validate(tt.current, tt.requested)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFlow_Next(t *testing.T) {
	next, ok := order.BarFlow.Next(order.StatusReady)
	assert.True(t, ok)
	assert.Equal(t, order.StatusServed, next)

	_, ok = order.BarFlow.Next(order.StatusCompleted)
	assert.False(t, ok)
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 4500.0, order.ComputeTotal(1500, 3))
	assert.Equal(t, 0.0, order.ComputeTotal(1500, 0))
}
