package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate(t *testing.T) {
	start := day(2025, 3, 10)
	end := day(2025, 3, 12)

	bookings := []bookingModel.Booking{
		{
			Status:      bookingModel.StatusActive,
			TotalAmount: 40000,
			RoomType:    roomModel.TypeDeluxe,
			CheckIn:     day(2025, 3, 10),
			CheckOut:    day(2025, 3, 12),
		},
		{
			Status:      bookingModel.StatusCompleted,
			TotalAmount: 20000,
			RoomType:    roomModel.TypeStandard,
			CheckIn:     day(2025, 3, 9),
			CheckOut:    day(2025, 3, 10),
		},
		{
			Status:      bookingModel.StatusCancelled,
			TotalAmount: 60000,
			RoomType:    roomModel.TypeDeluxe,
			CheckIn:     day(2025, 3, 10),
			CheckOut:    day(2025, 3, 12),
		},
	}

	res := aggregate(bookings, 10, start, end)

	assert.Equal(t, 3, res.TotalBookings)
	assert.Equal(t, 1, res.ActiveBookings)
	assert.Equal(t, 1, res.CompletedBookings)
	assert.Equal(t, 1, res.CancelledBookings)

	assert.InDelta(t, 120000, res.TotalRevenue, 0.001)
	assert.InDelta(t, 40000, res.AverageBookingValue, 0.001)
	assert.InDelta(t, 100000, res.RevenueByRoomType[roomModel.TypeDeluxe], 0.001)
	assert.InDelta(t, 20000, res.RevenueByRoomType[roomModel.TypeStandard], 0.001)

	assert.Len(t, res.DailyOccupancy, 3)

	// March 10: active booking plus the completed one checking out that day.
	// The cancelled booking never counts.
	assert.Equal(t, 2, res.DailyOccupancy[0].Occupied)
	assert.InDelta(t, 20, res.DailyOccupancy[0].Rate, 0.001)

	assert.Equal(t, 1, res.DailyOccupancy[1].Occupied)
	assert.Equal(t, 1, res.DailyOccupancy[2].Occupied)
}

func TestAggregate_Empty(t *testing.T) {
	res := aggregate(nil, 0, day(2025, 3, 10), day(2025, 3, 10))

	assert.Equal(t, 0, res.TotalBookings)
	assert.Zero(t, res.AverageBookingValue)

	assert.Len(t, res.DailyOccupancy, 1)
	assert.Zero(t, res.DailyOccupancy[0].Occupied)
	assert.Zero(t, res.DailyOccupancy[0].Rate)
}

func TestRenderCSV(t *testing.T) {
	bookings := []bookingModel.Booking{
		{
			Status:   bookingModel.StatusActive,
			CheckIn:  day(2025, 3, 10),
			CheckOut: day(2025, 3, 11),
		},
	}

	daily := dailyOccupancy(bookings, 4, day(2025, 3, 10), day(2025, 3, 11))

	data, err := renderCSV(daily)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "date,occupied_rooms,total_rooms,occupancy_rate", lines[0])
	assert.Equal(t, "2025-03-10,1,4,25.00%", lines[1])
	assert.Equal(t, "2025-03-11,1,4,25.00%", lines[2])
}
