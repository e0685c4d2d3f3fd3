package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/money"
)

// aggregate folds a set of bookings that overlap [start, end] into the
// occupancy report. Pure so it can be tested without a database.
func aggregate(bookings []bookingModel.Booking, totalRooms int, start, end time.Time) dto.OccupancyReportResponse {
	res := dto.OccupancyReportResponse{
		Start:             start.Format(constant.DateOnlyFormat),
		End:               end.Format(constant.DateOnlyFormat),
		TotalBookings:     len(bookings),
		RevenueByRoomType: map[string]float64{},
	}

	for _, booking := range bookings {
		switch booking.Status {
		case bookingModel.StatusActive:
			res.ActiveBookings++
		case bookingModel.StatusCompleted:
			res.CompletedBookings++
		case bookingModel.StatusCancelled:
			res.CancelledBookings++
		}

		res.TotalRevenue += booking.TotalAmount
		res.RevenueByRoomType[booking.RoomType] += booking.TotalAmount
	}

	if res.TotalBookings > 0 {
		res.AverageBookingValue = res.TotalRevenue / float64(res.TotalBookings)
	}

	res.DailyOccupancy = dailyOccupancy(bookings, totalRooms, start, end)

	return res
}

// dailyOccupancy counts, for every day of the range, the non-cancelled
// bookings whose stay contains that day.
func dailyOccupancy(bookings []bookingModel.Booking, totalRooms int, start, end time.Time) []dto.DayOccupancy {
	var days []dto.DayOccupancy

	for day := truncateToDay(start); !day.After(truncateToDay(end)); day = day.AddDate(0, 0, 1) {
		occupied := 0

		for _, booking := range bookings {
			if booking.Status == bookingModel.StatusCancelled {
				continue
			}

			if containsDay(booking.CheckIn, booking.CheckOut, day) {
				occupied++
			}
		}

		rate := 0.0
		if totalRooms > 0 {
			rate = float64(occupied) / float64(totalRooms) * 100
		}

		days = append(days, dto.DayOccupancy{
			Date:       day.Format(constant.DateOnlyFormat),
			Occupied:   occupied,
			TotalRooms: totalRooms,
			Rate:       rate,
		})
	}

	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsDay(checkIn, checkOut, day time.Time) bool {
	return !truncateToDay(checkIn).After(day) && !truncateToDay(checkOut).Before(day)
}

// renderCSV writes the occupancy table in the export layout: one row per
// day with the occupancy rate as a percentage.
func renderCSV(daily []dto.DayOccupancy) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"date", "occupied_rooms", "total_rooms", "occupancy_rate"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, day := range daily {
		record := []string{
			day.Date,
			strconv.Itoa(day.Occupied),
			strconv.Itoa(day.TotalRooms),
			money.Percent(day.Rate),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
