package dto

type OccupancyReportRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
}

type DayOccupancy struct {
	Date       string  `json:"date"`
	Occupied   int     `json:"occupied"`
	TotalRooms int     `json:"total_rooms"`
	Rate       float64 `json:"rate"`
}

type OccupancyReportResponse struct {
	Start               string             `json:"start"`
	End                 string             `json:"end"`
	TotalBookings       int                `json:"total_bookings"`
	ActiveBookings      int                `json:"active_bookings"`
	CompletedBookings   int                `json:"completed_bookings"`
	CancelledBookings   int                `json:"cancelled_bookings"`
	TotalRevenue        float64            `json:"total_revenue"`
	AverageBookingValue float64            `json:"average_booking_value"`
	RevenueByRoomType   map[string]float64 `json:"revenue_by_room_type"`
	DailyOccupancy      []DayOccupancy     `json:"daily_occupancy"`
	ArchiveURL          string             `json:"archive_url,omitempty"`
}
