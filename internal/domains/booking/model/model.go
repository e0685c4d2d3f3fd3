package model

import (
	"math"
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldGuestID       = "guest_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldTotalAmount   = "total_amount"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// transitions lists the legal status changes. Completed and cancelled
// are terminal.
var transitions = map[string][]string{
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	for _, next := range allowed {
		if next == to {
			return true
		}
	}

	return false
}

// Nights charges any partial day as a full night.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()

	return int(math.Ceil(hours / 24))
}

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	GuestID       string    `db:"guest_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	TotalAmount   float64   `db:"total_amount"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	RoomNumber    string    `db:"room_number" table:"rooms"`
	RoomType      string    `db:"room_type"   table:"rooms" column:"type"`
	GuestName     string    `db:"guest_name"  table:"guests" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id JOIN guests ON guests.id = bookings.guest_id"
}

// ExpiredBooking is the sweep result row.
type ExpiredBooking struct {
	ID     string `db:"id"`
	RoomID string `db:"room_id"`
}
