package model

import (
	"frontdesk/internal/domains/order"
	"frontdesk/shared/model"
)

const (
	TableName  = "bar_orders"
	EntityName = "bar_order"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldGuestType   = "guest_type"
	FieldGuestName   = "guest_name"
	FieldRoomNumber  = "room_number"
	FieldDrinkID     = "drink_id"
	FieldDrinkName   = "drink_name"
	FieldUnitPrice   = "unit_price"
	FieldQuantity    = "quantity"
	FieldTotalAmount = "total_amount"
	FieldBillingType = "billing_type"
	FieldStatus      = "status"
)

// BarOrder snapshots the drink name and price at order time; later catalog
// edits do not rewrite history.
type BarOrder struct {
	ID          string            `db:"id"`
	BookingID   *string           `db:"booking_id"`
	GuestType   order.GuestType   `db:"guest_type"`
	GuestName   string            `db:"guest_name"`
	RoomNumber  string            `db:"room_number"`
	DrinkID     string            `db:"drink_id"`
	DrinkName   string            `db:"drink_name"`
	UnitPrice   float64           `db:"unit_price"`
	Quantity    int               `db:"quantity"`
	TotalAmount float64           `db:"total_amount"`
	BillingType order.BillingType `db:"billing_type"`
	Status      order.Status      `db:"status"`
	model.Metadata
}
