package model

import (
	"frontdesk/internal/domains/order"
	"frontdesk/shared/model"
)

const (
	TableName  = "kitchen_orders"
	EntityName = "kitchen_order"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldGuestType   = "guest_type"
	FieldGuestName   = "guest_name"
	FieldRoomNumber  = "room_number"
	FieldFoodName    = "food_name"
	FieldUnitPrice   = "unit_price"
	FieldQuantity    = "quantity"
	FieldTotalAmount = "total_amount"
	FieldBillingType = "billing_type"
	FieldStatus      = "status"
)

type KitchenOrder struct {
	ID          string            `db:"id"`
	BookingID   *string           `db:"booking_id"`
	GuestType   order.GuestType   `db:"guest_type"`
	GuestName   string            `db:"guest_name"`
	RoomNumber  string            `db:"room_number"`
	FoodName    string            `db:"food_name"`
	UnitPrice   float64           `db:"unit_price"`
	Quantity    int               `db:"quantity"`
	TotalAmount float64           `db:"total_amount"`
	BillingType order.BillingType `db:"billing_type"`
	Status      order.Status      `db:"status"`
	model.Metadata
}
