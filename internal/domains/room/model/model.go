package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldType       = "type"
	FieldRate       = "rate"
	FieldStatus     = "status"
)

const (
	TypeStandard  = "standard"
	TypeDeluxe    = "deluxe"
	TypeSuite     = "suite"
	TypeExecutive = "executive"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string  `db:"id"`
	RoomNumber string  `db:"room_number"`
	Type       string  `db:"type"`
	Rate       float64 `db:"rate"`
	Status     string  `db:"status"`
	model.Metadata
}
