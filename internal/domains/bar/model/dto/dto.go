package dto

import (
	"frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/order"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBarOrderRequest struct {
	GuestType string `json:"guest_type" validate:"required,oneof=lodged walk_in"`
	BookingID string `json:"booking_id" validate:"required_if=GuestType lodged,omitempty,uuid"`
	GuestName string `json:"guest_name" validate:"required_if=GuestType walk_in,omitempty,max=100"`
	DrinkID   string `json:"drink_id"   validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gte=1"`
}

func (c *CreateBarOrderRequest) ToModel(user, guestName, roomNumber, drinkName string, unitPrice float64, bookingID *string, billingType order.BillingType) model.BarOrder {
	return model.BarOrder{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		GuestType:   order.GuestType(c.GuestType),
		GuestName:   guestName,
		RoomNumber:  roomNumber,
		DrinkID:     c.DrinkID,
		DrinkName:   drinkName,
		UnitPrice:   unitPrice,
		Quantity:    c.Quantity,
		TotalAmount: order.ComputeTotal(unitPrice, c.Quantity),
		BillingType: billingType,
		Status:      order.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing ready served completed"`
}

type BarOrderResponse struct {
	ID          string  `json:"id"`
	BookingID   *string `json:"booking_id,omitempty"`
	GuestType   string  `json:"guest_type"`
	GuestName   string  `json:"guest_name"`
	RoomNumber  string  `json:"room_number,omitempty"`
	DrinkID     string  `json:"drink_id"`
	DrinkName   string  `json:"drink_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	BillingType string  `json:"billing_type"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *BarOrderResponse) FromModel(model model.BarOrder) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestType = string(model.GuestType)
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
	r.DrinkID = model.DrinkID
	r.DrinkName = model.DrinkName
	r.UnitPrice = model.UnitPrice
	r.Quantity = model.Quantity
	r.TotalAmount = model.TotalAmount
	r.BillingType = string(model.BillingType)
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBarOrdersResponse struct {
	Orders    []BarOrderResponse `json:"orders"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetBarOrdersResponse) FromModels(models []model.BarOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]BarOrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
