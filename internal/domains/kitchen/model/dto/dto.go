package dto

import (
	"frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/domains/order"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateKitchenOrderRequest struct {
	GuestType string  `json:"guest_type" validate:"required,oneof=lodged walk_in"`
	BookingID string  `json:"booking_id" validate:"required_if=GuestType lodged,omitempty,uuid"`
	GuestName string  `json:"guest_name" validate:"required_if=GuestType walk_in,omitempty,max=100"`
	FoodName  string  `json:"food_name"  validate:"required,max=100"`
	UnitPrice float64 `json:"unit_price" validate:"required,gte=0"`
	Quantity  int     `json:"quantity"   validate:"required,gte=1"`
}

func (c *CreateKitchenOrderRequest) ToModel(user, guestName, roomNumber string, bookingID *string, billingType order.BillingType) model.KitchenOrder {
	return model.KitchenOrder{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		GuestType:   order.GuestType(c.GuestType),
		GuestName:   guestName,
		RoomNumber:  roomNumber,
		FoodName:    c.FoodName,
		UnitPrice:   c.UnitPrice,
		Quantity:    c.Quantity,
		TotalAmount: order.ComputeTotal(c.UnitPrice, c.Quantity),
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
	Status string `json:"status" validate:"required,oneof=preparing ready delivered completed"`
}

type KitchenOrderResponse struct {
	ID          string  `json:"id"`
	BookingID   *string `json:"booking_id,omitempty"`
	GuestType   string  `json:"guest_type"`
	GuestName   string  `json:"guest_name"`
	RoomNumber  string  `json:"room_number,omitempty"`
	FoodName    string  `json:"food_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	BillingType string  `json:"billing_type"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *KitchenOrderResponse) FromModel(model model.KitchenOrder) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.GuestType = string(model.GuestType)
	r.GuestName = model.GuestName
	r.RoomNumber = model.RoomNumber
	r.FoodName = model.FoodName
	r.UnitPrice = model.UnitPrice
	r.Quantity = model.Quantity
	r.TotalAmount = model.TotalAmount
	r.BillingType = string(model.BillingType)
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetKitchenOrdersResponse struct {
	Orders    []KitchenOrderResponse `json:"orders"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetKitchenOrdersResponse) FromModels(models []model.KitchenOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]KitchenOrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
