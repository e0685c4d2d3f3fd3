package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required,uuid"`
	GuestID       string `json:"guest_id"       validate:"required,uuid"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=paid unpaid"`
}

func (c *CreateBookingRequest) Parse() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(constant.DateFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalAmount float64) model.Booking {
	paymentStatus := model.PaymentStatusUnpaid
	if c.PaymentStatus != "" {
		paymentStatus = c.PaymentStatus
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		GuestID:       c.GuestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   totalAmount,
		Status:        model.StatusActive,
		PaymentStatus: paymentStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"omitempty,uuid"`
	GuestID       string `db:"guest_id"        json:"guest_id"       validate:"omitempty,uuid"`
	CheckIn       string `json:"check_in"       validate:"omitempty"`
	CheckOut      string `json:"check_out"      validate:"omitempty"`
	Status        string `db:"status"          json:"status"         validate:"omitempty,oneof=active completed cancelled"`
	PaymentStatus string `db:"payment_status"  json:"payment_status" validate:"omitempty,oneof=paid unpaid"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	GuestID       string  `json:"guest_id"`
	GuestName     string  `json:"guest_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.Nights = modelNights(model)
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

func modelNights(mod model.Booking) int {
	return model.Nights(mod.CheckIn, mod.CheckOut)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
