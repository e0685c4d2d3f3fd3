package receipt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	barMocks "frontdesk/internal/domains/bar/mocks"
	barModel "frontdesk/internal/domains/bar/model"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	kitchenMocks "frontdesk/internal/domains/kitchen/mocks"
	kitchenModel "frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/receipt"
	"frontdesk/shared/failure"
)

func TestService_BookingReceipt(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(bookings *bookingMocks.MockBooking)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(bookings *bookingMocks.MockBooking) {
				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{
						ID:          "booking-id-1",
						GuestName:   "Ada Obi",
						RoomNumber:  "204",
						RoomType:    "deluxe",
						TotalAmount: 40000,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown id renders nothing",
			setupMock: func(bookings *bookingMocks.MockBooking) {
				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(bookings *bookingMocks.MockBooking) {
				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, assert.AnError)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockKitchen := kitchenMocks.NewMockKitchenOrder(ctrl)
			mockBar := barMocks.NewMockBarOrder(ctrl)
			svc := receipt.NewService(newRenderer(t), mockBookings, mockKitchen, mockBar, mocks.NewOtel())

			tt.setupMock(mockBookings)

			data, err := svc.BookingReceipt(context.Background(), "booking-id-1", receipt.LayoutFull)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, data)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, string(data), "Ada Obi")
			assert.Contains(t, string(data), "₦40,000")
		})
	}
}

func TestService_KitchenReceipt_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockKitchen := kitchenMocks.NewMockKitchenOrder(ctrl)
	mockBar := barMocks.NewMockBarOrder(ctrl)
	svc := receipt.NewService(newRenderer(t), mockBookings, mockKitchen, mockBar, mocks.NewOtel())

	mockKitchen.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(kitchenModel.KitchenOrder{}, nil)

	data, err := svc.KitchenReceipt(context.Background(), "missing-id", receipt.LayoutCompact)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestService_BarReceipt_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockKitchen := kitchenMocks.NewMockKitchenOrder(ctrl)
	mockBar := barMocks.NewMockBarOrder(ctrl)
	svc := receipt.NewService(newRenderer(t), mockBookings, mockKitchen, mockBar, mocks.NewOtel())

	mockBar.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(barModel.BarOrder{}, nil)

	data, err := svc.BarReceipt(context.Background(), "missing-id", receipt.LayoutCompact)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 404, failure.GetCode(err))
}
