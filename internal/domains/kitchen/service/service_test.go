package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	kitchenMocks "frontdesk/internal/domains/kitchen/mocks"
	"frontdesk/internal/domains/kitchen/model"
	"frontdesk/internal/domains/kitchen/model/dto"
	"frontdesk/internal/domains/kitchen/service"
	"frontdesk/internal/domains/order"
	"frontdesk/internal/printer"
	printerMocks "frontdesk/internal/printer/mocks"
	"frontdesk/shared/cache"
)

type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (noopCache) Delete(_ context.Context, _ string) error            { return nil }
func (noopCache) Clear(_ context.Context, _ string) error             { return nil }

func TestKitchenOrderService_Create(t *testing.T) {
	lodgedBooking := bookingModel.Booking{
		ID:            "booking-id-1",
		RoomID:        "room-id-1",
		GuestID:       "guest-id-1",
		GuestName:     "Ada Obi",
		RoomNumber:    "204",
		Status:        bookingModel.StatusActive,
		PaymentStatus: bookingModel.PaymentStatusUnpaid,
	}

	tests := []struct {
		name      string
		req       dto.CreateKitchenOrderRequest
		setupMock func(repo *kitchenMocks.MockKitchenOrder, bookings *bookingMocks.MockBooking, tickets *printerMocks.MockDispatcher)
		wantErr   bool
	}{
		{
			name: "lodged guest inherits booking details and room bill",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeLodged),
				BookingID: "booking-id-1",
				FoodName:  "Jollof Rice",
				UnitPrice: 2500,
				Quantity:  2,
			},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder, bookings *bookingMocks.MockBooking, tickets *printerMocks.MockDispatcher) {
				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lodgedBooking, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o model.KitchenOrder) error {
						assert.Equal(t, "Ada Obi", o.GuestName)
						assert.Equal(t, "204", o.RoomNumber)
						assert.Equal(t, order.BillingTypeRoomBill, o.BillingType)
						assert.Equal(t, float64(5000), o.TotalAmount)
						assert.Equal(t, order.StatusPending, o.Status)

						return nil
					})

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationKitchen, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "lodged guest on paid booking settles separately",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeLodged),
				BookingID: "booking-id-1",
				FoodName:  "Egusi Soup",
				UnitPrice: 3000,
				Quantity:  1,
			},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder, bookings *bookingMocks.MockBooking, tickets *printerMocks.MockDispatcher) {
				paidBooking := lodgedBooking
				paidBooking.PaymentStatus = bookingModel.PaymentStatusPaid

				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paidBooking, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o model.KitchenOrder) error {
						assert.Equal(t, order.BillingTypeSeparate, o.BillingType)

						return nil
					})

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationKitchen, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "walk-in keeps the supplied name",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeWalkIn),
				GuestName: "Chidi Eze",
				FoodName:  "Pepper Soup",
				UnitPrice: 2000,
				Quantity:  1,
			},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder, _ *bookingMocks.MockBooking, tickets *printerMocks.MockDispatcher) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o model.KitchenOrder) error {
						assert.Equal(t, "Chidi Eze", o.GuestName)
						assert.Equal(t, order.BillingTypeSeparate, o.BillingType)
						assert.Nil(t, o.BookingID)

						return nil
					})

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationKitchen, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeLodged),
				BookingID: "missing-booking",
				FoodName:  "Jollof Rice",
				UnitPrice: 2500,
				Quantity:  1,
			},
			setupMock: func(_ *kitchenMocks.MockKitchenOrder, bookings *bookingMocks.MockBooking, _ *printerMocks.MockDispatcher) {
				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not active",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeLodged),
				BookingID: "booking-id-1",
				FoodName:  "Jollof Rice",
				UnitPrice: 2500,
				Quantity:  1,
			},
			setupMock: func(_ *kitchenMocks.MockKitchenOrder, bookings *bookingMocks.MockBooking, _ *printerMocks.MockDispatcher) {
				completed := lodgedBooking
				completed.Status = bookingModel.StatusCompleted

				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: true,
		},
		{
			name: "printer failure does not fail the order",
			req: dto.CreateKitchenOrderRequest{
				GuestType: string(order.GuestTypeWalkIn),
				GuestName: "Chidi Eze",
				FoodName:  "Pepper Soup",
				UnitPrice: 2000,
				Quantity:  1,
			},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder, _ *bookingMocks.MockBooking, tickets *printerMocks.MockDispatcher) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationKitchen, gomock.Any()).
					Return(assert.AnError)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := kitchenMocks.NewMockKitchenOrder(ctrl)
			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockPrinter := printerMocks.NewMockDispatcher(ctrl)
			svc := service.New(mockRepo, mockBookings, &config.Config{}, noopCache{}, mocks.NewOtel(), mockPrinter)

			tt.setupMock(mockRepo, mockBookings, mockPrinter)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKitchenOrderService_AdvanceStatus(t *testing.T) {
	pendingOrder := model.KitchenOrder{
		ID:       "order-id-1",
		FoodName: "Jollof Rice",
		Status:   order.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.AdvanceStatusRequest
		setupMock func(repo *kitchenMocks.MockKitchenOrder)
		wantErr   bool
	}{
		{
			name: "pending to preparing",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusPreparing)},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending cannot skip to ready",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusReady)},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "ready goes to delivered not served",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusServed)},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder) {
				readyOrder := pendingOrder
				readyOrder.Status = order.StatusReady

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "completed is terminal",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusPreparing)},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder) {
				completedOrder := pendingOrder
				completedOrder.Status = order.StatusCompleted

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "order not found",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusPreparing)},
			setupMock: func(repo *kitchenMocks.MockKitchenOrder) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.KitchenOrder{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := kitchenMocks.NewMockKitchenOrder(ctrl)
			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockPrinter := printerMocks.NewMockDispatcher(ctrl)
			svc := service.New(mockRepo, mockBookings, &config.Config{}, noopCache{}, mocks.NewOtel(), mockPrinter)

			tt.setupMock(mockRepo)

			err := svc.AdvanceStatus(context.Background(), tt.req, "order-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
