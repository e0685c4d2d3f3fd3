package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	barMocks "frontdesk/internal/domains/bar/mocks"
	"frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/bar/model/dto"
	"frontdesk/internal/domains/bar/service"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	drinkMocks "frontdesk/internal/domains/drink/mocks"
	drinkModel "frontdesk/internal/domains/drink/model"
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

func TestBarOrderService_Create(t *testing.T) {
	chapman := drinkModel.Drink{
		ID:        "drink-id-1",
		Name:      "Chapman",
		Price:     1500,
		Available: true,
	}

	lodgedBooking := bookingModel.Booking{
		ID:            "booking-id-1",
		GuestName:     "Ada Obi",
		RoomNumber:    "204",
		Status:        bookingModel.StatusActive,
		PaymentStatus: bookingModel.PaymentStatusUnpaid,
	}

	tests := []struct {
		name      string
		req       dto.CreateBarOrderRequest
		setupMock func(repo *barMocks.MockBarOrder, bookings *bookingMocks.MockBooking, drinks *drinkMocks.MockDrink, tickets *printerMocks.MockDispatcher)
		wantErr   bool
	}{
		{
			name: "three chapmans at 1500 store 4500",
			req: dto.CreateBarOrderRequest{
				GuestType: string(order.GuestTypeWalkIn),
				GuestName: "Chidi Eze",
				DrinkID:   "drink-id-1",
				Quantity:  3,
			},
			setupMock: func(repo *barMocks.MockBarOrder, _ *bookingMocks.MockBooking, drinks *drinkMocks.MockDrink, tickets *printerMocks.MockDispatcher) {
				drinks.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(chapman, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o model.BarOrder) error {
						assert.Equal(t, "Chapman", o.DrinkName)
						assert.Equal(t, float64(1500), o.UnitPrice)
						assert.Equal(t, float64(4500), o.TotalAmount)
						assert.Equal(t, order.BillingTypeSeparate, o.BillingType)
						assert.Equal(t, order.StatusPending, o.Status)

						return nil
					})

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationBar, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "lodged unpaid booking goes on the room bill",
			req: dto.CreateBarOrderRequest{
				GuestType: string(order.GuestTypeLodged),
				BookingID: "booking-id-1",
				DrinkID:   "drink-id-1",
				Quantity:  1,
			},
			setupMock: func(repo *barMocks.MockBarOrder, bookings *bookingMocks.MockBooking, drinks *drinkMocks.MockDrink, tickets *printerMocks.MockDispatcher) {
				drinks.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(chapman, nil)

				bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(lodgedBooking, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o model.BarOrder) error {
						assert.Equal(t, "Ada Obi", o.GuestName)
						assert.Equal(t, "204", o.RoomNumber)
						assert.Equal(t, order.BillingTypeRoomBill, o.BillingType)

						return nil
					})

				tickets.EXPECT().
					Dispatch(gomock.Any(), printer.StationBar, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "drink not found",
			req: dto.CreateBarOrderRequest{
				GuestType: string(order.GuestTypeWalkIn),
				GuestName: "Chidi Eze",
				DrinkID:   "missing-drink",
				Quantity:  1,
			},
			setupMock: func(_ *barMocks.MockBarOrder, _ *bookingMocks.MockBooking, drinks *drinkMocks.MockDrink, _ *printerMocks.MockDispatcher) {
				drinks.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(drinkModel.Drink{}, nil)
			},
			wantErr: true,
		},
		{
			name: "drink not available",
			req: dto.CreateBarOrderRequest{
				GuestType: string(order.GuestTypeWalkIn),
				GuestName: "Chidi Eze",
				DrinkID:   "drink-id-1",
				Quantity:  1,
			},
			setupMock: func(_ *barMocks.MockBarOrder, _ *bookingMocks.MockBooking, drinks *drinkMocks.MockDrink, _ *printerMocks.MockDispatcher) {
				unavailable := chapman
				unavailable.Available = false

				drinks.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailable, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := barMocks.NewMockBarOrder(ctrl)
			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockDrinks := drinkMocks.NewMockDrink(ctrl)
			mockPrinter := printerMocks.NewMockDispatcher(ctrl)
			svc := service.New(mockRepo, mockBookings, mockDrinks, &config.Config{}, noopCache{}, mocks.NewOtel(), mockPrinter)

			tt.setupMock(mockRepo, mockBookings, mockDrinks, mockPrinter)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBarOrderService_AdvanceStatus(t *testing.T) {
	readyOrder := model.BarOrder{
		ID:        "order-id-1",
		DrinkName: "Chapman",
		Status:    order.StatusReady,
	}

	tests := []struct {
		name      string
		req       dto.AdvanceStatusRequest
		setupMock func(repo *barMocks.MockBarOrder)
		wantErr   bool
	}{
		{
			name: "ready to served",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusServed)},
			setupMock: func(repo *barMocks.MockBarOrder) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyOrder, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "ready cannot be delivered at the bar",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusDelivered)},
			setupMock: func(repo *barMocks.MockBarOrder) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(readyOrder, nil)
			},
			wantErr: true,
		},
		{
			name: "served to completed",
			req:  dto.AdvanceStatusRequest{Status: string(order.StatusCompleted)},
			setupMock: func(repo *barMocks.MockBarOrder) {
				servedOrder := readyOrder
				servedOrder.Status = order.StatusServed

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(servedOrder, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := barMocks.NewMockBarOrder(ctrl)
			mockBookings := bookingMocks.NewMockBooking(ctrl)
			mockDrinks := drinkMocks.NewMockDrink(ctrl)
			mockPrinter := printerMocks.NewMockDispatcher(ctrl)
			svc := service.New(mockRepo, mockBookings, mockDrinks, &config.Config{}, noopCache{}, mocks.NewOtel(), mockPrinter)

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
