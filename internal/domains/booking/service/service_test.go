package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/cache"
)

// noopCache always misses so the service goes to the repository.
type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (noopCache) Delete(_ context.Context, _ string) error            { return nil }
func (noopCache) Clear(_ context.Context, _ string) error             { return nil }

func TestBookingService_Create(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	deluxeRoom := roomModel.Room{
		ID:         "room-id-1",
		RoomNumber: "204",
		Type:       roomModel.TypeDeluxe,
		Rate:       20000,
		Status:     roomModel.StatusAvailable,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, rooms *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "two nights at 20000 totals 40000",
			req: dto.CreateBookingRequest{
				RoomID:   "room-id-1",
				GuestID:  "guest-id-1",
				CheckIn:  checkIn.Format(time.RFC3339),
				CheckOut: checkOut.Format(time.RFC3339),
			},
			setupMock: func(repo *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxeRoom, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, float64(40000), booking.TotalAmount)
						assert.Equal(t, model.StatusActive, booking.Status)
						assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)

						return nil
					})

				rooms.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				RoomID:   "room-id-1",
				GuestID:  "guest-id-1",
				CheckIn:  checkOut.Format(time.RFC3339),
				CheckOut: checkIn.Format(time.RFC3339),
			},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantErr:   true,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				RoomID:   "missing-room",
				GuestID:  "guest-id-1",
				CheckIn:  checkIn.Format(time.RFC3339),
				CheckOut: checkOut.Format(time.RFC3339),
			},
			setupMock: func(_ *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room not available",
			req: dto.CreateBookingRequest{
				RoomID:   "room-id-1",
				GuestID:  "guest-id-1",
				CheckIn:  checkIn.Format(time.RFC3339),
				CheckOut: checkOut.Format(time.RFC3339),
			},
			setupMock: func(_ *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				occupied := deluxeRoom
				occupied.Status = roomModel.StatusOccupied

				rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupied, nil)
			},
			wantErr: true,
		},
		{
			name: "partial day charged as full night",
			req: dto.CreateBookingRequest{
				RoomID:   "room-id-1",
				GuestID:  "guest-id-1",
				CheckIn:  checkIn.Format(time.RFC3339),
				CheckOut: checkIn.AddDate(0, 0, 1).Add(3 * time.Hour).Format(time.RFC3339),
			},
			setupMock: func(repo *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(deluxeRoom, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, float64(40000), booking.TotalAmount)

						return nil
					})

				rooms.EXPECT().
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

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRooms := roomMocks.NewMockRoom(ctrl)
			svc := service.New(mockRepo, mockRooms, &config.Config{}, noopCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo, mockRooms)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	activeBooking := model.Booking{
		ID:            "booking-id-1",
		RoomID:        "room-id-1",
		GuestID:       "guest-id-1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   40000,
		Status:        model.StatusActive,
		PaymentStatus: model.PaymentStatusUnpaid,
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, rooms *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "mark completed",
			req:  dto.UpdateBookingRequest{Status: model.StatusCompleted},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completed booking cannot be reactivated",
			req:  dto.UpdateBookingRequest{Status: model.StatusActive},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				completed := activeBooking
				completed.Status = model.StatusCompleted

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled booking cannot be completed",
			req:  dto.UpdateBookingRequest{Status: model.StatusCompleted},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				cancelled := activeBooking
				cancelled.Status = model.StatusCancelled

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "date change recomputes total",
			req: dto.UpdateBookingRequest{
				CheckOut: checkIn.AddDate(0, 0, 3).Format(time.RFC3339),
			},
			setupMock: func(repo *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking, nil)

				rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id-1", Rate: 20000}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, float64(60000), fields[model.FieldTotalAmount])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "payment status change leaves total untouched",
			req:  dto.UpdateBookingRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						_, touched := fields[model.FieldTotalAmount]
						assert.False(t, touched)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{Status: model.StatusCancelled},
			setupMock: func(repo *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRooms := roomMocks.NewMockRoom(ctrl)
			svc := service.New(mockRepo, mockRooms, &config.Config{}, noopCache{}, mocks.NewOtel())

			tt.setupMock(mockRepo, mockRooms)

			err := svc.Update(context.Background(), tt.req, "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
