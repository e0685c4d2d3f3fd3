package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/sweep"
	cacheMocks "frontdesk/shared/cache/mocks"
)

func TestRunner_RunOnce(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom, store *cacheMocks.MockRedisCache)
		wantSwept int
		wantErr   bool
	}{
		{
			name: "completes expired bookings and releases rooms",
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom, store *cacheMocks.MockRedisCache) {
				bookings.EXPECT().
					CompleteExpired(gomock.Any(), gomock.Any()).
					Return([]bookingModel.ExpiredBooking{
						{ID: "booking-id-1", RoomID: "room-id-1"},
						{ID: "booking-id-2", RoomID: "room-id-2"},
					}, nil)

				rooms.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

						return nil
					})

				store.EXPECT().
					Clear(gomock.Any(), "report:occupancy*").
					Return(nil)
			},
			wantSwept: 2,
		},
		{
			name: "nothing expired leaves rooms and caches untouched",
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom, store *cacheMocks.MockRedisCache) {
				bookings.EXPECT().
					CompleteExpired(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantSwept: 0,
		},
		{
			name: "room release failure does not fail the pass",
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom, store *cacheMocks.MockRedisCache) {
				bookings.EXPECT().
					CompleteExpired(gomock.Any(), gomock.Any()).
					Return([]bookingModel.ExpiredBooking{
						{ID: "booking-id-1", RoomID: "room-id-1"},
					}, nil)

				rooms.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(assert.AnError)

				store.EXPECT().
					Clear(gomock.Any(), "report:occupancy*").
					Return(nil)
			},
			wantSwept: 1,
		},
		{
			name: "repository error",
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom, store *cacheMocks.MockRedisCache) {
				bookings.EXPECT().
					CompleteExpired(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookings := bookingMocks.NewMockBooking(ctrl)
			rooms := roomMocks.NewMockRoom(ctrl)
			store := cacheMocks.NewMockRedisCache(ctrl)

			tt.setupMock(bookings, rooms, store)

			runner := sweep.New(bookings, rooms, &config.Config{}, store, mocks.NewOtel())

			swept, err := runner.RunOnce(context.Background())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSwept, swept)
		})
	}
}
