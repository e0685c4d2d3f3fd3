package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/cache"
)

// noopCache always misses so the service rebuilds the report.
type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error        { return cache.Nil }
func (noopCache) Delete(_ context.Context, _ string) error            { return nil }
func (noopCache) Clear(_ context.Context, _ string) error             { return nil }

func stay(checkIn time.Time, nights int, status string, amount float64) bookingModel.Booking {
	return bookingModel.Booking{
		Status:      status,
		TotalAmount: amount,
		RoomType:    roomModel.TypeDeluxe,
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, nights),
	}
}

func TestReportService_Occupancy(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.OccupancyReportRequest
		setupMock func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom)
		wantErr   bool
		assertRes func(t *testing.T, res dto.OccupancyReportResponse)
	}{
		{
			name: "builds report over the range",
			req:  dto.OccupancyReportRequest{Start: "2025-03-10", End: "2025-03-11"},
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						stay(checkIn, 2, bookingModel.StatusActive, 40000),
						stay(checkIn, 1, bookingModel.StatusCancelled, 20000),
					}, nil)

				rooms.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(8, nil)
			},
			assertRes: func(t *testing.T, res dto.OccupancyReportResponse) {
				assert.Equal(t, 2, res.TotalBookings)
				assert.Equal(t, 1, res.ActiveBookings)
				assert.Equal(t, 1, res.CancelledBookings)
				assert.InDelta(t, 60000, res.TotalRevenue, 0.001)

				assert.Len(t, res.DailyOccupancy, 2)
				assert.Equal(t, 1, res.DailyOccupancy[0].Occupied)
				assert.Equal(t, 8, res.DailyOccupancy[0].TotalRooms)
				assert.InDelta(t, 12.5, res.DailyOccupancy[0].Rate, 0.001)
			},
		},
		{
			name:      "invalid start date",
			req:       dto.OccupancyReportRequest{Start: "10-03-2025", End: "2025-03-11"},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantErr:   true,
		},
		{
			name:      "end before start",
			req:       dto.OccupancyReportRequest{Start: "2025-03-11", End: "2025-03-10"},
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  dto.OccupancyReportRequest{Start: "2025-03-10", End: "2025-03-11"},
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
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
			s3 := s3Mocks.NewMockS3(ctrl)

			tt.setupMock(bookings, rooms)

			svc := service.New(bookings, rooms, &config.Config{}, noopCache{}, mocks.NewOtel(), s3)

			res, err := svc.Occupancy(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.assertRes != nil {
				tt.assertRes(t, res)
			}
		})
	}
}

func TestReportService_ExportOccupancyCSV(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("renders csv without archive when s3 disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookings := bookingMocks.NewMockBooking(ctrl)
		rooms := roomMocks.NewMockRoom(ctrl)
		s3 := s3Mocks.NewMockS3(ctrl)

		bookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{stay(checkIn, 1, bookingModel.StatusActive, 20000)}, nil)
		rooms.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(4, nil)

		svc := service.New(bookings, rooms, &config.Config{}, noopCache{}, mocks.NewOtel(), s3)

		data, url, err := svc.ExportOccupancyCSV(context.Background(), dto.OccupancyReportRequest{
			Start: "2025-03-10",
			End:   "2025-03-10",
		})
		assert.NoError(t, err)
		assert.Empty(t, url)
		assert.True(t, strings.HasPrefix(string(data), "date,occupied_rooms,total_rooms,occupancy_rate"))
		assert.Contains(t, string(data), "2025-03-10,1,4,25.00%")
	})

	t.Run("archives to s3 when enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookings := bookingMocks.NewMockBooking(ctrl)
		rooms := roomMocks.NewMockRoom(ctrl)
		s3 := s3Mocks.NewMockS3(ctrl)

		bookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		rooms.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(4, nil)
		s3.EXPECT().
			UploadBytes(gomock.Any(), "frontdesk-bucket", "reports/occupancy", "occupancy_2025-03-10_2025-03-10.csv", "text/csv", gomock.Any()).
			Return("https://s3.example.com/reports/occupancy_2025-03-10_2025-03-10.csv", nil)

		cfg := &config.Config{}
		cfg.External.S3.Enable = true
		cfg.External.S3.BucketName = "frontdesk-bucket"
		cfg.External.S3.ReportDir = "reports/occupancy"

		svc := service.New(bookings, rooms, cfg, noopCache{}, mocks.NewOtel(), s3)

		_, url, err := svc.ExportOccupancyCSV(context.Background(), dto.OccupancyReportRequest{
			Start: "2025-03-10",
			End:   "2025-03-10",
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://s3.example.com/reports/occupancy_2025-03-10_2025-03-10.csv", url)
	})

	t.Run("s3 failure does not fail the export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookings := bookingMocks.NewMockBooking(ctrl)
		rooms := roomMocks.NewMockRoom(ctrl)
		s3 := s3Mocks.NewMockS3(ctrl)

		bookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		rooms.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(4, nil)
		s3.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", assert.AnError)

		cfg := &config.Config{}
		cfg.External.S3.Enable = true

		svc := service.New(bookings, rooms, cfg, noopCache{}, mocks.NewOtel(), s3)

		data, url, err := svc.ExportOccupancyCSV(context.Background(), dto.OccupancyReportRequest{
			Start: "2025-03-10",
			End:   "2025-03-10",
		})
		assert.NoError(t, err)
		assert.Empty(t, url)
		assert.NotEmpty(t, data)
	})
}
