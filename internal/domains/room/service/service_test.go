package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/cache"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error         { return cache.Nil }
func (noopCache) Delete(_ context.Context, _ string) error             { return nil }
func (noopCache) Clear(_ context.Context, _ string) error              { return nil }

func newService(repo *roomMocks.MockRoom) service.Room {
	return service.New(repo, &config.Config{}, noopCache{}, mocks.NewOtel())
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "success",
			req: dto.CreateRoomRequest{
				RoomNumber: "204",
				Type:       model.TypeDeluxe,
				Rate:       20000,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "204", room.RoomNumber)
						assert.Equal(t, model.TypeDeluxe, room.Type)
						assert.Equal(t, float64(20000), room.Rate)
						assert.Equal(t, model.StatusAvailable, room.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				RoomNumber: "204",
				Type:       model.TypeStandard,
				Rate:       15000,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				RoomNumber: "204",
				Type:       model.TypeStandard,
				Rate:       15000,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := roomMocks.NewMockRoom(ctrl)
			svc := newService(mockRepo)

			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "success",
			id:   "room-id-1",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{
						ID:         "room-id-1",
						RoomNumber: "204",
						Type:       model.TypeDeluxe,
						Rate:       20000,
						Status:     model.StatusOccupied,
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := roomMocks.NewMockRoom(ctrl)
			svc := newService(mockRepo)

			tt.setupMock(mockRepo)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "204", res.RoomNumber)
			assert.Equal(t, model.StatusOccupied, res.Status)
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	rate := 25000.0

	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "success",
			req:  dto.UpdateRoomRequest{Rate: &rate, Status: model.StatusMaintenance},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id-1", RoomNumber: "204"}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
						assert.Equal(t, &rate, fields[model.FieldRate])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "not found",
			req:  dto.UpdateRoomRequest{Status: model.StatusMaintenance},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := roomMocks.NewMockRoom(ctrl)
			svc := newService(mockRepo)

			tt.setupMock(mockRepo)

			err := svc.Update(context.Background(), tt.req, "room-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := roomMocks.NewMockRoom(ctrl)
			svc := newService(mockRepo)

			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), "room-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
