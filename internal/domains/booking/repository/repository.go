package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CompleteExpired(ctx context.Context, now time.Time) ([]model.ExpiredBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CompleteExpired marks every active booking whose checkout time has passed
// as completed in a single conditional statement. The condition makes the
// sweep idempotent and safe against concurrent manual edits: a booking that
// was already completed or cancelled is never touched.
func (repo *repositoryImpl) CompleteExpired(ctx context.Context, now time.Time) ([]model.ExpiredBooking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteExpired")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4 AND %s <= $2 RETURNING %s, %s",
		model.TableName,
		model.FieldStatus,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
		model.FieldStatus,
		model.FieldCheckOut,
		model.FieldID,
		model.FieldRoomID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var expired []model.ExpiredBooking

	err := repo.db.Write.SelectContext(ctx, &expired, query,
		model.StatusCompleted, now, constant.ActorSystem, model.StatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to complete expired bookings: %w", err)
	}

	return expired, nil
}
