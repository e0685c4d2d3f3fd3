package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/kitchen/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type KitchenOrder interface {
	Insert(ctx context.Context, model model.KitchenOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.KitchenOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.KitchenOrder, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.KitchenOrder]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) KitchenOrder {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.KitchenOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
