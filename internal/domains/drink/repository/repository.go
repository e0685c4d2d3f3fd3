package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/drink/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Drink interface {
	Insert(ctx context.Context, model model.Drink) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Drink, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Drink, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Category interface {
	Insert(ctx context.Context, model model.DrinkCategory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DrinkCategory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DrinkCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Drink]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Drink {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Drink](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type categoryRepositoryImpl struct {
	gRepo.Repository[model.DrinkCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryRepositoryImpl{
		Repository: gRepo.NewRepository[model.DrinkCategory](model.CategoryEntityName, model.CategoryTableName, model.CategoryFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
