package dto

import (
	"frontdesk/internal/domains/drink/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateDrinkRequest struct {
	Name       string  `json:"name"        validate:"required,max=100"`
	CategoryID string  `json:"category_id" validate:"required,uuid"`
	Price      float64 `json:"price"       validate:"required,gte=0"`
}

func (c *CreateDrinkRequest) ToModel(user string) model.Drink {
	return model.Drink{
		ID:         uuid.NewString(),
		Name:       c.Name,
		CategoryID: c.CategoryID,
		Price:      c.Price,
		Available:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDrinkRequest struct {
	Name       string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	CategoryID string   `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Price      *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Available  *bool    `db:"available"   json:"available"   validate:"omitempty"`
}

type DrinkResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	Price      float64 `json:"price"`
	Available  bool    `json:"available"`
	gDto.Metadata
}

func (r *DrinkResponse) FromModel(model model.Drink) {
	r.ID = model.ID
	r.Name = model.Name
	r.CategoryID = model.CategoryID
	r.Price = model.Price
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetDrinksResponse struct {
	Drinks    []DrinkResponse `json:"drinks"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetDrinksResponse) FromModels(models []model.Drink, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Drinks = make([]DrinkResponse, len(models))
	for i, mod := range models {
		r.Drinks[i].FromModel(mod)
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.DrinkCategory {
	return model.DrinkCategory{
		ID:   uuid.NewString(),
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.DrinkCategory) {
	r.ID = model.ID
	r.Name = model.Name
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.DrinkCategory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
