package model

import "frontdesk/shared/model"

const (
	TableName  = "drinks"
	EntityName = "drink"

	FieldID         = "id"
	FieldName       = "name"
	FieldCategoryID = "category_id"
	FieldPrice      = "price"
	FieldAvailable  = "available"
)

const (
	CategoryTableName  = "drink_categories"
	CategoryEntityName = "drink_category"

	CategoryFieldID   = "id"
	CategoryFieldName = "name"
)

type Drink struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	CategoryID string  `db:"category_id"`
	Price      float64 `db:"price"`
	Available  bool    `db:"available"`
	model.Metadata
}

type DrinkCategory struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
