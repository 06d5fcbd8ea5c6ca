package model

import "beauteefool/shared/model"

const (
	TableName  = "gallery_images"
	EntityName = "gallery"
	Directory  = "gallery"

	FieldID       = "id"
	FieldCategory = "category"
)

type Category string

const (
	CategoryHair     Category = "hair"
	CategoryNails    Category = "nails"
	CategoryMakeup   Category = "makeup"
	CategorySpa      Category = "spa"
	CategoryInterior Category = "interior"
)

var Categories = []Category{CategoryHair, CategoryNails, CategoryMakeup, CategorySpa, CategoryInterior}

func (c Category) Valid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}

	return false
}

type Image struct {
	ID          string   `db:"id"`
	Src         string   `db:"src"`
	Category    Category `db:"category"`
	Alt         string   `db:"alt"`
	Description string   `db:"description"`
	Width       int      `db:"width"`
	Height      int      `db:"height"`
	model.Metadata
}
