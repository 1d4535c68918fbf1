package v1

import (
	"github.com/ledgerlite/backend/internal/models"
)

type CategoryEditable struct {
	Name  string              `json:"name" example:"Groceries"`                              // Name of the category
	Type  models.CategoryType `json:"type" example:"expense" enums:"income,expense"`         // Whether transactions in this category are income or expenses
	Icon  string              `json:"icon" example:"shopping-cart" default:""`               // Icon hint for clients
	Color string              `json:"color" example:"#10b981" default:""`                    // Display color for clients
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Type:  editable.Type,
		Icon:  editable.Icon,
		Color: editable.Color,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
}

// newCategory returns the API representation of the resource
func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Type:  model.Type,
			Icon:  model.Icon,
			Color: model.Color,
		},
	}
}

type CategoryResponse struct {
	Data *Category `json:"data"` // The resource
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of resources
}

type CategoryQueryFilter struct {
	Type string `form:"type"` // Filter by category type
}
