package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryType classifies a category and the transactions referencing it.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the type is one of the known category types.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a named classifier for transactions and budgets. Categories
// are global, they are seeded on startup and only mutable by admins.
type Category struct {
	DefaultModel
	Name  string       `gorm:"uniqueIndex:category_name_type"`
	Type  CategoryType `gorm:"uniqueIndex:category_name_type"`
	Icon  string
	Color string
}

// BeforeSave trims whitespace from all strings and verifies the type.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}
