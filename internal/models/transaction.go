package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single financial event of a user. The amount is always
// positive, the direction is carried by Type.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User      `json:"-"`
	Type        CategoryType
	CategoryID  uuid.UUID `gorm:"index"`
	Category    Category  `json:"-"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Date        types.Date
	Note        string
}

// BeforeSave normalizes the transaction and verifies its type.
// A zero date defaults to the current day.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)
	return t.checkIntegrity(tx)
}

// BeforeUpdate verifies the category reference before committing
// an update to the database.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced category exists and matches
// the transaction type. The store does not enforce foreign keys, so this
// is the only referential check there is.
func (t *Transaction) checkIntegrity(tx *gorm.DB) error {
	var category Category
	err := tx.First(&category, "id = ?", t.CategoryID).Error
	if err != nil {
		return ErrCategoryNotFound
	}

	if category.Type != t.Type {
		return ErrCategoryTypeMismatch
	}

	return nil
}

// AfterSave verifies the amount invariant.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}
