package models

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the cadence a budget is planned for. The period is
// descriptive, the effective window is always [StartDate, EndDate].
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodYearly    BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known budget periods.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodMonthly || p == PeriodQuarterly || p == PeriodYearly
}

// Budget is a spending limit for one category of one user, active for all
// dates d with StartDate <= d <= EndDate.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	User       User      `json:"-"`
	CategoryID uuid.UUID `gorm:"index"`
	Category   Category  `json:"-"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period     BudgetPeriod
	StartDate  types.Date
	EndDate    types.Date
}

// Active reports whether the budget window contains the given date,
// inclusive on both ends.
func (b Budget) Active(asOf types.Date) bool {
	return asOf.Within(b.StartDate, b.EndDate)
}

// BeforeSave verifies the period and the date window.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	if !b.StartDate.Before(b.EndDate) {
		return ErrBudgetWindowInvalid
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)
	return b.checkIntegrity(tx)
}

// BeforeUpdate verifies the category reference before committing
// an update to the database.
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.checkIntegrity(tx)
}

// checkIntegrity verifies that the referenced category exists. Budgets
// limit spending, so the category must be an expense category.
func (b *Budget) checkIntegrity(tx *gorm.DB) error {
	var category Category
	err := tx.First(&category, "id = ?", b.CategoryID).Error
	if err != nil {
		return ErrCategoryNotFound
	}

	if category.Type != CategoryTypeExpense {
		return ErrCategoryTypeMismatch
	}

	return nil
}

// AfterSave verifies the amount invariant.
func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}
