package repository

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetRepository persists budgets.
type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// FindByID returns the budget with the given ID or ErrNotFound.
func (r *BudgetRepository) FindByID(id uuid.UUID) (models.Budget, error) {
	var budget models.Budget
	err := r.db.First(&budget, "id = ?", id).Error
	if err != nil {
		return models.Budget{}, asRepositoryError(err)
	}

	return budget, nil
}

// FindByUser returns all budgets of a user, newest window first.
func (r *BudgetRepository) FindByUser(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := r.db.
		Where("user_id = ?", userID).
		Order("date(start_date) DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// FindByUserAndCategory returns the most recently starting budget of a
// user for a category or ErrNotFound.
func (r *BudgetRepository) FindByUserAndCategory(userID, categoryID uuid.UUID) (models.Budget, error) {
	var budget models.Budget

	err := r.db.
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("date(start_date) DESC").
		First(&budget).Error
	if err != nil {
		return models.Budget{}, asRepositoryError(err)
	}

	return budget, nil
}

// FindActive returns all budgets of a user whose window contains asOf.
// Both window ends are inclusive.
func (r *BudgetRepository) FindActive(userID uuid.UUID, asOf types.Date) ([]models.Budget, error) {
	var budgets []models.Budget

	err := r.db.
		Where("user_id = ?", userID).
		Where("date(start_date) <= date(?) AND date(end_date) >= date(?)", asOf, asOf).
		Order("date(start_date) DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// AnyOverlapping reports whether the user already has a budget for the
// category whose window overlaps [start, end]. excludeID is skipped so
// that a budget does not conflict with itself on update.
func (r *BudgetRepository) AnyOverlapping(userID, categoryID uuid.UUID, start, end types.Date, excludeID uuid.UUID) (bool, error) {
	var count int64

	q := r.db.
		Model(&models.Budget{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Where("date(start_date) <= date(?) AND date(end_date) >= date(?)", end, start)

	if excludeID != uuid.Nil {
		q = q.Where("id != ?", excludeID)
	}

	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create persists a new budget, stamping its ID and timestamps.
func (r *BudgetRepository) Create(budget *models.Budget) error {
	return r.db.Create(budget).Error
}

// Save persists the full, already merged budget and stamps UpdatedAt.
func (r *BudgetRepository) Save(budget *models.Budget) error {
	return r.db.Save(budget).Error
}

// Delete removes the budget with the given ID. It reports found=false
// when no such budget exists.
func (r *BudgetRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Budget{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
