package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository persists transactions.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// TransactionFilter narrows down the transactions returned by FindByUser.
// Zero values mean "do not filter on this field". Date bounds are
// inclusive on both ends.
type TransactionFilter struct {
	Type       models.CategoryType
	CategoryID uuid.UUID
	From       types.Date
	Until      types.Date
	Offset     int
	Limit      int
}

// FindByID returns the transaction with the given ID or ErrNotFound.
func (r *TransactionRepository) FindByID(id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return models.Transaction{}, asRepositoryError(err)
	}

	return transaction, nil
}

// filtered returns a query scoped to the user with all filter conditions
// applied, without ordering or pagination.
func (r *TransactionRepository) filtered(userID uuid.UUID, filter TransactionFilter) *gorm.DB {
	q := r.db.
		Model(&models.Transaction{}).
		Where("user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.CategoryID != uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if !filter.From.IsZero() {
		q = q.Where("date(transactions.date) >= date(?)", filter.From)
	}

	if !filter.Until.IsZero() {
		q = q.Where("date(transactions.date) <= date(?)", filter.Until)
	}

	return q
}

// FindByUser returns all transactions of a user matching the filter,
// newest first.
func (r *TransactionRepository) FindByUser(userID uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	q := r.filtered(userID, filter).
		Order("date(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// CountByUser returns the total number of transactions matching the
// filter, ignoring its pagination fields.
func (r *TransactionRepository) CountByUser(userID uuid.UUID, filter TransactionFilter) (int64, error) {
	var count int64
	err := r.filtered(userID, filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Create persists a new transaction, stamping its ID and timestamps.
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

// Save persists the full, already merged transaction and stamps UpdatedAt.
// Merging partial updates into the stored record is the caller's concern.
func (r *TransactionRepository) Save(transaction *models.Transaction) error {
	return r.db.Save(transaction).Error
}

// Delete removes the transaction with the given ID. It reports found=false
// when no such transaction exists, so that a repeated delete is not an
// error.
func (r *TransactionRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// SumExpenses returns the sum of all expense amounts of a user for one
// category within [from, until]. The rows are summed as decimals in Go,
// sqlite's SUM() aggregates in floating point and drifts on fractional
// amounts.
func (r *TransactionRepository) SumExpenses(userID, categoryID uuid.UUID, from, until types.Date) (decimal.Decimal, error) {
	var transactions []models.Transaction

	err := r.db.
		Where("user_id = ? AND type = ? AND category_id = ?", userID, models.CategoryTypeExpense, categoryID).
		Where("date(transactions.date) >= date(?) AND date(transactions.date) <= date(?)", from, until).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses for category %s: %w", categoryID, err)
	}

	sum := decimal.Zero
	for _, transaction := range transactions {
		sum = sum.Add(transaction.Amount)
	}

	return sum, nil
}

// FindExpensesInRange returns all expense transactions of a user within
// [from, until]. It fuels the bulk budget progress computation with a
// single query instead of one query per budget.
func (r *TransactionRepository) FindExpensesInRange(userID uuid.UUID, from, until types.Date) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := r.db.
		Where("user_id = ? AND type = ?", userID, models.CategoryTypeExpense).
		Where("date(transactions.date) >= date(?) AND date(transactions.date) <= date(?)", from, until).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
