package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository persists users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns the user with the given ID or ErrNotFound.
func (r *UserRepository) FindByID(id uuid.UUID) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return models.User{}, asRepositoryError(err)
	}

	return user, nil
}

// FindByEmail returns the user with the given email or ErrNotFound.
// Emails are stored lowercased, the lookup is case-insensitive.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return models.User{}, asRepositoryError(err)
	}

	return user, nil
}

// Create persists a new user.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Save persists the full, already merged user.
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user with the given ID. It reports found=false when
// no such user exists. Owned transactions and budgets are intentionally
// left in place, matching the lifecycle of the original system; use
// PurgeOwnedData to remove them.
func (r *UserRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// PurgeOwnedData permanently deletes all transactions and budgets of a
// user. Both deletes run in one database transaction so a failure cannot
// leave a partial purge behind.
func (r *UserRepository) PurgeOwnedData(userID uuid.UUID) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	for _, model := range []any{&models.Transaction{}, &models.Budget{}} {
		err := tx.Unscoped().Where("user_id = ?", userID).Delete(model).Error
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
