package repository

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository persists categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindByID returns the category with the given ID or ErrNotFound.
func (r *CategoryRepository) FindByID(id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return models.Category{}, asRepositoryError(err)
	}

	return category, nil
}

// FindAll returns all categories sorted by name. When categoryType is
// set, only categories of that type are returned.
func (r *CategoryRepository) FindAll(categoryType models.CategoryType) ([]models.Category, error) {
	q := r.db.Order("name ASC")

	if categoryType != "" {
		q = q.Where("type = ?", categoryType)
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Create persists a new category.
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Save persists the full, already merged category.
func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes the category with the given ID. It reports found=false
// when no such category exists.
func (r *CategoryRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
