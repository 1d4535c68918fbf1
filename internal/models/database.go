package models

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database at the given path and migrates the
// schema. The returned handle is passed into the repositories by the
// caller, its lifecycle (and the final Close) is owned by the entrypoint.
func Connect(dsn string) (*gorm.DB, error) {
	// Create the directory for the database file if needed
	dir := filepath.Dir(dsn)
	if dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		// Translate driver errors so that unique constraint violations
		// surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate migrates all models so that the schema is correct.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(User{}, Category{}, Transaction{}, Budget{})
}

// defaultCategories are created once on an empty instance. End users never
// mutate categories, admins can adjust them through the API.
var defaultCategories = []Category{
	{Name: "Salary", Type: CategoryTypeIncome, Icon: "briefcase", Color: "#2e7d32"},
	{Name: "Freelance", Type: CategoryTypeIncome, Icon: "laptop", Color: "#558b2f"},
	{Name: "Investments", Type: CategoryTypeIncome, Icon: "trending-up", Color: "#00695c"},
	{Name: "Other income", Type: CategoryTypeIncome, Icon: "plus-circle", Color: "#455a64"},
	{Name: "Groceries", Type: CategoryTypeExpense, Icon: "shopping-cart", Color: "#ef6c00"},
	{Name: "Dining", Type: CategoryTypeExpense, Icon: "coffee", Color: "#d84315"},
	{Name: "Transportation", Type: CategoryTypeExpense, Icon: "truck", Color: "#1565c0"},
	{Name: "Housing", Type: CategoryTypeExpense, Icon: "home", Color: "#6a1b9a"},
	{Name: "Utilities", Type: CategoryTypeExpense, Icon: "zap", Color: "#f9a825"},
	{Name: "Health", Type: CategoryTypeExpense, Icon: "heart", Color: "#c62828"},
	{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "film", Color: "#4527a0"},
}

// SeedCategories creates the default categories when none exist yet.
func SeedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, category := range defaultCategories {
		c := category
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("seeding category %q: %w", category.Name, err)
		}
	}

	return nil
}
