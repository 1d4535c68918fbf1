package repository_test

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/ledgerlite/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetFindByIDNotFound() {
	_, err := suite.budgets.FindByID(uuid.New())
	suite.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (suite *TestSuiteStandard) TestBudgetFindActiveBoundaries() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	user := suite.createUser("user@example.com")

	budget := suite.createBudget(user.ID, groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	tests := []struct {
		asOf   types.Date
		active bool
	}{
		{types.NewDate(2025, 6, 30), false},
		{types.NewDate(2025, 7, 1), true},
		{types.NewDate(2025, 7, 15), true},
		{types.NewDate(2025, 7, 31), true},
		{types.NewDate(2025, 8, 1), false},
	}

	for _, tt := range tests {
		budgets, err := suite.budgets.FindActive(user.ID, tt.asOf)
		suite.Require().Nil(err, "asOf %s", tt.asOf)

		if tt.active {
			suite.Require().Len(budgets, 1, "asOf %s", tt.asOf)
			suite.Assert().Equal(budget.ID, budgets[0].ID)
		} else {
			suite.Assert().Len(budgets, 0, "asOf %s", tt.asOf)
		}
	}
}

func (suite *TestSuiteStandard) TestBudgetFindActiveScoped() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	owner := suite.createUser("owner@example.com")
	other := suite.createUser("other@example.com")

	suite.createBudget(owner.ID, groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))
	suite.createBudget(other.ID, groceries, 100, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	budgets, err := suite.budgets.FindActive(owner.ID, types.NewDate(2025, 7, 15))
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(owner.ID, budgets[0].UserID)
}

func (suite *TestSuiteStandard) TestBudgetAnyOverlapping() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	transport := suite.createCategory("Transportation", models.CategoryTypeExpense)
	user := suite.createUser("user@example.com")

	budget := suite.createBudget(user.ID, groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	tests := []struct {
		name       string
		categoryID uuid.UUID
		start, end types.Date
		overlaps   bool
	}{
		{"same window", groceries.ID, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31), true},
		{"partial overlap", groceries.ID, types.NewDate(2025, 7, 20), types.NewDate(2025, 8, 20), true},
		{"contained", groceries.ID, types.NewDate(2025, 7, 10), types.NewDate(2025, 7, 20), true},
		{"touching end", groceries.ID, types.NewDate(2025, 7, 31), types.NewDate(2025, 8, 31), true},
		{"after", groceries.ID, types.NewDate(2025, 8, 1), types.NewDate(2025, 8, 31), false},
		{"before", groceries.ID, types.NewDate(2025, 6, 1), types.NewDate(2025, 6, 30), false},
		{"other category", transport.ID, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31), false},
	}

	for _, tt := range tests {
		overlaps, err := suite.budgets.AnyOverlapping(user.ID, tt.categoryID, tt.start, tt.end, uuid.Nil)
		suite.Require().Nil(err, tt.name)
		suite.Assert().Equal(tt.overlaps, overlaps, tt.name)
	}

	// The budget does not conflict with itself when it is excluded
	overlaps, err := suite.budgets.AnyOverlapping(user.ID, groceries.ID, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31), budget.ID)
	suite.Require().Nil(err)
	suite.Assert().False(overlaps)
}

func (suite *TestSuiteStandard) TestBudgetDeleteIdempotent() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	user := suite.createUser("user@example.com")
	budget := suite.createBudget(user.ID, groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	found, err := suite.budgets.Delete(budget.ID)
	suite.Require().Nil(err)
	suite.Assert().True(found)

	found, err = suite.budgets.Delete(budget.ID)
	suite.Require().Nil(err)
	suite.Assert().False(found)
}

func (suite *TestSuiteStandard) TestBudgetFindByUserAndCategory() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	user := suite.createUser("user@example.com")

	suite.createBudget(user.ID, groceries, 500, types.NewDate(2025, 6, 1), types.NewDate(2025, 6, 30))
	latest := suite.createBudget(user.ID, groceries, 600, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	budget, err := suite.budgets.FindByUserAndCategory(user.ID, groceries.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(latest.ID, budget.ID)
}
