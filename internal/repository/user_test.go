package repository_test

import (
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/ledgerlite/backend/internal/types"
)

func (suite *TestSuiteStandard) TestUserFindByEmail() {
	user := suite.createUser("jane@example.com")

	found, err := suite.users.FindByEmail("Jane@Example.com")
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, found.ID)

	_, err = suite.users.FindByEmail("nobody@example.com")
	suite.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (suite *TestSuiteStandard) TestUserPurgeOwnedData() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	owner := suite.createUser("owner@example.com")
	other := suite.createUser("other@example.com")

	suite.createTransaction(owner.ID, groceries, 10, types.NewDate(2025, 7, 1))
	suite.createTransaction(other.ID, groceries, 20, types.NewDate(2025, 7, 1))
	suite.createBudget(owner.ID, groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	suite.Require().Nil(suite.users.PurgeOwnedData(owner.ID))

	transactions, err := suite.transactions.FindByUser(owner.ID, repository.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 0)

	budgets, err := suite.budgets.FindByUser(owner.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)

	// Other users keep their records
	transactions, err = suite.transactions.FindByUser(other.ID, repository.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 1)

	// The account itself survives
	_, err = suite.users.FindByID(owner.ID)
	suite.Assert().Nil(err)

	// Categories are shared, they are never purged
	_, err = suite.categories.FindByID(groceries.ID)
	suite.Assert().Nil(err)
}
