package v1_test

import (
	"net/http"

	v1 "github.com/ledgerlite/backend/internal/controllers/v1"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/ledgerlite/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDeleteDataNeedsConfirmation() {
	session := suite.register("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "/api/v1/user/data", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "/api/v1/user/data?confirm=yes-really", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteData() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	other := suite.register("other@example.com")

	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: groceries.ID, Amount: decimal.NewFromInt(10), Date: types.NewDate(2025, 7, 1)})
	suite.createBudget(session.Token, suite.budgetEditable(groceries, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))
	otherTransaction := suite.createTransaction(other.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: groceries.ID, Amount: decimal.NewFromInt(20), Date: types.NewDate(2025, 7, 1)})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "/api/v1/user/data?confirm=delete-all-my-data", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	// The user's transactions and budgets are gone
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/transactions", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Len(transactions.Data, 0)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Assert().Len(budgets.Data, 0)

	// The account itself and other users' data are kept
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/auth/profile", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, transactionPath(otherTransaction.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}
