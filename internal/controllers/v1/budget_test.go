package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ledgerlite/backend/internal/controllers/v1"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/progress"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/ledgerlite/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) budgetEditable(category models.Category, amount float64, start, end types.Date) v1.BudgetEditable {
	return v1.BudgetEditable{
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(amount),
		Period:     models.PeriodMonthly,
		StartDate:  start,
		EndDate:    end,
	}
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")

	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	suite.Assert().Equal(session.User.ID, budget.UserID)
	suite.Assert().Equal(food.ID, budget.CategoryID)
	suite.Assert().Equal("2025-07-01", budget.StartDate.String())
	suite.Assert().Equal("2025-07-31", budget.EndDate.String())
}

func (suite *TestSuiteStandard) TestBudgetCreateValidation() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	salary := suite.createCategory("Salary", models.CategoryTypeIncome)
	session := suite.register("jane@example.com")

	reversed := suite.budgetEditable(food, 500, types.NewDate(2025, 7, 31), types.NewDate(2025, 7, 1))

	// startDate must be strictly before endDate
	singleDay := suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 1))

	incomeCategory := suite.budgetEditable(salary, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	negative := suite.budgetEditable(food, -500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))

	badPeriod := suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31))
	badPeriod.Period = "weekly"

	for name, editable := range map[string]v1.BudgetEditable{
		"reversed window": reversed,
		"single day":      singleDay,
		"income category": incomeCategory,
		"negative amount": negative,
		"invalid period":  badPeriod,
	} {
		recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/budgets", editable, test.BearerHeader(session.Token))
		suite.Assert().Equal(http.StatusBadRequest, recorder.Code, "%s: %s", name, recorder.Body.String())
	}
}

func (suite *TestSuiteStandard) TestBudgetCreateOverlap() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	travel := suite.createCategory("Travel", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	other := suite.register("other@example.com")

	suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	// Touching the existing window overlaps, the boundary day is inclusive
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/budgets", suite.budgetEditable(food, 300, types.NewDate(2025, 7, 31), types.NewDate(2025, 8, 31)), test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	// A different category or a different user may use the same window
	suite.createBudget(session.Token, suite.budgetEditable(travel, 300, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))
	suite.createBudget(other.Token, suite.budgetEditable(food, 300, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	// Adjacent windows do not overlap
	suite.createBudget(session.Token, suite.budgetEditable(food, 300, types.NewDate(2025, 8, 1), types.NewDate(2025, 8, 31)))
}

func (suite *TestSuiteStandard) TestBudgetList() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	other := suite.register("other@example.com")

	suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))
	suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 8, 1), types.NewDate(2025, 8, 31)))
	suite.createBudget(other.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	tests := []struct {
		query string
		count int
	}{
		{"", 2},
		{"?active=true&asOf=2025-07-01", 1},
		{"?active=true&asOf=2025-07-31", 1},
		{"?active=true&asOf=2025-08-15", 1},
		{"?active=true&asOf=2025-09-01", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets"+tt.query, nil, test.BearerHeader(session.Token))
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.BudgetListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Len(response.Data, tt.count, "query %q", tt.query)
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets?active=true&asOf=July", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetOwnership() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	owner := suite.register("owner@example.com")
	other := suite.register("other@example.com")

	budget := suite.createBudget(owner.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, budgetPath(budget.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("%s/progress", budgetPath(budget.ID)), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, budgetPath(budget.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	session := suite.register("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets/d4b2ffee-988b-47f6-8661-978bcedd0c06", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets/not-a-uuid", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetUpdatePartial() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, budgetPath(budget.ID), `{"amount": "750"}`, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(750)))
	suite.Assert().Equal("2025-07-01", response.Data.StartDate.String())
	suite.Assert().Equal("2025-07-31", response.Data.EndDate.String())
}

func (suite *TestSuiteStandard) TestBudgetUpdateBreaksWindow() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	// The merged window would have startDate after endDate
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, budgetPath(budget.ID), `{"startDate": "2025-08-15"}`, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")
	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	transaction := suite.createTransaction(session.Token, v1.TransactionEditable{
		Type:       models.CategoryTypeExpense,
		CategoryID: food.ID,
		Amount:     decimal.NewFromInt(50),
		Date:       types.NewDate(2025, 7, 10),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, budgetPath(budget.ID), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, budgetPath(budget.ID), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	// The transactions of the budgeted category are untouched
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, transactionPath(transaction.ID), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetProgress() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	travel := suite.createCategory("Travel", models.CategoryTypeExpense)
	salary := suite.createCategory("Salary", models.CategoryTypeIncome)
	session := suite.register("jane@example.com")

	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))

	// Two food expenses count towards the budget
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: food.ID, Amount: decimal.NewFromInt(120), Date: types.NewDate(2025, 7, 5)})
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: food.ID, Amount: decimal.NewFromInt(80), Date: types.NewDate(2025, 7, 20)})

	// Income, other categories and out-of-window expenses do not
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeIncome, CategoryID: salary.ID, Amount: decimal.NewFromInt(1000), Date: types.NewDate(2025, 7, 10)})
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: travel.ID, Amount: decimal.NewFromInt(50), Date: types.NewDate(2025, 7, 10)})
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: food.ID, Amount: decimal.NewFromInt(70), Date: types.NewDate(2025, 8, 1)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("%s/progress", budgetPath(budget.ID)), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetProgressResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(budget.ID, response.Data.BudgetID)
	suite.Assert().Equal(food.ID, response.Data.CategoryID)
	suite.Assert().True(response.Data.Spent.Equal(decimal.NewFromInt(200)), "spent is %s", response.Data.Spent)
	suite.Assert().True(response.Data.Remaining.Equal(decimal.NewFromInt(300)), "remaining is %s", response.Data.Remaining)
	suite.Assert().Equal(int64(40), response.Data.PercentUsed)
	suite.Assert().False(response.Data.IsOverBudget)
	suite.Assert().Equal(progress.StatusNominal, response.Data.Status)
}

func (suite *TestSuiteStandard) TestBudgetProgressOverspent() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")

	budget := suite.createBudget(session.Token, suite.budgetEditable(food, 100, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: food.ID, Amount: decimal.NewFromInt(150), Date: types.NewDate(2025, 7, 5)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("%s/progress", budgetPath(budget.ID)), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetProgressResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Remaining.Equal(decimal.NewFromInt(-50)), "remaining is %s", response.Data.Remaining)
	suite.Assert().Equal(int64(100), response.Data.PercentUsed)
	suite.Assert().True(response.Data.IsOverBudget)
	suite.Assert().Equal(progress.StatusCritical, response.Data.Status)
}

func (suite *TestSuiteStandard) TestBudgetProgressAll() {
	food := suite.createCategory("Food", models.CategoryTypeExpense)
	travel := suite.createCategory("Travel", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")

	foodBudget := suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 7, 1), types.NewDate(2025, 7, 31)))
	travelBudget := suite.createBudget(session.Token, suite.budgetEditable(travel, 200, types.NewDate(2025, 7, 15), types.NewDate(2025, 8, 15)))
	suite.createBudget(session.Token, suite.budgetEditable(food, 500, types.NewDate(2025, 9, 1), types.NewDate(2025, 9, 30)))

	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: food.ID, Amount: decimal.NewFromInt(350), Date: types.NewDate(2025, 7, 10)})
	suite.createTransaction(session.Token, v1.TransactionEditable{Type: models.CategoryTypeExpense, CategoryID: travel.ID, Amount: decimal.NewFromInt(190), Date: types.NewDate(2025, 7, 20)})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets/progress/all?asOf=2025-07-20", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetProgressListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	byBudget := make(map[string]progress.Progress, len(response.Data))
	for _, entry := range response.Data {
		byBudget[entry.BudgetID.String()] = entry
	}

	foodProgress := byBudget[foodBudget.ID.String()]
	suite.Assert().True(foodProgress.Spent.Equal(decimal.NewFromInt(350)), "spent is %s", foodProgress.Spent)
	suite.Assert().Equal(progress.StatusWarning, foodProgress.Status)

	travelProgress := byBudget[travelBudget.ID.String()]
	suite.Assert().True(travelProgress.Spent.Equal(decimal.NewFromInt(190)), "spent is %s", travelProgress.Spent)
	suite.Assert().Equal(progress.StatusCritical, travelProgress.Status)
}

func (suite *TestSuiteStandard) TestBudgetProgressAllEmpty() {
	session := suite.register("jane@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/budgets/progress/all", nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetProgressListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
}
