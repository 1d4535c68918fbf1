package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ledgerlite/backend/internal/controllers/v1"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/test"
)

func categoryPath(id fmt.Stringer) string {
	return fmt.Sprintf("/api/v1/categories/%s", id)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	suite.createCategory("Groceries", models.CategoryTypeExpense)
	suite.createCategory("Salary", models.CategoryTypeIncome)
	suite.createCategory("Dining", models.CategoryTypeExpense)

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Dining", "Groceries", "Salary"}},
		{"?type=expense", []string{"Dining", "Groceries"}},
		{"?type=income", []string{"Salary"}},
	}

	// No token needed, the catalog is public
	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/categories"+tt.query, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.CategoryListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		names := make([]string, 0, len(response.Data))
		for _, category := range response.Data {
			names = append(names, category.Name)
		}
		suite.Assert().Equal(tt.names, names, "query %q", tt.query)
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/categories?type=transfer", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryGet() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, categoryPath(groceries.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Groceries", response.Data.Name)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/api/v1/categories/d4b2ffee-988b-47f6-8661-978bcedd0c06", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryMutationRequiresToken() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/categories", v1.CategoryEditable{Name: "Gifts", Type: models.CategoryTypeExpense})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryMutationRequiresAdmin() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	session := suite.register("jane@example.com")

	editable := v1.CategoryEditable{Name: "Gifts", Type: models.CategoryTypeExpense}

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/categories", editable, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, categoryPath(groceries.ID), `{"name": "Hacked"}`, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, categoryPath(groceries.ID), nil, test.BearerHeader(session.Token))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryAdminCreate() {
	token := suite.adminSession()

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/categories", v1.CategoryEditable{
		Name:  "Gifts",
		Type:  models.CategoryTypeExpense,
		Icon:  "gift",
		Color: "#f59e0b",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Gifts", response.Data.Name)
	suite.Assert().Equal("gift", response.Data.Icon)

	// The same name and type already exists
	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "/api/v1/categories", v1.CategoryEditable{
		Name: "Gifts",
		Type: models.CategoryTypeExpense,
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)
}

func (suite *TestSuiteStandard) TestCategoryAdminUpdate() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	token := suite.adminSession()

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, categoryPath(groceries.ID), `{"icon": "shopping-cart"}`, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Groceries", response.Data.Name)
	suite.Assert().Equal("shopping-cart", response.Data.Icon)
}

func (suite *TestSuiteStandard) TestCategoryAdminDelete() {
	groceries := suite.createCategory("Groceries", models.CategoryTypeExpense)
	token := suite.adminSession()

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, categoryPath(groceries.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, categoryPath(groceries.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
