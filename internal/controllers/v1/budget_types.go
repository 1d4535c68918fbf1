package v1

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/progress"
	"github.com/ledgerlite/backend/internal/types"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	CategoryID uuid.UUID           `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                           // The ID of the expense category this budget limits
	Amount     decimal.Decimal     `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // The spending limit for the window
	Period     models.BudgetPeriod `json:"period" example:"monthly" enums:"monthly,quarterly,yearly"`                                           // The cadence the budget is planned in
	StartDate  types.Date          `json:"startDate" example:"2025-07-01"`                                                                      // First day of the budget window
	EndDate    types.Date          `json:"endDate" example:"2025-07-31"`                                                                        // Last day of the budget window
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Period:     editable.Period,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	UserID uuid.UUID `json:"userId" example:"d1b4b0b4-85b2-4f0b-9077-cc4b0c8f63e3"` // The ID of the user owning the budget
}

// newBudget returns the API representation of the resource
func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Amount:     model.Amount,
			Period:     model.Period,
			StartDate:  model.StartDate,
			EndDate:    model.EndDate,
		},
		UserID: model.UserID,
	}
}

type BudgetResponse struct {
	Data *Budget `json:"data"` // The resource
}

type BudgetListResponse struct {
	Data []Budget `json:"data"` // List of resources
}

type BudgetProgressResponse struct {
	Data *progress.Progress `json:"data"` // Progress of the budget
}

type BudgetProgressListResponse struct {
	Data []progress.Progress `json:"data"` // Progress of all active budgets
}

type BudgetQueryFilter struct {
	Active bool   `form:"active"` // Only budgets whose window contains the asOf day
	AsOf   string `form:"asOf"`   // Reference day (YYYY-MM-DD). Defaults to today.
}
