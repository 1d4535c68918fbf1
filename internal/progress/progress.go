// Package progress computes budget progress from budgets and transactions.
//
// The computation is pure: callers fetch the budget and the matching
// transaction sums from the repositories and pass them in.
package progress

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Status is the three-tier classification used by clients for
// color-coding budget progress.
type Status string

const (
	StatusNominal  Status = "nominal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Thresholds configure the status tiering, in percent of the budget
// amount. They are a presentation policy, not a financial rule.
type Thresholds struct {
	Warning  int64
	Critical int64
}

// DefaultThresholds returns the standard 70/90 tiering.
func DefaultThresholds() Thresholds {
	return Thresholds{Warning: 70, Critical: 90}
}

// Progress describes how far a budget is used up.
type Progress struct {
	BudgetID   uuid.UUID `json:"budgetId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the budget
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the budgeted category

	Amount    decimal.Decimal `json:"amount" example:"500"`    // The budget limit
	Spent     decimal.Decimal `json:"spent" example:"200"`     // Sum of matching expense amounts
	Remaining decimal.Decimal `json:"remaining" example:"300"` // Amount minus spent, negative when overspent

	// PercentUsed is rounded and clamped to [0, 100] for display. The
	// over-budget condition is carried by IsOverBudget, it is not lost
	// to the clamping.
	PercentUsed  int64  `json:"percentUsed" example:"40"`
	IsOverBudget bool   `json:"isOverBudget" example:"false"`
	Status       Status `json:"status" example:"nominal"`
}

var oneHundred = decimal.NewFromInt(100)

// Compute derives the progress of a budget from the spent sum.
//
// A budget amount of zero yields percentUsed = 0 without dividing and
// counts as immediately over budget as soon as anything was spent.
func Compute(budget models.Budget, spent decimal.Decimal, t Thresholds) Progress {
	p := Progress{
		BudgetID:   budget.ID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
	}

	if budget.Amount.IsZero() {
		p.IsOverBudget = spent.IsPositive()
		if p.IsOverBudget {
			p.Status = StatusCritical
		} else {
			p.Status = StatusNominal
		}
		return p
	}

	// Unclamped percentage, used for the status tiering
	raw := spent.Mul(oneHundred).Div(budget.Amount).Round(0).IntPart()

	p.PercentUsed = min(max(raw, 0), 100)
	p.IsOverBudget = spent.GreaterThan(budget.Amount)

	switch {
	case p.IsOverBudget || raw > t.Critical:
		p.Status = StatusCritical
	case raw >= t.Warning:
		p.Status = StatusWarning
	default:
		p.Status = StatusNominal
	}

	return p
}

// Sum adds up the amounts of all expense transactions that match the
// budget's category and fall into its window, inclusive on both ends.
func Sum(budget models.Budget, transactions []models.Transaction) decimal.Decimal {
	spent := decimal.Zero

	for _, transaction := range transactions {
		if transaction.Type != models.CategoryTypeExpense {
			continue
		}

		if transaction.CategoryID != budget.CategoryID {
			continue
		}

		if !transaction.Date.Within(budget.StartDate, budget.EndDate) {
			continue
		}

		spent = spent.Add(transaction.Amount)
	}

	return spent
}

// Collect computes the progress for every budget from a single shared
// transaction slice, so the caller needs only one query for any number
// of budgets. Transactions are bucketed by category first since budget
// windows differ per budget.
func Collect(budgets []models.Budget, transactions []models.Transaction, t Thresholds) []Progress {
	byCategory := make(map[uuid.UUID][]models.Transaction)
	for _, transaction := range transactions {
		byCategory[transaction.CategoryID] = append(byCategory[transaction.CategoryID], transaction)
	}

	progresses := make([]Progress, 0, len(budgets))
	for _, budget := range budgets {
		spent := Sum(budget, byCategory[budget.CategoryID])
		progresses = append(progresses, Compute(budget, spent, t))
	}

	return progresses
}
