package models

import "errors"

var ErrGeneral = errors.New("an error occurred on the server during your request, please contact your server administrator")

// Validation errors. They are returned from the model hooks and reported
// to API clients with HTTP status 400.
var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of 'income', 'expense'")
	ErrBudgetAmountNotPositive      = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid          = errors.New("the budget period must be one of 'monthly', 'quarterly', 'yearly'")
	ErrBudgetWindowInvalid          = errors.New("the budget startDate must be before its endDate")
	ErrCategoryTypeInvalid          = errors.New("the category type must be one of 'income', 'expense'")
	ErrCategoryNotFound             = errors.New("the referenced category does not exist")
	ErrCategoryTypeMismatch         = errors.New("the category type does not match the transaction type")
	ErrUserRoleInvalid              = errors.New("the user role must be one of 'user', 'admin'")
	ErrEmailTaken                   = errors.New("a user with this email already exists")
)

var validationErrors = []error{
	ErrTransactionAmountNotPositive,
	ErrTransactionTypeInvalid,
	ErrBudgetAmountNotPositive,
	ErrBudgetPeriodInvalid,
	ErrBudgetWindowInvalid,
	ErrCategoryTypeInvalid,
	ErrCategoryNotFound,
	ErrCategoryTypeMismatch,
	ErrUserRoleInvalid,
}

// IsValidation reports whether err is one of the model validation errors.
func IsValidation(err error) bool {
	for _, e := range validationErrors {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
