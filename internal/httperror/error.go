// Package httperror defines the error body returned by all API endpoints.
package httperror

// Error is the response body for every non-2xx response.
type Error struct {
	Message string   `json:"message" example:"the budget startDate must be before its endDate"` // Human readable description of the error
	Details []string `json:"details,omitempty" example:"Amount is required"`                    // Field level details for validation errors
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}

// NewWithDetails returns an error body carrying field level details.
func NewWithDetails(e error, details []string) Error {
	return Error{
		Message: e.Error(),
		Details: details,
	}
}
