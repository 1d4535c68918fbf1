package v1

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/types"
	ll_uuid "github.com/ledgerlite/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type        models.CategoryType `json:"type" example:"expense" enums:"income,expense"`                                                             // Whether money came in or went out
	CategoryID  uuid.UUID           `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                                 // The ID of the category this transaction belongs to
	Amount      decimal.Decimal     `json:"amount" example:"14.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`       // The amount of money moved
	Description string              `json:"description" example:"Weekly groceries" default:""`                                                         // What the transaction was for
	Date        types.Date          `json:"date" example:"2025-07-15"`                                                                                 // The day the transaction happened. Defaults to today.
	Note        string              `json:"note" example:"Split with roommate" default:""`                                                             // Note about the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
		Note:        editable.Note,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	UserID uuid.UUID `json:"userId" example:"d1b4b0b4-85b2-4f0b-9077-cc4b0c8f63e3"` // The ID of the user owning the transaction
}

// newTransaction returns the API representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:        model.Type,
			CategoryID:  model.CategoryID,
			Amount:      model.Amount,
			Description: model.Description,
			Date:        model.Date,
			Note:        model.Note,
		},
		UserID: model.UserID,
	}
}

type TransactionResponse struct {
	Data *Transaction `json:"data"` // The resource
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of resources
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Type       string       `form:"type"`      // Filter by transaction type
	CategoryID ll_uuid.UUID `form:"category"`  // Filter by category ID
	FromDate   string       `form:"fromDate"`  // Transactions on or after this day
	UntilDate  string       `form:"untilDate"` // Transactions on or before this day
	Offset     uint         `form:"offset"`    // The offset of the first transaction returned. Defaults to 0.
	Limit      int          `form:"limit"`     // Maximum number of transactions to return. Defaults to 50.
}
