package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/ledgerlite/backend/internal/types"
)

// TransactionController serves the endpoints for income and expense
// records. All of them operate on the records of the authenticated user.
type TransactionController struct {
	transactions *repository.TransactionRepository
}

func NewTransactionController(transactions *repository.TransactionRepository) TransactionController {
	return TransactionController{transactions: transactions}
}

func (co TransactionController) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.Options)
		r.GET("", co.List)
		r.POST("", co.Create)
	}
	{
		r.OPTIONS("/:id", co.OptionsDetail)
		r.GET("/:id", co.Get)
		r.PATCH("/:id", co.Update)
		r.PUT("/:id", co.Update)
		r.DELETE("/:id", co.Delete)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/v1/transactions [options]
func (co TransactionController) Options(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/transactions/{id} [options]
func (co TransactionController) OptionsDetail(c *gin.Context) {
	if _, err := co.owned(c); err != nil {
		renderError(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/v1/transactions [post]
func (co TransactionController) Create(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	transaction := editable.model()
	transaction.UserID = auth.CurrentUser(c).ID

	if err := co.transactions.Create(&transaction); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &apiResource})
}

// @Summary		List transactions
// @Description	Returns the transactions of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/v1/transactions [get]
// @Param			type		query	string	false	"Filter by type (income or expense)"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			fromDate	query	string	false	"Transactions on or after this day (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions on or before this day (YYYY-MM-DD)"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func (co TransactionController) List(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		renderError(c, httputil.ErrInvalidQuery)
		return
	}

	filter, err := query.filter(c)
	if err != nil {
		renderError(c, err)
		return
	}

	user := auth.CurrentUser(c)

	transactions, err := co.transactions.FindByUser(user.ID, filter)
	if err != nil {
		renderError(c, err)
		return
	}

	count, err := co.transactions.CountByUser(user.ID, filter)
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: query.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/transactions/{id} [get]
func (co TransactionController) Get(c *gin.Context) {
	transaction, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	apiResource := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		403			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/v1/transactions/{id} [patch]
func (co TransactionController) Update(c *gin.Context) {
	transaction, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	// Prefill the editable fields with the stored values so that a partial
	// body only overwrites what it specifies.
	editable := TransactionEditable{
		Type:        transaction.Type,
		CategoryID:  transaction.CategoryID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
		Note:        transaction.Note,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	updated := editable.model()
	updated.DefaultModel = transaction.DefaultModel
	updated.UserID = transaction.UserID

	if err := co.transactions.Save(&updated); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newTransaction(updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/transactions/{id} [delete]
func (co TransactionController) Delete(c *gin.Context) {
	transaction, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	found, err := co.transactions.Delete(transaction.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	if !found {
		renderError(c, repository.ErrNotFound)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// owned loads the transaction from the URI and verifies that it belongs
// to the authenticated user.
func (co TransactionController) owned(c *gin.Context) (models.Transaction, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Transaction{}, httputil.ErrInvalidUUID
	}

	transaction, err := co.transactions.FindByID(uri.ID.UUID)
	if err != nil {
		return models.Transaction{}, err
	}

	if transaction.UserID != auth.CurrentUser(c).ID {
		return models.Transaction{}, errNotResourceOwner
	}

	return transaction, nil
}

// filter translates the bound query parameters into a repository filter.
func (f TransactionQueryFilter) filter(_ *gin.Context) (repository.TransactionFilter, error) {
	filter := repository.TransactionFilter{
		CategoryID: f.CategoryID.UUID,
		Offset:     int(f.Offset),
		Limit:      50,
	}

	if f.Type != "" {
		transactionType := models.CategoryType(f.Type)
		if !transactionType.Valid() {
			return repository.TransactionFilter{}, models.ErrTransactionTypeInvalid
		}
		filter.Type = transactionType
	}

	if f.FromDate != "" {
		from, err := types.ParseDate(f.FromDate)
		if err != nil {
			return repository.TransactionFilter{}, httputil.ErrInvalidQuery
		}
		filter.From = from
	}

	if f.UntilDate != "" {
		until, err := types.ParseDate(f.UntilDate)
		if err != nil {
			return repository.TransactionFilter{}, httputil.ErrInvalidQuery
		}
		filter.Until = until
	}

	if f.Limit > 0 {
		filter.Limit = f.Limit
	}

	return filter, nil
}
