package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/progress"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/ledgerlite/backend/internal/types"
)

// BudgetController serves the endpoints for category budgets and their
// progress.
type BudgetController struct {
	budgets      *repository.BudgetRepository
	transactions *repository.TransactionRepository
	thresholds   progress.Thresholds
}

func NewBudgetController(budgets *repository.BudgetRepository, transactions *repository.TransactionRepository, thresholds progress.Thresholds) BudgetController {
	return BudgetController{
		budgets:      budgets,
		transactions: transactions,
		thresholds:   thresholds,
	}
}

func (co BudgetController) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.Options)
		r.GET("", co.List)
		r.POST("", co.Create)
	}
	{
		r.OPTIONS("/progress/all", httputil.OptionsGet)
		r.GET("/progress/all", co.ProgressAll)
	}
	{
		r.OPTIONS("/:id", co.OptionsDetail)
		r.GET("/:id", co.Get)
		r.PATCH("/:id", co.Update)
		r.PUT("/:id", co.Update)
		r.DELETE("/:id", co.Delete)
	}
	{
		r.OPTIONS("/:id/progress", httputil.OptionsGet)
		r.GET("/:id/progress", co.Progress)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/v1/budgets [options]
func (co BudgetController) Options(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/budgets/{id} [options]
func (co BudgetController) OptionsDetail(c *gin.Context) {
	if _, err := co.owned(c); err != nil {
		renderError(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget for the authenticated user. Creation is refused when another budget for the same category overlaps the requested window.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/v1/budgets [post]
func (co BudgetController) Create(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	budget := editable.model()
	budget.UserID = auth.CurrentUser(c).ID

	overlaps, err := co.budgets.AnyOverlapping(budget.UserID, budget.CategoryID, budget.StartDate, budget.EndDate, budget.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	if overlaps {
		renderError(c, errBudgetOverlaps)
		return
	}

	if err := co.budgets.Create(&budget); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newBudget(budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &apiResource})
}

// @Summary		List budgets
// @Description	Returns the budgets of the authenticated user
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/v1/budgets [get]
// @Param			active	query	bool	false	"Only budgets whose window contains the asOf day"
// @Param			asOf	query	string	false	"Reference day (YYYY-MM-DD). Defaults to today."
func (co BudgetController) List(c *gin.Context) {
	var query BudgetQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		renderError(c, httputil.ErrInvalidQuery)
		return
	}

	asOf, err := query.asOf()
	if err != nil {
		renderError(c, err)
		return
	}

	user := auth.CurrentUser(c)

	var budgets []models.Budget
	if query.Active {
		budgets, err = co.budgets.FindActive(user.ID, asOf)
	} else {
		budgets, err = co.budgets.FindByUser(user.ID)
	}
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/budgets/{id} [get]
func (co BudgetController) Get(c *gin.Context) {
	budget, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	apiResource := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified. The merged budget must still have a valid window.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		403		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/v1/budgets/{id} [patch]
func (co BudgetController) Update(c *gin.Context) {
	budget, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	// Prefill the editable fields with the stored values so that a partial
	// body only overwrites what it specifies. Window validation then always
	// sees the merged start and end dates.
	editable := BudgetEditable{
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Period:     budget.Period,
		StartDate:  budget.StartDate,
		EndDate:    budget.EndDate,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	updated := editable.model()
	updated.DefaultModel = budget.DefaultModel
	updated.UserID = budget.UserID

	if err := co.budgets.Save(&updated); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newBudget(updated)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Transactions are not affected.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/budgets/{id} [delete]
func (co BudgetController) Delete(c *gin.Context) {
	budget, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	found, err := co.budgets.Delete(budget.ID)
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

// @Summary		Budget progress
// @Description	Returns how much of the budget has been spent, how much remains and the status tier
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetProgressResponse
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/budgets/{id}/progress [get]
func (co BudgetController) Progress(c *gin.Context) {
	budget, err := co.owned(c)
	if err != nil {
		renderError(c, err)
		return
	}

	spent, err := co.transactions.SumExpenses(budget.UserID, budget.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		renderError(c, err)
		return
	}

	result := progress.Compute(budget, spent, co.thresholds)
	c.JSON(http.StatusOK, BudgetProgressResponse{Data: &result})
}

// @Summary		Progress of all active budgets
// @Description	Returns the progress of every budget whose window contains the asOf day
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetProgressListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			asOf	query	string	false	"Reference day (YYYY-MM-DD). Defaults to today."
// @Router			/api/v1/budgets/progress/all [get]
func (co BudgetController) ProgressAll(c *gin.Context) {
	var query BudgetQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		renderError(c, httputil.ErrInvalidQuery)
		return
	}

	asOf, err := query.asOf()
	if err != nil {
		renderError(c, err)
		return
	}

	user := auth.CurrentUser(c)

	budgets, err := co.budgets.FindActive(user.ID, asOf)
	if err != nil {
		renderError(c, err)
		return
	}

	if len(budgets) == 0 {
		c.JSON(http.StatusOK, BudgetProgressListResponse{Data: []progress.Progress{}})
		return
	}

	// One transaction query covering the widest window of all active
	// budgets. Collect narrows per budget afterwards.
	from, until := budgets[0].StartDate, budgets[0].EndDate
	for _, budget := range budgets[1:] {
		if budget.StartDate.Before(from) {
			from = budget.StartDate
		}
		if budget.EndDate.After(until) {
			until = budget.EndDate
		}
	}

	transactions, err := co.transactions.FindExpensesInRange(user.ID, from, until)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetProgressListResponse{
		Data: progress.Collect(budgets, transactions, co.thresholds),
	})
}

// owned loads the budget from the URI and verifies that it belongs to
// the authenticated user.
func (co BudgetController) owned(c *gin.Context) (models.Budget, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Budget{}, httputil.ErrInvalidUUID
	}

	budget, err := co.budgets.FindByID(uri.ID.UUID)
	if err != nil {
		return models.Budget{}, err
	}

	if budget.UserID != auth.CurrentUser(c).ID {
		return models.Budget{}, errNotResourceOwner
	}

	return budget, nil
}

// asOf parses the reference day from the query, defaulting to today.
func (f BudgetQueryFilter) asOf() (types.Date, error) {
	if f.AsOf == "" {
		return types.Today(), nil
	}

	asOf, err := types.ParseDate(f.AsOf)
	if err != nil {
		return types.Date{}, httputil.ErrInvalidQuery
	}

	return asOf, nil
}
