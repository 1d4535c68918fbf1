package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
)

// CategoryController serves the endpoints for the shared category
// catalog. Reading is public, mutations are reserved for
// administrators.
type CategoryController struct {
	categories *repository.CategoryRepository
}

func NewCategoryController(categories *repository.CategoryRepository) CategoryController {
	return CategoryController{categories: categories}
}

// RegisterPublicRoutes registers the read endpoints. The catalog is
// shared, reading it needs no token.
func (co CategoryController) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.List)
	r.OPTIONS("/:id", co.OptionsDetail)
	r.GET("/:id", co.Get)
}

// RegisterAdminRoutes registers the mutating endpoints.
func (co CategoryController) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("", auth.RequireAdmin(), co.Create)
	r.PATCH("/:id", auth.RequireAdmin(), co.Update)
	r.PUT("/:id", auth.RequireAdmin(), co.Update)
	r.DELETE("/:id", auth.RequireAdmin(), co.Delete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/api/v1/categories [options]
func (co CategoryController) Options(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/categories/{id} [options]
func (co CategoryController) OptionsDetail(c *gin.Context) {
	if _, err := co.load(c); err != nil {
		renderError(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category. Requires the admin role.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		403			{object}	httperror.Error
// @Failure		409			{object}	httperror.Error
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/v1/categories [post]
func (co CategoryController) Create(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	category := editable.model()
	if err := co.categories.Create(&category); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newCategory(category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &apiResource})
}

// @Summary		List categories
// @Description	Returns all categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	httperror.Error
// @Router			/api/v1/categories [get]
// @Param			type	query	string	false	"Filter by type (income or expense)"
func (co CategoryController) List(c *gin.Context) {
	var query CategoryQueryFilter
	if err := c.ShouldBind(&query); err != nil {
		renderError(c, httputil.ErrInvalidQuery)
		return
	}

	var categoryType models.CategoryType
	if query.Type != "" {
		categoryType = models.CategoryType(query.Type)
		if !categoryType.Valid() {
			renderError(c, models.ErrCategoryTypeInvalid)
			return
		}
	}

	categories, err := co.categories.FindAll(categoryType)
	if err != nil {
		renderError(c, err)
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/categories/{id} [get]
func (co CategoryController) Get(c *gin.Context) {
	category, err := co.load(c)
	if err != nil {
		renderError(c, err)
		return
	}

	apiResource := newCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Update category
// @Description	Updates an existing category. Requires the admin role. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		403			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/v1/categories/{id} [patch]
func (co CategoryController) Update(c *gin.Context) {
	category, err := co.load(c)
	if err != nil {
		renderError(c, err)
		return
	}

	editable := CategoryEditable{
		Name:  category.Name,
		Type:  category.Type,
		Icon:  category.Icon,
		Color: category.Color,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		renderError(c, err)
		return
	}

	updated := editable.model()
	updated.DefaultModel = category.DefaultModel

	if err := co.categories.Save(&updated); err != nil {
		renderError(c, err)
		return
	}

	apiResource := newCategory(updated)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category. Requires the admin role. Existing transactions keep their category reference.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/v1/categories/{id} [delete]
func (co CategoryController) Delete(c *gin.Context) {
	category, err := co.load(c)
	if err != nil {
		renderError(c, err)
		return
	}

	found, err := co.categories.Delete(category.ID)
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

// load reads the category referenced in the URI.
func (co CategoryController) load(c *gin.Context) (models.Category, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Category{}, httputil.ErrInvalidUUID
	}

	return co.categories.FindByID(uri.ID.UUID)
}
