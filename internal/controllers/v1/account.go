package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/repository"
)

// AccountController serves destructive account-scoped operations.
type AccountController struct {
	users *repository.UserRepository
}

func NewAccountController(users *repository.UserRepository) AccountController {
	return AccountController{users: users}
}

func (co AccountController) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/data", co.optionsData)
	r.DELETE("/data", co.DeleteData)
}

func (co AccountController) optionsData(c *gin.Context) {
	c.Header("allow", "OPTIONS, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Delete all own data
// @Description	Permanently deletes all transactions and budgets of the authenticated user. The account itself is kept.
// @Tags			Account
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			confirm	query		string	false	"Confirmation to delete all own data. Must have the value 'delete-all-my-data'"
// @Router			/api/v1/user/data [delete]
func (co AccountController) DeleteData(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	if err := c.Bind(&params); err != nil || params.Confirm != "delete-all-my-data" {
		renderError(c, errConfirmationPhrase)
		return
	}

	if err := co.users.PurgeOwnedData(auth.CurrentUser(c).ID); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
