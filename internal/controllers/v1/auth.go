package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
)

// AuthController serves registration, login and account self-service.
type AuthController struct {
	users  *repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthController(users *repository.UserRepository, tokens *auth.TokenService) AuthController {
	return AuthController{users: users, tokens: tokens}
}

// RegisterPublicRoutes registers the routes that work without a token.
func (co AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// RegisterProtectedRoutes registers the routes that require a token.
func (co AuthController) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/profile", httputil.OptionsGet)
	r.GET("/profile", co.Profile)
	r.OPTIONS("/password", co.optionsPasswordChange)
	r.PUT("/password", co.ChangePassword)
}

func (co AuthController) optionsPasswordChange(c *gin.Context) {
	c.Header("allow", "OPTIONS, PUT")
	c.Status(http.StatusNoContent)
}

// @Summary		Register
// @Description	Creates a new user account and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/api/v1/auth/register [post]
func (co AuthController) Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		renderError(c, err)
		return
	}

	_, err := co.users.FindByEmail(request.Email)
	if err == nil {
		renderError(c, models.ErrEmailTaken)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		renderError(c, err)
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	user := models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	// The unique index backstops the availability check above
	if err := co.users.Create(&user); err != nil {
		renderError(c, err)
		return
	}

	token, err := co.tokens.Generate(user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		Data: &Session{Token: token, User: newUser(user)},
	})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/api/v1/auth/login [post]
func (co AuthController) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		renderError(c, err)
		return
	}

	user, err := co.users.FindByEmail(request.Email)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(c, errInvalidCredentials)
		return
	} else if err != nil {
		renderError(c, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, request.Password) {
		renderError(c, errInvalidCredentials)
		return
	}

	token, err := co.tokens.Generate(user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Data: &Session{Token: token, User: newUser(user)},
	})
}

// @Summary		Profile
// @Description	Returns the authenticated user
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httperror.Error
// @Router			/api/v1/auth/profile [get]
func (co AuthController) Profile(c *gin.Context) {
	user := newUser(auth.CurrentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Change password
// @Description	Changes the password of the authenticated user. The current password must be provided.
// @Tags			Auth
// @Accept			json
// @Success		204
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			passwords	body		ChangePasswordRequest	true	"Passwords"
// @Router			/api/v1/auth/password [put]
func (co AuthController) ChangePassword(c *gin.Context) {
	var request ChangePasswordRequest
	if err := httputil.BindData(c, &request); err != nil {
		renderError(c, err)
		return
	}

	user := auth.CurrentUser(c)
	if !auth.CheckPassword(user.PasswordHash, request.CurrentPassword) {
		renderError(c, errInvalidCredentials)
		return
	}

	hash, err := auth.HashPassword(request.NewPassword)
	if err != nil {
		renderError(c, err)
		return
	}

	user.PasswordHash = hash
	if err := co.users.Save(&user); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
