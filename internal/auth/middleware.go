package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/httperror"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
)

var errAdminRequired = errors.New("you need administrator permissions for this operation")
var errUnauthenticated = errors.New("authentication required: provide a valid bearer token")
var errUserLookupFailed = errors.New("an error occurred on the server during your request, please contact your server administrator")

const contextUserKey = "currentUser"

// Middleware resolves the Authorization bearer token into the user it was
// issued for and aborts with 401 when that is not possible. Handlers
// behind it can rely on CurrentUser.
func Middleware(tokens *TokenService, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// Tokens can outlive their account. Anything other than a
		// missing user is an infrastructure failure, not bad
		// credentials.
		user, err := users.FindByID(userID)
		if errors.Is(err, repository.ErrNotFound) {
			abortUnauthorized(c)
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(errUserLookupFailed))
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin aborts with 403 when the authenticated user is not an
// admin. It must run behind Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, httperror.New(errAdminRequired))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user for the request. It is only
// valid behind Middleware.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.Get(contextUserKey)
	u, _ := user.(models.User)
	return u
}

func abortUnauthorized(c *gin.Context) {
	c.Header("www-authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(errUnauthenticated))
}
