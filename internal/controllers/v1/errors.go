package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httperror"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/models"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	errNotResourceOwner   = errors.New("you are not allowed to access this resource")
	errInvalidCredentials = errors.New("invalid email or password")
	errBudgetOverlaps     = errors.New("an active budget for this category already exists in the requested time window")
	errConfirmationPhrase = errors.New("the confirmation phrase does not match")
)

// status returns the appropriate HTTP status code for an error.
func status(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, errNotResourceOwner):
		return http.StatusForbidden

	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, errBudgetOverlaps):
		return http.StatusConflict

	case models.IsValidation(err),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQuery),
		errors.Is(err, httputil.ErrInvalidUUID),
		errors.Is(err, errConfirmationPhrase):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// renderError writes the error response for err and aborts the request.
func renderError(c *gin.Context, err error) {
	code := status(err)

	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = errors.New("an error occurred on the server during your request, please contact your server administrator")
	}

	c.AbortWithStatusJSON(code, httperror.NewWithDetails(err, httputil.ErrorDetails(err)))
}
