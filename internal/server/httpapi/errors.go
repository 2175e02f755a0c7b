// Package httpapi hosts the REST boundary. It maps the service layer's
// tagged errors to transport responses; no business rules live here.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/burgerlab/backend/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError translates a sentinel error into an HTTP status and a stable
// machine-readable code. Unknown errors collapse to 500 without leaking
// internals.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, common.ErrWrongOldPassword):
		status, code = http.StatusBadRequest, "WRONG_OLD_PASSWORD"
	case errors.Is(err, common.ErrSamePassword):
		status, code = http.StatusBadRequest, "SAME_PASSWORD"
	case errors.Is(err, common.ErrPasswordTooShort):
		status, code = http.StatusBadRequest, "PASSWORD_TOO_SHORT"
	case errors.Is(err, common.ErrInvalidOrExpiredToken):
		status, code = http.StatusBadRequest, "INVALID_OR_EXPIRED_TOKEN"
	case errors.Is(err, common.ErrEmailExists):
		status, code = http.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, common.ErrAlreadyExists):
		status, code = http.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, common.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, common.ErrDeliveryFailure):
		status, code = http.StatusInternalServerError, "DELIVERY_FAILURE"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": code})
}

func respondValidationError(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_ERROR", "detail": msg})
}
