package transport

import (
	"errors"
	"net/http"

	"github.com/eventsphere/server/internal/entity"
	"github.com/gin-gonic/gin"
)

// ErrorResponse представляет ответ с ошибкой. Code — машиночитаемый
// вид ошибки, чтобы клиенту не приходилось разбирать текст сообщения.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrRegistrationNotFound),
		errors.Is(err, entity.ErrNotificationNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, entity.ErrUsernameTaken):
		return http.StatusBadRequest, "duplicate_username"
	case errors.Is(err, entity.ErrEmailTaken):
		return http.StatusBadRequest, "duplicate_email"
	case errors.Is(err, entity.ErrAlreadyRegistered):
		return http.StatusBadRequest, "duplicate_registration"
	case errors.Is(err, entity.ErrCapacityReached):
		return http.StatusBadRequest, "capacity_reached"
	case errors.Is(err, entity.ErrPaymentRequired):
		return http.StatusBadRequest, "payment_required"
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrSessionNotFound):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func respondError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	c.JSON(status, ErrorResponse{Message: err.Error(), Code: code})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Code: "validation"})
}
