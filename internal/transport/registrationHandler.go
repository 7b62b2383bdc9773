package transport

import (
	"net/http"
	"strconv"

	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService service.RegistrationService
}

func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegisterRequest представляет запрос на регистрацию на мероприятие.
// userId берется из сессии, клиент его не передает.
type RegisterRequest struct {
	EventID int64 `json:"eventId" binding:"required"`
	HasPaid bool  `json:"hasPaid"`
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	registration, err := h.registrationService.Register(c.Request.Context(), user.ID, req.EventID, req.HasPaid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, registration)
}

func (h *RegistrationHandler) GetUserRegistrations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	registrations, err := h.registrationService.GetUserRegistrations(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) GetEventRegistrations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event id", Code: "validation"})
		return
	}

	registrations, err := h.registrationService.GetEventRegistrations(c.Request.Context(), eventID, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) CancelRegistration(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid registration id", Code: "validation"})
		return
	}

	if err := h.registrationService.CancelRegistration(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration cancelled"})
}

func (h *RegistrationHandler) MarkAttended(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid registration id", Code: "validation"})
		return
	}

	registration, err := h.registrationService.MarkAttended(c.Request.Context(), id, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, registration)
}
