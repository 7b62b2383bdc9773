package transport

import (
	"net/http"
	"strconv"

	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	userService  service.UserService
	eventService service.EventService
}

func NewAnalyticsHandler(userService service.UserService, eventService service.EventService) *AnalyticsHandler {
	return &AnalyticsHandler{
		userService:  userService,
		eventService: eventService,
	}
}

func (h *AnalyticsHandler) GetUserStats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := h.userService.GetUserStats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetEventStats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event id", Code: "validation"})
		return
	}

	stats, err := h.eventService.GetEventStats(c.Request.Context(), eventID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
