package transport

import (
	"net/http"
	"strconv"

	"github.com/eventsphere/server/internal/entity"
	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents отдает список мероприятий. Фильтры применяются на сервере
// через query-параметры: q, category, type, when=upcoming|past.
func (h *EventHandler) ListEvents(c *gin.Context) {
	filter := &service.EventFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Type:     c.Query("type"),
		When:     c.Query("when"),
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event id", Code: "validation"})
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event id", Code: "validation"})
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event id", Code: "validation"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) GetEventsByCategory(c *gin.Context) {
	category := entity.EventCategory(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid event category", Code: "validation"})
		return
	}

	events, err := h.eventService.GetEventsByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEventsByOrganizer(c *gin.Context) {
	organizerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid organizer id", Code: "validation"})
		return
	}

	events, err := h.eventService.GetEventsByOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}
