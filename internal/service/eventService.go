package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/entity"
)

// CreateEventRequest represents the data needed to create an event
type CreateEventRequest struct {
	Title       string               `json:"title" binding:"required,min=1,max=255"`
	Description string               `json:"description" binding:"required,max=2000"`
	Location    string               `json:"location" binding:"required,max=255"`
	EventDate   entity.EventTime     `json:"eventDate" binding:"required"`
	Category    entity.EventCategory `json:"category" binding:"required,oneof=technical non_technical"`
	Type        entity.EventType     `json:"type" binding:"omitempty,oneof=free paid"`
	Price       int                  `json:"price" binding:"omitempty,min=0"`
	Capacity    int                  `json:"capacity" binding:"required,min=1,max=100000"`
	BannerImage string               `json:"bannerImage"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	Location    *string               `json:"location,omitempty"`
	EventDate   *entity.EventTime     `json:"eventDate,omitempty"`
	Category    *entity.EventCategory `json:"category,omitempty"`
	Type        *entity.EventType     `json:"type,omitempty"`
	Price       *int                  `json:"price,omitempty"`
	Capacity    *int                  `json:"capacity,omitempty"`
	BannerImage *string               `json:"bannerImage,omitempty"`
}

// EventFilter represents server-side listing filters
type EventFilter struct {
	Query    string
	Category string
	Type     string
	When     string // "upcoming" or "past"
}

type eventService struct {
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo repository.EventRepository,
	registrationRepo repository.RegistrationRepository,
) EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID int64, req *CreateEventRequest) (*entity.Event, error) {
	eventType := req.Type
	if eventType == "" {
		eventType = entity.TypeFree
	}

	price := req.Price
	if eventType == entity.TypeFree {
		price = 0
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		EventDate:   req.EventDate,
		Category:    req.Category,
		Type:        eventType,
		Price:       price,
		Capacity:    req.Capacity,
		BannerImage: req.BannerImage,
		OrganizerID: organizerID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents возвращает мероприятия, отфильтрованные на стороне сервера.
// Пустой фильтр возвращает все мероприятия.
func (s *eventService) ListEvents(ctx context.Context, filter *EventFilter) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if filter == nil {
		return events, nil
	}

	now := time.Now()
	filtered := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if !matchesFilter(event, filter, now) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}

func matchesFilter(event *entity.Event, filter *EventFilter, now time.Time) bool {
	if filter.Category != "" && string(event.Category) != filter.Category {
		return false
	}
	if filter.Type != "" && string(event.Type) != filter.Type {
		return false
	}
	switch filter.When {
	case "upcoming":
		if !event.EventDate.After(now) {
			return false
		}
	case "past":
		if !event.EventDate.Before(now) {
			return false
		}
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(event.Title), q) &&
			!strings.Contains(strings.ToLower(event.Description), q) &&
			!strings.Contains(strings.ToLower(event.Location), q) {
			return false
		}
	}
	return true
}

func (s *eventService) UpdateEvent(ctx context.Context, id, actorID int64, req *UpdateEventRequest) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, entity.ErrForbidden
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, entity.ErrInvalidInput
		}
		event.Category = *req.Category
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, entity.ErrInvalidInput
		}
		event.Type = *req.Type
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, entity.ErrInvalidInput
		}
		event.Price = *req.Price
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, entity.ErrInvalidInput
		}
		event.Capacity = *req.Capacity
	}
	if req.BannerImage != nil {
		event.BannerImage = *req.BannerImage
	}
	// Хранилище дополнительно обнуляет цену бесплатных мероприятий

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id, actorID int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return entity.ErrForbidden
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventService) GetEventsByCategory(ctx context.Context, category entity.EventCategory) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by category: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEventsByOrganizer(ctx context.Context, organizerID int64) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by organizer: %w", err)
	}
	return events, nil
}

// GetEventStats возвращает статистику мероприятия. Доступна только организатору.
func (s *eventService) GetEventStats(ctx context.Context, eventID, actorID int64) (*entity.EventStats, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, entity.ErrForbidden
	}

	registrations, err := s.registrationRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event registrations: %w", err)
	}

	stats := &entity.EventStats{
		TotalRegistrations: len(registrations),
		Capacity:           event.Capacity,
	}
	for _, reg := range registrations {
		if reg.HasAttended {
			stats.Attendees++
		}
	}
	if event.Capacity > 0 {
		stats.FillRate = float64(len(registrations)) / float64(event.Capacity) * 100
	}
	return stats, nil
}
