package service

import (
	"context"
	"testing"
	"time"

	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (EventService, repository.RegistrationRepository) {
	t.Helper()
	registrationRepo := repository.NewRegistrationRepository()
	return NewEventService(repository.NewEventRepository(), registrationRepo), registrationRepo
}

func TestCreateEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	date := entity.EventTime{Time: time.Now().Add(72 * time.Hour)}
	created, err := svc.CreateEvent(ctx, 1, &CreateEventRequest{
		Title:       "Intro to Rust",
		Description: "Systems programming workshop",
		Location:    "Room 101",
		EventDate:   date,
		Category:    entity.CategoryTechnical,
		Type:        entity.TypePaid,
		Price:       250,
		Capacity:    40,
	})
	require.NoError(t, err)

	found, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Rust", found.Title)
	assert.Equal(t, "Systems programming workshop", found.Description)
	assert.Equal(t, "Room 101", found.Location)
	assert.Equal(t, entity.CategoryTechnical, found.Category)
	assert.Equal(t, entity.TypePaid, found.Type)
	assert.Equal(t, 250, found.Price)
	assert.Equal(t, 40, found.Capacity)
	assert.Equal(t, int64(1), found.OrganizerID)
}

func TestCreateEventFreeCoercesPrice(t *testing.T) {
	tests := []struct {
		name      string
		eventType entity.EventType
		price     int
		expected  int
	}{
		{name: "free with price input", eventType: entity.TypeFree, price: 999, expected: 0},
		{name: "empty type defaults free", eventType: "", price: 999, expected: 0},
		{name: "paid keeps price", eventType: entity.TypePaid, price: 999, expected: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t)
			event, err := svc.CreateEvent(context.Background(), 1, &CreateEventRequest{
				Title:       "Event",
				Description: "d",
				Location:    "l",
				EventDate:   entity.EventTime{Time: time.Now()},
				Category:    entity.CategoryTechnical,
				Type:        tt.eventType,
				Price:       tt.price,
				Capacity:    10,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, event.Price)
		})
	}
}

func TestUpdateEventPartialMerge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(ctx, 1, &CreateEventRequest{
		Title:       "Old Title",
		Description: "Old description",
		Location:    "Room 1",
		EventDate:   entity.EventTime{Time: time.Now()},
		Category:    entity.CategoryTechnical,
		Capacity:    10,
	})
	require.NoError(t, err)

	newTitle := "New Title"
	newCapacity := 20
	updated, err := svc.UpdateEvent(ctx, event.ID, 1, &UpdateEventRequest{
		Title:    &newTitle,
		Capacity: &newCapacity,
	})
	require.NoError(t, err)

	// Незатронутые поля сохраняются
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 20, updated.Capacity)
	assert.Equal(t, "Old description", updated.Description)
	assert.Equal(t, "Room 1", updated.Location)
}

func TestUpdateEventOrganizerOnly(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(ctx, 1, &CreateEventRequest{
		Title:       "Event",
		Description: "d",
		Location:    "l",
		EventDate:   entity.EventTime{Time: time.Now()},
		Category:    entity.CategoryTechnical,
		Capacity:    10,
	})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.UpdateEvent(ctx, event.ID, 2, &UpdateEventRequest{Title: &newTitle})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	err = svc.DeleteEvent(ctx, event.ID, 2)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID, 1))
	_, err = svc.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)
}

func TestUpdateEventValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(ctx, 1, &CreateEventRequest{
		Title:       "Event",
		Description: "d",
		Location:    "l",
		EventDate:   entity.EventTime{Time: time.Now()},
		Category:    entity.CategoryTechnical,
		Capacity:    10,
	})
	require.NoError(t, err)

	badCapacity := 0
	_, err = svc.UpdateEvent(ctx, event.ID, 1, &UpdateEventRequest{Capacity: &badCapacity})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	badCategory := entity.EventCategory("cooking")
	_, err = svc.UpdateEvent(ctx, event.ID, 1, &UpdateEventRequest{Category: &badCategory})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestListEventsFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEventService(t)

	now := time.Now()
	seed := []CreateEventRequest{
		{Title: "Go Hackathon", Description: "Build fast", Location: "Lab A", EventDate: entity.EventTime{Time: now.Add(24 * time.Hour)}, Category: entity.CategoryTechnical, Capacity: 10},
		{Title: "Poetry Night", Description: "Readings", Location: "Auditorium", EventDate: entity.EventTime{Time: now.Add(-24 * time.Hour)}, Category: entity.CategoryNonTechnical, Capacity: 10},
		{Title: "Robotics Demo", Description: "hackathon winners", Location: "Lab B", EventDate: entity.EventTime{Time: now.Add(48 * time.Hour)}, Category: entity.CategoryTechnical, Type: entity.TypePaid, Price: 100, Capacity: 10},
	}
	for i := range seed {
		_, err := svc.CreateEvent(ctx, 1, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		filter   EventFilter
		expected []string
	}{
		{
			name:     "no filter returns all",
			filter:   EventFilter{},
			expected: []string{"Go Hackathon", "Poetry Night", "Robotics Demo"},
		},
		{
			name:     "substring match is case-insensitive across fields",
			filter:   EventFilter{Query: "HACKATHON"},
			expected: []string{"Go Hackathon", "Robotics Demo"},
		},
		{
			name:     "query matches location",
			filter:   EventFilter{Query: "auditorium"},
			expected: []string{"Poetry Night"},
		},
		{
			name:     "category filter",
			filter:   EventFilter{Category: "non_technical"},
			expected: []string{"Poetry Night"},
		},
		{
			name:     "type filter",
			filter:   EventFilter{Type: "paid"},
			expected: []string{"Robotics Demo"},
		},
		{
			name:     "upcoming window",
			filter:   EventFilter{When: "upcoming"},
			expected: []string{"Go Hackathon", "Robotics Demo"},
		},
		{
			name:     "past window",
			filter:   EventFilter{When: "past"},
			expected: []string{"Poetry Night"},
		},
		{
			name:     "combined filters",
			filter:   EventFilter{Query: "hackathon", When: "upcoming", Category: "technical", Type: "free"},
			expected: []string{"Go Hackathon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := svc.ListEvents(ctx, &tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(events))
			for _, e := range events {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestGetEventStats(t *testing.T) {
	ctx := context.Background()
	svc, registrationRepo := newEventService(t)

	event, err := svc.CreateEvent(ctx, 1, &CreateEventRequest{
		Title:       "Event",
		Description: "d",
		Location:    "l",
		EventDate:   entity.EventTime{Time: time.Now()},
		Category:    entity.CategoryTechnical,
		Capacity:    10,
	})
	require.NoError(t, err)

	for userID := int64(1); userID <= 4; userID++ {
		reg := &entity.Registration{UserID: userID, EventID: event.ID, HasAttended: userID <= 2}
		require.NoError(t, registrationRepo.Create(ctx, reg))
	}

	// Только организатор видит статистику
	_, err = svc.GetEventStats(ctx, event.ID, 9)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	stats, err := svc.GetEventStats(ctx, event.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalRegistrations)
	assert.Equal(t, 2, stats.Attendees)
	assert.Equal(t, 10, stats.Capacity)
	assert.InDelta(t, 40.0, stats.FillRate, 0.001)
}
