package memory

import (
	"context"
	"testing"
	"time"

	"github.com/eventsphere/server/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &entity.User{
		Username:     "alice",
		PasswordHash: "hash",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		Role:         entity.RoleEventManager,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	// Поиск по имени возвращает ту же запись
	found, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@example.com", found.Email)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestUserRepositoryDefaultRole(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &entity.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, found.Role)
}

func TestEventRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	event := &entity.Event{
		Title:       "Intro to Rust",
		Description: "Systems programming workshop",
		Location:    "Room 101",
		EventDate:   entity.EventTime{Time: time.Now().Add(48 * time.Hour)},
		Category:    entity.CategoryTechnical,
		Type:        entity.TypeFree,
		Capacity:    30,
		OrganizerID: 1,
	}
	require.NoError(t, repo.Create(ctx, event))

	found, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Title, found.Title)
	assert.Equal(t, event.Location, found.Location)
	assert.Equal(t, event.Capacity, found.Capacity)
	assert.Equal(t, event.OrganizerID, found.OrganizerID)
}

func TestEventRepositoryFreePriceCoercion(t *testing.T) {
	tests := []struct {
		name      string
		eventType entity.EventType
		price     int
		expected  int
	}{
		{name: "free event drops price", eventType: entity.TypeFree, price: 500, expected: 0},
		{name: "paid event keeps price", eventType: entity.TypePaid, price: 500, expected: 500},
		{name: "empty type defaults to free", eventType: "", price: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewEventRepository()

			event := &entity.Event{
				Title:    "Event",
				Type:     tt.eventType,
				Price:    tt.price,
				Capacity: 10,
			}
			require.NoError(t, repo.Create(ctx, event))

			found, err := repo.GetByID(ctx, event.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, found.Price)
		})
	}
}

func TestEventRepositoryDeleteDoesNotReuseIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	first := &entity.Event{Title: "first", Capacity: 1}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	// Идентификаторы монотонны и не переиспользуются после удаления
	second := &entity.Event{Title: "second", Capacity: 1}
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	err := repo.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, entity.ErrEventNotFound)
}

func TestEventRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	events := []*entity.Event{
		{Title: "Hackathon", Category: entity.CategoryTechnical, OrganizerID: 1, Capacity: 10},
		{Title: "Poetry Night", Category: entity.CategoryNonTechnical, OrganizerID: 2, Capacity: 10},
		{Title: "Go Meetup", Category: entity.CategoryTechnical, OrganizerID: 1, Capacity: 10},
	}
	for _, e := range events {
		require.NoError(t, repo.Create(ctx, e))
	}

	technical, err := repo.GetByCategory(ctx, entity.CategoryTechnical)
	require.NoError(t, err)
	assert.Len(t, technical, 2)

	byOrganizer, err := repo.GetByOrganizer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byOrganizer, 2)

	byOrganizer, err = repo.GetByOrganizer(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, byOrganizer)
}

func TestRegistrationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository()

	reg := &entity.Registration{UserID: 1, EventID: 2, HasPaid: true}
	require.NoError(t, repo.Create(ctx, reg))
	assert.False(t, reg.RegistrationDate.IsZero())

	found, err := repo.GetByUserAndEvent(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, found.ID)

	_, err = repo.GetByUserAndEvent(ctx, 1, 3)
	assert.ErrorIs(t, err, entity.ErrRegistrationNotFound)

	count, err := repo.CountByEvent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, reg.ID))
	count, err = repo.CountByEvent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository()

	notification := &entity.Notification{
		UserID:  1,
		Message: "You have successfully registered for Hackathon",
		EventID: 2,
		IsRead:  true, // хранилище должно сбросить в false
	}
	require.NoError(t, repo.Create(ctx, notification))
	assert.False(t, notification.IsRead)
	assert.False(t, notification.CreatedAt.IsZero())

	byUser, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	byUser[0].IsRead = true
	require.NoError(t, repo.Update(ctx, byUser[0]))

	found, err := repo.GetByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, found.IsRead)
}

func TestSeedSampleData(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, SeedSampleData(ctx, repo))

	manager, err := repo.GetByUsername(ctx, "manager")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEventManager, manager.Role)
	assert.NotEqual(t, "password", manager.PasswordHash)

	student, err := repo.GetByUsername(ctx, "student")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, student.Role)
}
