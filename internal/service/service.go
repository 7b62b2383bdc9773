package service

import (
	"context"

	"github.com/eventsphere/server/internal/entity"
)

type UserService interface {
	// Основные операции
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*entity.User, error)
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*entity.User, error)

	// Статистика для дашборда
	GetUserStats(ctx context.Context, userID int64) (*entity.UserStats, error)
}

type EventService interface {
	// Основные операции
	CreateEvent(ctx context.Context, organizerID int64, req *CreateEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	ListEvents(ctx context.Context, filter *EventFilter) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, id, actorID int64, req *UpdateEventRequest) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id, actorID int64) error

	// Выборки
	GetEventsByCategory(ctx context.Context, category entity.EventCategory) ([]*entity.Event, error)
	GetEventsByOrganizer(ctx context.Context, organizerID int64) ([]*entity.Event, error)

	// Статистика для организатора
	GetEventStats(ctx context.Context, eventID, actorID int64) (*entity.EventStats, error)
}

// RegistrationService определяет интерфейс для операций с регистрациями
type RegistrationService interface {
	Register(ctx context.Context, userID, eventID int64, hasPaid bool) (*entity.Registration, error)
	GetUserRegistrations(ctx context.Context, userID int64) ([]*entity.Registration, error)
	GetEventRegistrations(ctx context.Context, eventID int64, actor *entity.User) ([]*entity.Registration, error)
	CancelRegistration(ctx context.Context, id, userID int64) error
	MarkAttended(ctx context.Context, id int64, actor *entity.User) (*entity.Registration, error)
}

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]*entity.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int64) (*entity.Notification, error)
}
