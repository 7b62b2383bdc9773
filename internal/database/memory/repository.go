package memory

import (
	"context"

	"github.com/eventsphere/server/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	GetAll(ctx context.Context) ([]*entity.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetAll(ctx context.Context) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id int64) error

	// Выборки линейным сканированием
	GetByCategory(ctx context.Context, category entity.EventCategory) ([]*entity.Event, error)
	GetByOrganizer(ctx context.Context, organizerID int64) ([]*entity.Event, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	GetByID(ctx context.Context, id int64) (*entity.Registration, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*entity.Registration, error)
	GetByUser(ctx context.Context, userID int64) ([]*entity.Registration, error)
	GetByEvent(ctx context.Context, eventID int64) ([]*entity.Registration, error)
	CountByEvent(ctx context.Context, eventID int64) (int, error)
	Update(ctx context.Context, registration *entity.Registration) error
	Delete(ctx context.Context, id int64) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	GetByUser(ctx context.Context, userID int64) ([]*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) error
	Delete(ctx context.Context, id int64) error
}
