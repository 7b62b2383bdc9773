package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eventsphere/server/internal/entity"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[int64]entity.Notification
	nextID        int64
}

// NewNotificationRepository создает хранилище уведомлений в памяти
func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{
		notifications: make(map[int64]entity.Notification),
		nextID:        1,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notification.ID = r.nextID
	r.nextID++
	notification.IsRead = false
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	r.notifications[notification.ID] = *notification
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notification, ok := r.notifications[id]
	if !ok {
		return nil, entity.ErrNotificationNotFound
	}
	return &notification, nil
}

func (r *notificationRepository) GetByUser(ctx context.Context, userID int64) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]*entity.Notification, 0)
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			n := notification
			notifications = append(notifications, &n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })
	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notifications[notification.ID]; !ok {
		return entity.ErrNotificationNotFound
	}
	r.notifications[notification.ID] = *notification
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notifications[id]; !ok {
		return entity.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}
