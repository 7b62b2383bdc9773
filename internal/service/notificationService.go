package service

import (
	"context"
	"fmt"

	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/entity"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService создает новый экземпляр NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID int64) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead помечает уведомление прочитанным. Чужое уведомление
// для пользователя неотличимо от несуществующего.
func (s *notificationService) MarkAsRead(ctx context.Context, id, userID int64) (*entity.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, entity.ErrNotificationNotFound
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}
	return notification, nil
}
