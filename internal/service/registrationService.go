package service

import (
	"context"
	"fmt"
	"sync"

	repository "github.com/eventsphere/server/internal/database/memory"
	"github.com/eventsphere/server/internal/entity"
	"github.com/sirupsen/logrus"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	eventRepo        repository.EventRepository
	notificationRepo repository.NotificationRepository

	// Мьютексы по мероприятиям: проверка вместимости и запись
	// выполняются атомарно относительно других регистраций
	eventLocks sync.Map
}

// NewRegistrationService создает новый экземпляр RegistrationService
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	notificationRepo repository.NotificationRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *registrationService) lockEvent(eventID int64) *sync.Mutex {
	lock, _ := s.eventLocks.LoadOrStore(eventID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Register регистрирует пользователя на мероприятие.
// Порядок проверок фиксирован: существование мероприятия, повторная
// регистрация, вместимость, оплата. Повторная регистрация не должна
// отдавать ошибку вместимости.
func (s *registrationService) Register(ctx context.Context, userID, eventID int64, hasPaid bool) (*entity.Registration, error) {
	lock := s.lockEvent(eventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := s.registrationRepo.GetByUserAndEvent(ctx, userID, eventID); err == nil {
		return nil, entity.ErrAlreadyRegistered
	}

	count, err := s.registrationRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	if count >= event.Capacity {
		return nil, entity.ErrCapacityReached
	}

	if event.Type == entity.TypePaid && !hasPaid {
		return nil, entity.ErrPaymentRequired
	}

	registration := &entity.Registration{
		UserID:      userID,
		EventID:     eventID,
		HasPaid:     event.Type == entity.TypeFree || hasPaid,
		HasAttended: false,
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	notification := &entity.Notification{
		UserID:  userID,
		Message: fmt.Sprintf("You have successfully registered for %s", event.Title),
		EventID: eventID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		// Регистрация уже записана, уведомление не критично
		logrus.Errorf("failed to create registration notification: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"registration_id": registration.ID,
		"event_id":        eventID,
		"user_id":         userID,
	}).Info("Registration created")

	return registration, nil
}

func (s *registrationService) GetUserRegistrations(ctx context.Context, userID int64) ([]*entity.Registration, error) {
	registrations, err := s.registrationRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user registrations: %w", err)
	}
	return registrations, nil
}

// GetEventRegistrations возвращает регистрации мероприятия.
// Доступно организатору мероприятия или любому менеджеру.
func (s *registrationService) GetEventRegistrations(ctx context.Context, eventID int64, actor *entity.User) ([]*entity.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actor.ID && actor.Role != entity.RoleEventManager {
		return nil, entity.ErrForbidden
	}

	registrations, err := s.registrationRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event registrations: %w", err)
	}
	return registrations, nil
}

// CancelRegistration снимает собственную регистрацию пользователя.
// Чужие регистрации для владельца неотличимы от несуществующих.
func (s *registrationService) CancelRegistration(ctx context.Context, id, userID int64) error {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if registration.UserID != userID {
		return entity.ErrRegistrationNotFound
	}

	lock := s.lockEvent(registration.EventID)
	lock.Lock()
	defer lock.Unlock()

	return s.registrationRepo.Delete(ctx, id)
}

// MarkAttended помечает посещение. Доступно организатору мероприятия
// или любому менеджеру.
func (s *registrationService) MarkAttended(ctx context.Context, id int64, actor *entity.User) (*entity.Registration, error) {
	registration, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, registration.EventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actor.ID && actor.Role != entity.RoleEventManager {
		return nil, entity.ErrForbidden
	}

	registration.HasAttended = true
	if err := s.registrationRepo.Update(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to update registration: %w", err)
	}
	return registration, nil
}
