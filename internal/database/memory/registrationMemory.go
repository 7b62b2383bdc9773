package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eventsphere/server/internal/entity"
)

type registrationRepository struct {
	mu            sync.RWMutex
	registrations map[int64]entity.Registration
	nextID        int64
}

// NewRegistrationRepository создает хранилище регистраций в памяти
func NewRegistrationRepository() RegistrationRepository {
	return &registrationRepository{
		registrations: make(map[int64]entity.Registration),
		nextID:        1,
	}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	registration.ID = r.nextID
	r.nextID++
	if registration.RegistrationDate.IsZero() {
		registration.RegistrationDate = time.Now()
	}
	r.registrations[registration.ID] = *registration
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int64) (*entity.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registration, ok := r.registrations[id]
	if !ok {
		return nil, entity.ErrRegistrationNotFound
	}
	return &registration, nil
}

func (r *registrationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*entity.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, registration := range r.registrations {
		if registration.UserID == userID && registration.EventID == eventID {
			reg := registration
			return &reg, nil
		}
	}
	return nil, entity.ErrRegistrationNotFound
}

func (r *registrationRepository) GetByUser(ctx context.Context, userID int64) ([]*entity.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registrations := make([]*entity.Registration, 0)
	for _, registration := range r.registrations {
		if registration.UserID == userID {
			reg := registration
			registrations = append(registrations, &reg)
		}
	}
	sort.Slice(registrations, func(i, j int) bool { return registrations[i].ID < registrations[j].ID })
	return registrations, nil
}

func (r *registrationRepository) GetByEvent(ctx context.Context, eventID int64) ([]*entity.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	registrations := make([]*entity.Registration, 0)
	for _, registration := range r.registrations {
		if registration.EventID == eventID {
			reg := registration
			registrations = append(registrations, &reg)
		}
	}
	sort.Slice(registrations, func(i, j int) bool { return registrations[i].ID < registrations[j].ID })
	return registrations, nil
}

func (r *registrationRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, registration := range r.registrations {
		if registration.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *registrationRepository) Update(ctx context.Context, registration *entity.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registrations[registration.ID]; !ok {
		return entity.ErrRegistrationNotFound
	}
	r.registrations[registration.ID] = *registration
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registrations[id]; !ok {
		return entity.ErrRegistrationNotFound
	}
	delete(r.registrations, id)
	return nil
}
