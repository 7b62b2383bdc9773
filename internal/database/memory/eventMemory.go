package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/eventsphere/server/internal/entity"
)

type eventRepository struct {
	mu     sync.RWMutex
	events map[int64]entity.Event
	nextID int64
}

// NewEventRepository создает хранилище мероприятий в памяти
func NewEventRepository() EventRepository {
	return &eventRepository{
		events: make(map[int64]entity.Event),
		nextID: 1,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = r.nextID
	r.nextID++
	if event.Type == "" {
		event.Type = entity.TypeFree
	}
	// Бесплатные мероприятия всегда с нулевой ценой
	if event.Type == entity.TypeFree {
		event.Price = 0
	}
	r.events[event.ID] = *event
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*entity.Event, 0, len(r.events))
	for _, event := range r.events {
		e := event
		events = append(events, &e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return entity.ErrEventNotFound
	}
	if event.Type == entity.TypeFree {
		event.Price = 0
	}
	r.events[event.ID] = *event
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return entity.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *eventRepository) GetByCategory(ctx context.Context, category entity.EventCategory) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*entity.Event, 0)
	for _, event := range r.events {
		if event.Category == category {
			e := event
			events = append(events, &e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *eventRepository) GetByOrganizer(ctx context.Context, organizerID int64) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*entity.Event, 0)
	for _, event := range r.events {
		if event.OrganizerID == organizerID {
			e := event
			events = append(events, &e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}
