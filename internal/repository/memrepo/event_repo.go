package memrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/repository/repoargs"
)

type EventRepository struct {
	store *Store
	lk    sync.Locker
}

func (e *EventRepository) Create(_ context.Context, args repoargs.EventCreate) (*domain.Event, error) {
	e.lk.Lock()
	defer e.lk.Unlock()

	e.store.nextEventID++
	now := e.store.now()
	event := &domain.Event{
		ID:           e.store.nextEventID,
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         args.Name,
		StartsAt:     args.StartsAt,
		EndsAt:       args.EndsAt,
		Capacity:     args.Capacity,
		PointsBudget: args.PointsBudget,
		Active:       true,
		Organizers:   append([]int64(nil), args.Organizers...),
	}
	e.store.events[event.ID] = event
	return copyEvent(event), nil
}

func (e *EventRepository) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	e.lk.Lock()
	defer e.lk.Unlock()
	return e.findLocked(id)
}

func (e *EventRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return e.FindByID(ctx, id)
}

func (e *EventRepository) findLocked(id int64) (*domain.Event, error) {
	event, ok := e.store.events[id]
	if !ok {
		return nil, fmt.Errorf("[memrepo] event %d: %w", id, domain.ErrRecordNotFound)
	}
	return copyEvent(event), nil
}

func (e *EventRepository) AddAwarded(_ context.Context, id int64, amount int64) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[id]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", id, domain.ErrRecordNotFound)
	}
	event.PointsAwarded += amount
	event.UpdatedAt = e.store.now()
	return nil
}

func (e *EventRepository) AddOrganizer(_ context.Context, eventID, userID int64) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[eventID]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", eventID, domain.ErrRecordNotFound)
	}
	if event.IsOrganizer(userID) {
		return fmt.Errorf("[memrepo] organizer %d of event %d: %w", userID, eventID, domain.ErrDuplicateKey)
	}
	event.Organizers = append(event.Organizers, userID)
	event.UpdatedAt = e.store.now()
	return nil
}

func (e *EventRepository) AddGuest(_ context.Context, eventID, userID int64) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[eventID]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", eventID, domain.ErrRecordNotFound)
	}
	if event.IsGuest(userID) {
		return fmt.Errorf("[memrepo] guest %d of event %d: %w", userID, eventID, domain.ErrDuplicateKey)
	}
	event.Guests = append(event.Guests, userID)
	event.UpdatedAt = e.store.now()
	return nil
}

func (e *EventRepository) RemoveGuest(_ context.Context, eventID, userID int64) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[eventID]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", eventID, domain.ErrRecordNotFound)
	}
	for i, id := range event.Guests {
		if id == userID {
			event.Guests = append(event.Guests[:i], event.Guests[i+1:]...)
			event.UpdatedAt = e.store.now()
			return nil
		}
	}
	return fmt.Errorf("[memrepo] guest %d of event %d: %w", userID, eventID, domain.ErrRecordNotFound)
}

func (e *EventRepository) SetPublished(_ context.Context, id int64, published bool) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[id]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", id, domain.ErrRecordNotFound)
	}
	event.Published = published
	event.UpdatedAt = e.store.now()
	return nil
}

func (e *EventRepository) SetActive(_ context.Context, id int64, active bool) error {
	e.lk.Lock()
	defer e.lk.Unlock()

	event, ok := e.store.events[id]
	if !ok {
		return fmt.Errorf("[memrepo] event %d: %w", id, domain.ErrRecordNotFound)
	}
	event.Active = active
	event.UpdatedAt = e.store.now()
	return nil
}

func copyEvent(event *domain.Event) *domain.Event {
	cp := *event
	cp.Organizers = append([]int64(nil), event.Organizers...)
	cp.Guests = append([]int64(nil), event.Guests...)
	return &cp
}
