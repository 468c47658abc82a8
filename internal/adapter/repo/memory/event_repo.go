package memory

import (
	"context"
	"maps"

	"survivalcraft/internal/domain/survival"
)

const DefaultEventCapacity = 1024

// EventRepo keeps the most recent events. Older entries are evicted once the
// journal holds Capacity events.
type EventRepo struct {
	store    *Store
	capacity int
}

func NewEventRepo(store *Store, capacity int) EventRepo {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return EventRepo{store: store, capacity: capacity}
}

func (r EventRepo) Append(ctx context.Context, events []survival.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for _, e := range events {
		e.Payload = maps.Clone(e.Payload)
		r.store.events = append(r.store.events, e)
	}
	if over := len(r.store.events) - r.capacity; over > 0 {
		r.store.events = append(r.store.events[:0:0], r.store.events[over:]...)
	}
	return nil
}

// ListRecent returns up to limit of the newest events, oldest first. A
// non-positive limit returns the whole journal.
func (r EventRepo) ListRecent(ctx context.Context, limit int) ([]survival.DomainEvent, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	events := r.store.events
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return append([]survival.DomainEvent{}, events...), nil
}
