package ports

import (
	"context"

	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"
)

// SaveRepository stores one save per world name. Load and Delete return
// ErrNotFound for unknown names.
type SaveRepository interface {
	Save(ctx context.Context, data savegame.Data) error
	Load(ctx context.Context, worldName string) (savegame.Data, error)
	List(ctx context.Context) ([]savegame.Summary, error)
	Delete(ctx context.Context, worldName string) error
}

// EventRepository journals settled action events in append order.
type EventRepository interface {
	Append(ctx context.Context, events []survival.DomainEvent) error
	ListRecent(ctx context.Context, limit int) ([]survival.DomainEvent, error)
}
