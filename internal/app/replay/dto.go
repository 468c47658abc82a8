package replay

import (
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type Request struct {
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
	Type         string
}

// LatestState is the player state carried by the newest replayed event.
type LatestState struct {
	Position world.Point `json:"position"`
	Health   int         `json:"health"`
	Hunger   int         `json:"hunger"`
	Dead     bool        `json:"dead"`
	Revision int64       `json:"inventory_revision"`
}

type Response struct {
	Events      []survival.DomainEvent `json:"events"`
	LatestState LatestState            `json:"latest_state"`
}
