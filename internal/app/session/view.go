package session

import (
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type View struct {
	WorldName      string            `json:"world_name"`
	Seed           uint64            `json:"seed"`
	Size           world.Size        `json:"size"`
	Player         world.Point       `json:"player"`
	Stats          survival.Stats    `json:"stats"`
	Slots          []survival.Slot   `json:"slots"`
	SelectedHotbar int               `json:"selected_hotbar"`
	Revision       int64             `json:"inventory_revision"`
	Tiles          []world.TileView  `json:"tiles"`
	Animals        []survival.Animal `json:"animals"`
}

// Observe returns the tiles and animals within radius of the player along
// with the player's inventory and vitals.
func (s *Session) Observe(radius int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return View{}, ErrNoWorld
	}
	v := View{
		WorldName:      s.worldName,
		Seed:           s.seed,
		Size:           world.Size{Width: s.grid.Width(), Height: s.grid.Height()},
		Player:         s.player,
		Stats:          s.stats,
		Slots:          s.inv.Slots(),
		SelectedHotbar: s.hotbar,
		Revision:       s.revision,
		Tiles:          s.grid.Window(s.player, radius),
		Animals:        []survival.Animal{},
	}
	for _, a := range s.animalList() {
		if a.Position.Chebyshev(s.player) <= radius {
			v.Animals = append(v.Animals, a)
		}
	}
	return v, nil
}

// Inventory returns the current slots and their revision.
func (s *Session) Inventory() ([]survival.Slot, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Slots(), s.revision
}

func (s *Session) Player() (world.Point, survival.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player, s.stats
}

func (s *Session) ReachTiles() int {
	return s.cfg.ReachTiles
}

// Totals aggregates the inventory per item type.
func (s *Session) Totals() ([]survival.ItemAmount, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return nil, 0, ErrNoWorld
	}
	return s.inv.Totals(), s.revision, nil
}
