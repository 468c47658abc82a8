package memory

import (
	"sync"

	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"
)

type Store struct {
	mu     sync.RWMutex
	saves  map[string]savegame.Data
	events []survival.DomainEvent
}

func NewStore() *Store {
	return &Store{
		saves: make(map[string]savegame.Data),
	}
}

func (s *Store) SeedSave(data savegame.Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[data.WorldName] = cloneData(data)
}

// cloneData copies the record slices so callers cannot mutate stored saves.
func cloneData(d savegame.Data) savegame.Data {
	d.Inventory = append([]savegame.SlotRecord(nil), d.Inventory...)
	d.Floors = append([]savegame.FloorRecord(nil), d.Floors...)
	d.Objects = append([]savegame.ObjectRecord(nil), d.Objects...)
	d.Animals = append([]savegame.AnimalRecord(nil), d.Animals...)
	return d
}
