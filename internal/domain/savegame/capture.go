package savegame

import (
	"fmt"
	"time"

	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

// State is the live world as seen by the save system.
type State struct {
	WorldName      string
	Seed           uint64
	Grid           *world.Grid
	Player         world.Point
	Stats          survival.Stats
	Slots          []survival.Slot
	SelectedHotbar int
	Animals        []survival.Animal
}

func Capture(s State, now time.Time) Data {
	d := Data{
		Version:        CurrentVersion,
		WorldName:      s.WorldName,
		Timestamp:      now.UTC(),
		Seed:           s.Seed,
		PlayerX:        s.Player.X,
		PlayerY:        s.Player.Y,
		Health:         s.Stats.Health,
		Hunger:         s.Stats.Hunger,
		SelectedHotbar: s.SelectedHotbar,
		Inventory:      make([]SlotRecord, 0, len(s.Slots)),
		Floors:         []FloorRecord{},
		Objects:        []ObjectRecord{},
		Animals:        make([]AnimalRecord, 0, len(s.Animals)),
	}
	if g := s.Grid; g != nil {
		d.Width, d.Height = g.Width(), g.Height()
		d.Floors = make([]FloorRecord, 0, g.Width()*g.Height())
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				floor, _ := g.Floor(x, y)
				d.Floors = append(d.Floors, FloorRecord{X: x, Y: y, Kind: string(floor)})
			}
		}
		for _, obj := range g.Objects() {
			d.Objects = append(d.Objects, ObjectRecord{X: obj.Origin.X, Y: obj.Origin.Y, Kind: string(obj.Kind)})
		}
	}
	for _, slot := range s.Slots {
		d.Inventory = append(d.Inventory, SlotRecord{
			Item:       string(slot.Item),
			Count:      slot.Count,
			Durability: slot.Durability,
		})
	}
	for _, a := range s.Animals {
		d.Animals = append(d.Animals, AnimalRecord{
			ID:     a.ID,
			Kind:   string(a.Kind),
			X:      a.Position.X,
			Y:      a.Position.Y,
			Health: a.Health,
		})
	}
	return d
}

// Restored is a world rebuilt from save data. Skipped counts records whose
// kind ids are no longer known.
type Restored struct {
	WorldName      string
	Seed           uint64
	Grid           *world.Grid
	Player         world.Point
	Health         int
	Hunger         int
	Slots          []survival.Slot
	SelectedHotbar int
	Animals        []survival.Animal
	Skipped        int
}

// Restore rebuilds a world. Versions below MinSupportedVersion and sides
// above world.MaxSide are rejected.
// Animal records without an id get one from newID.
func Restore(d Data, newID func() string) (Restored, error) {
	if d.Version < MinSupportedVersion {
		return Restored{}, fmt.Errorf("%w: v%d", ErrUnsupportedVersion, d.Version)
	}

	width, height := d.Width, d.Height
	if width <= 0 || height <= 0 {
		for _, f := range d.Floors {
			width = max(width, f.X+1)
			height = max(height, f.Y+1)
		}
	}
	if width > world.MaxSide || height > world.MaxSide {
		return Restored{}, fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, width, height, world.MaxSide)
	}

	r := Restored{
		WorldName:      d.WorldName,
		Seed:           d.Seed,
		Grid:           world.NewGrid(width, height),
		Player:         world.Point{X: d.PlayerX, Y: d.PlayerY},
		Health:         d.Health,
		Hunger:         d.Hunger,
		SelectedHotbar: d.SelectedHotbar,
		Slots:          make([]survival.Slot, 0, len(d.Inventory)),
		Animals:        make([]survival.Animal, 0, len(d.Animals)),
	}

	for _, f := range d.Floors {
		kind, ok := world.ParseFloorKind(f.Kind)
		if !ok {
			r.Skipped++
			continue
		}
		r.Grid.SetFloor(f.X, f.Y, kind)
	}
	for _, o := range d.Objects {
		kind, ok := world.ParseObjectKind(o.Kind)
		if !ok {
			r.Skipped++
			continue
		}
		def, _ := world.LookupObject(kind)
		if _, ok := r.Grid.PlaceObject(def, o.X, o.Y); !ok {
			r.Skipped++
		}
	}
	for _, s := range d.Inventory {
		if s.Item == "" {
			r.Slots = append(r.Slots, survival.EmptySlot)
			continue
		}
		item, ok := survival.ParseItemType(s.Item)
		if !ok {
			r.Skipped++
			r.Slots = append(r.Slots, survival.EmptySlot)
			continue
		}
		r.Slots = append(r.Slots, survival.NewSlot(item, s.Count, s.Durability))
	}
	for _, a := range d.Animals {
		kind, ok := survival.ParseAnimalKind(a.Kind)
		if !ok {
			r.Skipped++
			continue
		}
		id := a.ID
		if id == "" && newID != nil {
			id = newID()
		}
		animal, _ := survival.NewAnimal(id, kind, world.Point{X: a.X, Y: a.Y})
		if a.Health > 0 {
			animal.Health = min(a.Health, animal.Definition().MaxHealth)
		}
		r.Animals = append(r.Animals, animal)
	}
	return r, nil
}
