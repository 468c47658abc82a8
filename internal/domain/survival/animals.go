package survival

import (
	"strings"

	"survivalcraft/internal/domain/world"
)

type AnimalKind string

const (
	AnimalCow      AnimalKind = "cow"
	AnimalSkeleton AnimalKind = "skeleton"
)

type LootEntry struct {
	Item   ItemType `json:"item"`
	Chance float64  `json:"chance"`
}

type AnimalDefinition struct {
	Kind      AnimalKind  `json:"kind"`
	MaxHealth int         `json:"max_health"`
	Hostile   bool        `json:"hostile"`
	Damage    int         `json:"damage"`
	Loot      []LootEntry `json:"loot"`
}

var animalOrder = []AnimalKind{AnimalCow, AnimalSkeleton}

var animalDefs = map[AnimalKind]AnimalDefinition{
	AnimalCow: {
		Kind:      AnimalCow,
		MaxHealth: 30,
		Loot: []LootEntry{
			{Item: ItemWood, Chance: 0.5},
			{Item: ItemStone, Chance: 0.2},
		},
	},
	AnimalSkeleton: {
		Kind:      AnimalSkeleton,
		MaxHealth: 50,
		Hostile:   true,
		Damage:    5,
		Loot: []LootEntry{
			{Item: ItemBerry, Chance: 0.75},
		},
	},
}

func LookupAnimal(kind AnimalKind) (AnimalDefinition, bool) {
	def, ok := animalDefs[kind]
	return def, ok
}

func ParseAnimalKind(raw string) (AnimalKind, bool) {
	kind := AnimalKind(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := animalDefs[kind]
	return kind, ok
}

func AnimalKinds() []AnimalKind {
	out := make([]AnimalKind, len(animalOrder))
	copy(out, animalOrder)
	return out
}

// RollLoot rolls every entry independently; roll returns values in [0,1).
func (d AnimalDefinition) RollLoot(roll func() float64) []ItemAmount {
	out := []ItemAmount{}
	for _, entry := range d.Loot {
		if roll() < entry.Chance {
			out = append(out, ItemAmount{Item: entry.Item, Count: 1})
		}
	}
	return out
}

// Animal is a live creature on the map.
type Animal struct {
	ID       string      `json:"id"`
	Kind     AnimalKind  `json:"kind"`
	Position world.Point `json:"position"`
	Health   int         `json:"health"`
}

func NewAnimal(id string, kind AnimalKind, pos world.Point) (Animal, bool) {
	def, ok := animalDefs[kind]
	if !ok {
		return Animal{}, false
	}
	return Animal{ID: id, Kind: kind, Position: pos, Health: def.MaxHealth}, true
}

func (a Animal) Definition() AnimalDefinition {
	return animalDefs[a.Kind]
}

// TakeDamage lowers health and reports whether the hit killed the animal.
func (a *Animal) TakeDamage(amount int) bool {
	if amount <= 0 || a.Health <= 0 {
		return false
	}
	a.Health = max(a.Health-amount, 0)
	return a.Health == 0
}
