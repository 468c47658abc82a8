package savegame

import (
	"errors"
	"time"
)

const (
	CurrentVersion      = 3
	MinSupportedVersion = 2
)

var (
	ErrUnsupportedVersion = errors.New("unsupported save version")
	ErrInvalidDimensions  = errors.New("invalid save dimensions")
)

// Kinds are stored by their string ids so records survive catalogue
// reordering.
type FloorRecord struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

// ObjectRecord is stored once per object, at its origin.
type ObjectRecord struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

type SlotRecord struct {
	Item       string `json:"item,omitempty"`
	Count      int    `json:"count"`
	Durability int    `json:"durability,omitempty"`
}

type AnimalRecord struct {
	ID     string `json:"id,omitempty"`
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Health int    `json:"health,omitempty"`
}

type Data struct {
	Version        int            `json:"version"`
	WorldName      string         `json:"world_name"`
	Timestamp      time.Time      `json:"timestamp"`
	Seed           uint64         `json:"seed,omitempty"`
	Width          int            `json:"width,omitempty"`
	Height         int            `json:"height,omitempty"`
	PlayerX        int            `json:"player_x"`
	PlayerY        int            `json:"player_y"`
	Health         int            `json:"health"`
	Hunger         int            `json:"hunger"`
	SelectedHotbar int            `json:"selected_hotbar_index"`
	Inventory      []SlotRecord   `json:"inventory_slots"`
	Floors         []FloorRecord  `json:"map_tiles"`
	Objects        []ObjectRecord `json:"objects"`
	Animals        []AnimalRecord `json:"animals"`
}

// Summary is the listing view of a save.
type Summary struct {
	WorldName string    `json:"world_name"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func (d Data) Summary() Summary {
	return Summary{WorldName: d.WorldName, Version: d.Version, Timestamp: d.Timestamp}
}
