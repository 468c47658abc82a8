package observe

import (
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type Request struct {
	Radius int `json:"radius"`
}

type Response struct {
	WorldName      string                          `json:"world_name"`
	Seed           uint64                          `json:"seed"`
	Size           world.Size                      `json:"size"`
	View           View                            `json:"view"`
	Player         world.Point                     `json:"player"`
	Stats          survival.Stats                  `json:"stats"`
	Inventory      []survival.Slot                 `json:"inventory"`
	SelectedHotbar int                             `json:"selected_hotbar"`
	Revision       int64                           `json:"inventory_revision"`
	Tiles          []world.TileView                `json:"tiles"`
	Objects        []ObservedObject                `json:"objects"`
	Animals        []ObservedAnimal                `json:"animals"`
	Rules          Rules                           `json:"rules"`
	Recipes        []survival.ProductionRecipeRule `json:"recipes"`
}

type View struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Center world.Point `json:"center"`
	Radius int         `json:"radius"`
}

// ObservedObject is one placed object with at least one tile in the window.
type ObservedObject struct {
	ID          world.ObjectID           `json:"id"`
	Kind        world.ObjectKind         `json:"kind"`
	Origin      world.Point              `json:"origin"`
	Drop        survival.GatherableDrop  `json:"drop"`
	Requirement survival.ToolRequirement `json:"requirement"`
	InReach     bool                     `json:"in_reach"`
}

type ObservedAnimal struct {
	ID        string              `json:"id"`
	Kind      survival.AnimalKind `json:"kind"`
	Pos       world.Point         `json:"pos"`
	Health    int                 `json:"health"`
	MaxHealth int                 `json:"max_health"`
	Hostile   bool                `json:"hostile"`
}

type Rules struct {
	MaxHealth           int `json:"max_health"`
	MaxHunger           int `json:"max_hunger"`
	HungerDecaySeconds  int `json:"hunger_decay_seconds"`
	HungerDecayAmount   int `json:"hunger_decay_amount"`
	HealthTickSeconds   int `json:"health_tick_seconds"`
	StarvationDamage    int `json:"starvation_damage"`
	HealthRegenPerTick  int `json:"health_regen_per_tick"`
	ReachTiles          int `json:"reach_tiles"`
	HotbarSize          int `json:"hotbar_size"`
	InventoryCapacity   int `json:"inventory_capacity"`
	DefaultAttackDamage int `json:"default_attack_damage"`
}
