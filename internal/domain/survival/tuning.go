package survival

import "time"

const (
	DefaultInventoryCapacity = 35
	HotbarSize               = 5

	DefaultReachTiles   = 1
	DefaultSearchRadius = 2

	MaxHunger = 100
	MaxHealth = 100

	HungerDecayInterval = 3 * time.Second
	HungerDecayAmount   = 1
	HealthTickInterval  = 5 * time.Second
	StarvationDamage    = 2
	HealthRegenPerTick  = 1

	DefaultAttackDamage = 10
	DefaultAnimalCount  = 15
	DefaultTickInterval = time.Second
)
