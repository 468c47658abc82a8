package survival

import "time"

type ItemType string

const (
	ItemWood    ItemType = "wood"
	ItemStone   ItemType = "stone"
	ItemBerry   ItemType = "berry"
	ItemIron    ItemType = "iron"
	ItemAxe     ItemType = "axe"
	ItemPickaxe ItemType = "pickaxe"
)

type ToolType string

const (
	ToolAxe     ToolType = "axe"
	ToolPickaxe ToolType = "pickaxe"
)

type ItemAmount struct {
	Item  ItemType `json:"item"`
	Count int      `json:"count"`
}

type ActionType string

const (
	ActionMove         ActionType = "move"
	ActionGather       ActionType = "gather"
	ActionCraft        ActionType = "craft"
	ActionEat          ActionType = "eat"
	ActionMoveItem     ActionType = "move_item"
	ActionDrop         ActionType = "drop"
	ActionSelectHotbar ActionType = "select_hotbar"
	ActionAttack       ActionType = "attack"
)

type ActionIntent struct {
	Type     ActionType `json:"type"`
	X        int        `json:"x,omitempty"`
	Y        int        `json:"y,omitempty"`
	Item     ItemType   `json:"item,omitempty"`
	Index    int        `json:"index,omitempty"`
	Target   int        `json:"target,omitempty"`
	Amount   int        `json:"amount,omitempty"`
	AnimalID string     `json:"animal_id,omitempty"`
}

type ResultCode string

const (
	ResultOK       ResultCode = "OK"
	ResultRejected ResultCode = "REJECTED"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
