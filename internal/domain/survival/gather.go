package survival

import "survivalcraft/internal/domain/world"

type GatherableDrop struct {
	Item      ItemType `json:"item"`
	BaseYield int      `json:"base_yield"`
}

// ToolRequirement is the tool policy for harvesting an object kind. An empty
// Required means any hand may gather.
type ToolRequirement struct {
	Required ToolType `json:"required,omitempty"`
	Optional bool     `json:"optional"`
	Rank     int      `json:"rank"`
}

var gatherDrops = map[world.ObjectKind]GatherableDrop{
	world.ObjectTree:      {Item: ItemWood, BaseYield: 1},
	world.ObjectTree2:     {Item: ItemWood, BaseYield: 1},
	world.ObjectRock:      {Item: ItemStone, BaseYield: 1},
	world.ObjectRockLarge: {Item: ItemStone, BaseYield: 2},
	world.ObjectBerry:     {Item: ItemBerry, BaseYield: 1},
}

var gatherRequirements = map[world.ObjectKind]ToolRequirement{
	world.ObjectTree:      {Required: ToolAxe, Optional: true, Rank: 1},
	world.ObjectTree2:     {Required: ToolAxe, Optional: true, Rank: 1},
	world.ObjectRock:      {Required: ToolPickaxe, Optional: true, Rank: 1},
	world.ObjectRockLarge: {Required: ToolPickaxe, Optional: false, Rank: 1},
	world.ObjectBerry:     {Required: ToolAxe, Optional: false, Rank: 1},
}

func DropFor(kind world.ObjectKind) (GatherableDrop, bool) {
	d, ok := gatherDrops[kind]
	return d, ok
}

func RequirementFor(kind world.ObjectKind) (ToolRequirement, bool) {
	r, ok := gatherRequirements[kind]
	return r, ok
}

// CanGather applies the object's tool policy to the equipped tool ("" when
// nothing is equipped). A missing or mismatched tool falls back to the
// requirement's Optional flag; a matching tool must meet the rank.
func CanGather(kind world.ObjectKind, tool ItemType) bool {
	req, ok := gatherRequirements[kind]
	if !ok || req.Required == "" {
		return true
	}
	toolItem, ok := itemDefs[tool]
	if !ok {
		return req.Optional
	}
	toolType, ok := toolItem.ToolType()
	if !ok || toolType != req.Required {
		return req.Optional
	}
	return toolItem.ToolRank() >= req.Rank
}

// GatherYield resolves the drop of kind and its quantity for the equipped
// tool. It does not apply CanGather.
func GatherYield(kind world.ObjectKind, tool ItemType) (ItemAmount, bool) {
	drop, ok := gatherDrops[kind]
	if !ok {
		return ItemAmount{}, false
	}
	item, ok := itemDefs[drop.Item]
	if !ok {
		return ItemAmount{}, false
	}
	return ItemAmount{Item: drop.Item, Count: item.CalculateYield(tool, drop.BaseYield)}, true
}
