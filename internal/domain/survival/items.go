package survival

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// CraftingRecipe turns ingredients into Amount units of Result. Ingredients
// are checked against aggregate inventory counts at craft time.
type CraftingRecipe struct {
	Result      ItemType         `json:"result"`
	Amount      int              `json:"amount"`
	Ingredients map[ItemType]int `json:"ingredients"`
}

// SortedIngredients returns ingredients in catalogue order so deduction is
// deterministic.
func (r CraftingRecipe) SortedIngredients() []ItemAmount {
	out := make([]ItemAmount, 0, len(r.Ingredients))
	for _, item := range itemOrder {
		if n, ok := r.Ingredients[item]; ok {
			out = append(out, ItemAmount{Item: item, Count: n})
		}
	}
	return out
}

// GameItem is the static record of an item type. DefaultDurability > 0 marks
// a non-stackable tool; RestoreHunger > 0 marks food.
type GameItem struct {
	ID                ItemType
	DisplayName       string
	ToolRequired      ToolType
	ToolOptional      bool
	ToolRankRequired  int
	Recipe            *CraftingRecipe
	DefaultDurability int
	RestoreHunger     int
}

var itemOrder = []ItemType{ItemWood, ItemStone, ItemBerry, ItemIron, ItemAxe, ItemPickaxe}

var toolTypes = map[ToolType]struct{}{
	ToolAxe:     {},
	ToolPickaxe: {},
}

var itemDefs = map[ItemType]GameItem{
	ItemWood: {
		ID:               ItemWood,
		DisplayName:      "Wood",
		ToolRequired:     ToolAxe,
		ToolOptional:     true,
		ToolRankRequired: 1,
	},
	ItemStone: {
		ID:               ItemStone,
		DisplayName:      "Stone",
		ToolRequired:     ToolPickaxe,
		ToolOptional:     true,
		ToolRankRequired: 1,
	},
	ItemBerry: {
		ID:               ItemBerry,
		DisplayName:      "Berry",
		ToolRequired:     ToolAxe,
		ToolOptional:     false,
		ToolRankRequired: 1,
		RestoreHunger:    15,
	},
	ItemIron: {
		ID:               ItemIron,
		DisplayName:      "Iron",
		ToolRankRequired: 1,
	},
	ItemAxe: {
		ID:               ItemAxe,
		DisplayName:      "Axe",
		ToolRequired:     ToolAxe,
		ToolOptional:     true,
		ToolRankRequired: 1,
		Recipe: &CraftingRecipe{
			Result:      ItemAxe,
			Amount:      1,
			Ingredients: map[ItemType]int{ItemWood: 3},
		},
		DefaultDurability: 10,
	},
	ItemPickaxe: {
		ID:               ItemPickaxe,
		DisplayName:      "Pickaxe",
		ToolRequired:     ToolPickaxe,
		ToolOptional:     true,
		ToolRankRequired: 1,
		Recipe: &CraftingRecipe{
			Result:      ItemPickaxe,
			Amount:      1,
			Ingredients: map[ItemType]int{ItemWood: 3, ItemStone: 2},
		},
		DefaultDurability: 10,
	},
}

func LookupItem(item ItemType) (GameItem, bool) {
	def, ok := itemDefs[item]
	return def, ok
}

func ParseItemType(raw string) (ItemType, bool) {
	item := ItemType(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := itemDefs[item]
	return item, ok
}

// SuggestItemType returns the closest known item id to raw, if any is within
// two edits.
func SuggestItemType(raw string) (ItemType, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}
	best, bestDist := ItemType(""), 3
	for _, item := range itemOrder {
		d := levenshtein.ComputeDistance(raw, string(item))
		if d < bestDist {
			best, bestDist = item, d
		}
	}
	return best, best != ""
}

// ItemTypes lists every known item in catalogue order.
func ItemTypes() []ItemType {
	out := make([]ItemType, len(itemOrder))
	copy(out, itemOrder)
	return out
}

// CraftableRecipes lists recipes in catalogue order.
func CraftableRecipes() []CraftingRecipe {
	out := make([]CraftingRecipe, 0, len(itemOrder))
	for _, item := range itemOrder {
		if r := itemDefs[item].Recipe; r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func RecipeFor(item ItemType) (CraftingRecipe, bool) {
	def, ok := itemDefs[item]
	if !ok || def.Recipe == nil {
		return CraftingRecipe{}, false
	}
	return *def.Recipe, true
}

func (it GameItem) Stackable() bool { return it.DefaultDurability <= 0 }
func (it GameItem) Edible() bool    { return it.RestoreHunger > 0 }

// ToolType is the tool kind this item acts as when equipped.
func (it GameItem) ToolType() (ToolType, bool) {
	t := ToolType(it.ID)
	_, ok := toolTypes[t]
	return t, ok
}

func (it GameItem) ToolRank() int {
	if it.ToolRequired == "" {
		return 0
	}
	return it.ToolRankRequired
}

// CalculateYield is evaluated on the gathered item's record with the
// equipped tool ("" for bare hands).
func (it GameItem) CalculateYield(tool ItemType, baseYield int) int {
	if tool == "" {
		return baseYield
	}
	toolItem, ok := itemDefs[tool]
	if !ok {
		return baseYield
	}
	equipped, ok := toolItem.ToolType()
	if !ok {
		return baseYield
	}
	correct := it.ToolRequired != "" && equipped == it.ToolRequired

	if it.ToolRequired != "" && !it.ToolOptional {
		if !correct {
			return baseYield
		}
		bonus := toolItem.ToolRank() - it.ToolRankRequired
		return baseYield * max(bonus+baseYield, baseYield)
	}
	if it.ToolOptional {
		if correct {
			return max(toolItem.ToolRank()+baseYield, baseYield)
		}
		return baseYield
	}
	return baseYield
}
