package survival

// CanCraft checks every ingredient against the aggregate count.
func (inv *Inventory) CanCraft(recipe CraftingRecipe) bool {
	for item, qty := range recipe.Ingredients {
		if inv.Count(item) < qty {
			return false
		}
	}
	return true
}

// Craft deducts ingredients slot by slot in index order and adds the result
// through Add's capacity policy. It notifies once.
func (inv *Inventory) Craft(recipe CraftingRecipe) bool {
	if !inv.CanCraft(recipe) {
		return false
	}
	inv.consume(recipe.SortedIngredients())
	inv.add(recipe.Result, recipe.Amount)
	inv.notify()
	return true
}

func (inv *Inventory) consume(required []ItemAmount) {
	for _, req := range required {
		remaining := req.Count
		for i := range inv.slots {
			if remaining <= 0 {
				break
			}
			s := inv.slots[i]
			if s.IsEmpty() || s.Item != req.Item {
				continue
			}
			used := min(s.Count, remaining)
			remaining -= used
			inv.slots[i] = NewSlot(s.Item, s.Count-used, s.Durability)
		}
	}
}

// ProductionRecipeRule is the catalogue view of a recipe.
type ProductionRecipeRule struct {
	Result      ItemType     `json:"result"`
	DisplayName string       `json:"display_name"`
	Amount      int          `json:"amount"`
	Ingredients []ItemAmount `json:"ingredients"`
}

func ProductionRecipeRules() []ProductionRecipeRule {
	recipes := CraftableRecipes()
	out := make([]ProductionRecipeRule, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ProductionRecipeRule{
			Result:      r.Result,
			DisplayName: itemDefs[r.Result].DisplayName,
			Amount:      r.Amount,
			Ingredients: r.SortedIngredients(),
		})
	}
	return out
}
