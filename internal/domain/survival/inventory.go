package survival

// Slot holds one stack or one tool. Durability is zero for stackable items.
// A tool never holds zero: wearing it to zero empties the slot, and NewSlot
// reads a missing durability as the item's default.
type Slot struct {
	Item       ItemType `json:"item,omitempty"`
	Count      int      `json:"count"`
	Durability int      `json:"durability,omitempty"`
}

var EmptySlot = Slot{}

// NewSlot normalizes a slot: no item or a non-positive count yields EmptySlot.
// Tools without a positive durability get the catalogue default.
func NewSlot(item ItemType, count, durability int) Slot {
	if item == "" || count <= 0 {
		return EmptySlot
	}
	if durability < 0 {
		durability = 0
	}
	if def, ok := itemDefs[item]; ok && durability == 0 && def.DefaultDurability > 0 {
		durability = def.DefaultDurability
	}
	return Slot{Item: item, Count: count, Durability: durability}
}

func (s Slot) IsEmpty() bool {
	return s.Item == "" || s.Count <= 0
}

func (s Slot) HasDurability() bool {
	return !s.IsEmpty() && s.Durability > 0
}

// Inventory is a fixed-size ordered list of slots. The first HotbarSize slots
// form the hotbar. Every mutation that changes contents fires the change
// callback once.
type Inventory struct {
	slots    []Slot
	onChange func()
}

func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{slots: make([]Slot, capacity)}
}

// OnChange replaces the change callback. A nil fn disables notifications.
func (inv *Inventory) OnChange(fn func()) {
	inv.onChange = fn
}

func (inv *Inventory) notify() {
	if inv.onChange != nil {
		inv.onChange()
	}
}

func (inv *Inventory) Capacity() int {
	return len(inv.slots)
}

func (inv *Inventory) Slot(index int) (Slot, bool) {
	if index < 0 || index >= len(inv.slots) {
		return EmptySlot, false
	}
	return inv.slots[index], true
}

func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

func (inv *Inventory) Hotbar() []Slot {
	n := min(HotbarSize, len(inv.slots))
	out := make([]Slot, n)
	copy(out, inv.slots[:n])
	return out
}

// Replace overwrites all slots, normalizing each one, padding with empty
// slots or truncating to capacity.
func (inv *Inventory) Replace(slots []Slot) {
	for i := range inv.slots {
		if i < len(slots) {
			s := slots[i]
			inv.slots[i] = NewSlot(s.Item, s.Count, s.Durability)
		} else {
			inv.slots[i] = EmptySlot
		}
	}
	inv.notify()
}

// Add puts amount units of item into the inventory. Tools take one empty
// slot per unit; units that find no empty slot are dropped. Stackables merge
// into the first slot of the same type, else take one empty slot; with
// neither, the whole amount is dropped.
func (inv *Inventory) Add(item ItemType, amount int) {
	if inv.add(item, amount) {
		inv.notify()
	}
}

func (inv *Inventory) add(item ItemType, amount int) bool {
	if amount <= 0 {
		return false
	}
	def, ok := itemDefs[item]
	if !ok {
		return false
	}

	if !def.Stackable() {
		changed := false
		for n := 0; n < amount; n++ {
			i := inv.firstEmpty()
			if i < 0 {
				break
			}
			inv.slots[i] = NewSlot(item, 1, def.DefaultDurability)
			changed = true
		}
		return changed
	}

	for i, s := range inv.slots {
		if !s.IsEmpty() && s.Item == item {
			inv.slots[i].Count += amount
			return true
		}
	}
	if i := inv.firstEmpty(); i >= 0 {
		inv.slots[i] = NewSlot(item, amount, 0)
		return true
	}
	return false
}

func (inv *Inventory) firstEmpty() int {
	for i, s := range inv.slots {
		if s.IsEmpty() {
			return i
		}
	}
	return -1
}

// Remove takes amount units from a non-empty slot, emptying it when the count
// would drop to zero or below.
func (inv *Inventory) Remove(index, amount int) {
	if index < 0 || index >= len(inv.slots) || inv.slots[index].IsEmpty() {
		return
	}
	if amount <= 0 {
		return
	}
	if inv.slots[index].Count > amount {
		inv.slots[index].Count -= amount
	} else {
		inv.slots[index] = EmptySlot
	}
	inv.notify()
}

// MoveItem swaps two slots. It never merges.
func (inv *Inventory) MoveItem(source, target int) {
	if source == target {
		return
	}
	if source < 0 || source >= len(inv.slots) || target < 0 || target >= len(inv.slots) {
		return
	}
	inv.slots[source], inv.slots[target] = inv.slots[target], inv.slots[source]
	inv.notify()
}

// Count sums item across all slots.
func (inv *Inventory) Count(item ItemType) int {
	total := 0
	for _, s := range inv.slots {
		if !s.IsEmpty() && s.Item == item {
			total += s.Count
		}
	}
	return total
}

// Has reports whether a single slot holds at least amount of item. Use Count
// for aggregate checks.
func (inv *Inventory) Has(item ItemType, amount int) bool {
	for _, s := range inv.slots {
		if !s.IsEmpty() && s.Item == item && s.Count >= amount {
			return true
		}
	}
	return false
}

func (inv *Inventory) FirstIndex(item ItemType) (int, bool) {
	for i, s := range inv.slots {
		if !s.IsEmpty() && s.Item == item {
			return i, true
		}
	}
	return -1, false
}

// Totals aggregates counts per item in catalogue order.
func (inv *Inventory) Totals() []ItemAmount {
	out := []ItemAmount{}
	for _, item := range itemOrder {
		if n := inv.Count(item); n > 0 {
			out = append(out, ItemAmount{Item: item, Count: n})
		}
	}
	return out
}

// DecreaseDurability wears the tool in index by one. A tool reaching zero
// breaks and the slot empties.
func (inv *Inventory) DecreaseDurability(index int) {
	if index < 0 || index >= len(inv.slots) {
		return
	}
	s := inv.slots[index]
	if !s.HasDurability() {
		return
	}
	if s.Durability-1 <= 0 {
		inv.slots[index] = EmptySlot
	} else {
		inv.slots[index].Durability--
	}
	inv.notify()
}
