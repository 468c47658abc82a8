package session

import (
	"time"

	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type GatherResult struct {
	Object    world.PlacedObject  `json:"object"`
	Drop      survival.ItemAmount `json:"drop"`
	Tool      survival.ItemType   `json:"tool,omitempty"`
	ToolBroke bool                `json:"tool_broke"`
	Cleared   []world.Point       `json:"cleared"`
}

// Gather harvests the object whose interactable tile is (x, y) with the tool
// in the selected hotbar slot. The whole footprint is cleared and the
// pathfinder refreshed for every cleared tile.
func (s *Session) Gather(x, y int) (GatherResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return GatherResult{}, err
	}

	obj, ok := s.grid.Object(x, y)
	if !ok || !obj.IsInteractable(x, y) {
		return GatherResult{}, ErrNothingToGather
	}
	if _, ok := survival.DropFor(obj.Kind); !ok {
		return GatherResult{}, ErrNothingToGather
	}
	if s.player.Chebyshev(world.Point{X: x, Y: y}) > s.cfg.ReachTiles {
		return GatherResult{}, ErrOutOfReach
	}

	equipped, _ := s.inv.Slot(s.hotbar)
	tool := equipped.Item
	if !survival.CanGather(obj.Kind, tool) {
		return GatherResult{}, ErrToolRequired
	}
	drop, _ := survival.GatherYield(obj.Kind, tool)
	s.inv.Add(drop.Item, drop.Count)
	s.inv.DecreaseDurability(s.hotbar)
	after, _ := s.inv.Slot(s.hotbar)

	cleared := obj.OccupiedTiles()
	s.grid.RemoveObjectFootprint(x, y)
	for _, p := range cleared {
		s.paths.UpdateTile(p.X, p.Y)
	}

	return GatherResult{
		Object:    obj,
		Drop:      drop,
		Tool:      tool,
		ToolBroke: equipped.HasDurability() && after.IsEmpty(),
		Cleared:   cleared,
	}, nil
}

// ApproachPath returns a path from the player to the nearest walkable tile
// around (x, y).
func (s *Session) ApproachPath(x, y int) ([]world.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.player.Chebyshev(world.Point{X: x, Y: y}) <= s.cfg.ReachTiles {
		return []world.Point{s.player}, nil
	}
	goal, ok := s.paths.FindNearestWalkableAround(x, y, s.cfg.SearchRadius)
	if !ok {
		return nil, ErrNoPath
	}
	path := s.paths.FindPath(s.player, goal)
	if len(path) == 0 {
		return nil, ErrNoPath
	}
	return path, nil
}

// Move walks the player to (x, y) along a shortest path and returns it.
func (s *Session) Move(x, y int) ([]world.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	path := s.paths.FindPath(s.player, world.Point{X: x, Y: y})
	if len(path) == 0 {
		return nil, ErrNoPath
	}
	s.player = path[len(path)-1]
	return path, nil
}

// Path is a raw pathfinder query. It never fails; unreachable pairs yield an
// empty path.
func (s *Session) Path(from, to world.Point) []world.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paths == nil {
		return nil
	}
	return s.paths.FindPath(from, to)
}

func (s *Session) Craft(item survival.ItemType) (survival.ItemAmount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return survival.ItemAmount{}, err
	}
	recipe, ok := survival.RecipeFor(item)
	if !ok {
		return survival.ItemAmount{}, ErrUnknownItem
	}
	if !s.inv.Craft(recipe) {
		return survival.ItemAmount{}, ErrCannotCraft
	}
	return survival.ItemAmount{Item: recipe.Result, Count: recipe.Amount}, nil
}

func (s *Session) Eat(item survival.ItemType) (survival.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return survival.Stats{}, err
	}
	def, ok := survival.LookupItem(item)
	if !ok {
		return survival.Stats{}, ErrUnknownItem
	}
	if !def.Edible() {
		return survival.Stats{}, ErrNotEdible
	}
	if !s.stats.Eat(s.inv, item) {
		return survival.Stats{}, ErrItemMissing
	}
	return s.stats, nil
}

func (s *Session) MoveItem(source, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}
	if !s.validSlot(source) || !s.validSlot(target) {
		return ErrInvalidSlot
	}
	s.inv.MoveItem(source, target)
	return nil
}

// Drop discards amount units from a slot.
func (s *Session) Drop(index, amount int) (survival.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return survival.Slot{}, err
	}
	slot, ok := s.inv.Slot(index)
	if !ok {
		return survival.Slot{}, ErrInvalidSlot
	}
	if slot.IsEmpty() {
		return survival.Slot{}, ErrItemMissing
	}
	if amount <= 0 {
		amount = 1
	}
	s.inv.Remove(index, amount)
	return slot, nil
}

func (s *Session) SelectHotbar(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= min(survival.HotbarSize, s.inv.Capacity()) {
		return ErrInvalidSlot
	}
	s.hotbar = index
	return nil
}

func (s *Session) validSlot(i int) bool {
	return i >= 0 && i < s.inv.Capacity()
}

type AttackResult struct {
	Animal        survival.Animal       `json:"animal"`
	Killed        bool                  `json:"killed"`
	Loot          []survival.ItemAmount `json:"loot"`
	CounterDamage int                   `json:"counter_damage,omitempty"`
}

// Attack hits an animal within reach. A killed animal is removed and each of
// its loot entries is rolled independently into the inventory. A hostile
// animal that survives strikes back.
func (s *Session) Attack(id string, damage int) (AttackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return AttackResult{}, err
	}
	a, ok := s.animals[id]
	if !ok {
		return AttackResult{}, ErrAnimalNotFound
	}
	if s.player.Chebyshev(a.Position) > s.cfg.ReachTiles {
		return AttackResult{}, ErrOutOfReach
	}
	if damage <= 0 {
		damage = s.cfg.AttackDamage
	}

	out := AttackResult{Loot: []survival.ItemAmount{}}
	out.Killed = a.TakeDamage(damage)
	if out.Killed {
		delete(s.animals, id)
		out.Loot = a.Definition().RollLoot(s.rng.Float64)
		for _, l := range out.Loot {
			s.inv.Add(l.Item, l.Count)
		}
	} else if def := a.Definition(); def.Hostile && def.Damage > 0 {
		s.stats.Damage(def.Damage)
		out.CounterDamage = def.Damage
	}
	out.Animal = *a
	return out, nil
}

// Advance runs the vitals clock.
func (s *Session) Advance(dt time.Duration) survival.StatsDelta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Update(dt)
}
