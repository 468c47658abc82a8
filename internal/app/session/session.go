package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"survivalcraft/internal/domain/mapgen"
	"survivalcraft/internal/domain/pathfind"
	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

var (
	ErrNoWorld          = errors.New("no world installed")
	ErrPlayerDead       = errors.New("player is dead")
	ErrNothingToGather  = errors.New("nothing to gather at target")
	ErrOutOfReach       = errors.New("target out of reach")
	ErrToolRequired     = errors.New("required tool not equipped")
	ErrCannotCraft      = errors.New("missing crafting ingredients")
	ErrUnknownItem      = errors.New("unknown item")
	ErrNotEdible        = errors.New("item is not edible")
	ErrItemMissing      = errors.New("item not in inventory")
	ErrInvalidSlot      = errors.New("invalid inventory slot")
	ErrNoPath           = errors.New("no path to target")
	ErrAnimalNotFound   = errors.New("animal not found")
	ErrSpawnUnavailable = errors.New("no walkable spawn tile")
)

type Config struct {
	InventoryCapacity int
	ReachTiles        int
	SearchRadius      int
	AnimalCount       int
	AttackDamage      int
	Now               func() time.Time
	NewID             func() string
}

func DefaultConfig() Config {
	return Config{
		InventoryCapacity: survival.DefaultInventoryCapacity,
		ReachTiles:        survival.DefaultReachTiles,
		SearchRadius:      survival.DefaultSearchRadius,
		AnimalCount:       survival.DefaultAnimalCount,
		AttackDamage:      survival.DefaultAttackDamage,
		Now:               time.Now,
		NewID:             uuid.NewString,
	}
}

// Session is the single owner of live world state. Every exported method
// holds the session lock for its whole duration.
type Session struct {
	mu  sync.Mutex
	cfg Config

	worldName string
	seed      uint64
	grid      *world.Grid
	paths     *pathfind.Pathfinder
	player    world.Point
	stats     survival.Stats
	inv       *survival.Inventory
	hotbar    int
	animals   map[string]*survival.Animal
	rng       *rand.Rand
	revision  int64
}

func New(cfg Config) *Session {
	def := DefaultConfig()
	if cfg.InventoryCapacity <= 0 {
		cfg.InventoryCapacity = def.InventoryCapacity
	}
	if cfg.ReachTiles <= 0 {
		cfg.ReachTiles = def.ReachTiles
	}
	if cfg.SearchRadius <= 0 {
		cfg.SearchRadius = def.SearchRadius
	}
	if cfg.AnimalCount < 0 {
		cfg.AnimalCount = 0
	}
	if cfg.AttackDamage <= 0 {
		cfg.AttackDamage = def.AttackDamage
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = def.NewID
	}
	s := &Session{
		cfg:     cfg,
		stats:   survival.NewStats(),
		animals: map[string]*survival.Animal{},
		rng:     rand.New(rand.NewPCG(0, 0)),
	}
	s.inv = s.newInventory()
	return s
}

func (s *Session) newInventory() *survival.Inventory {
	inv := survival.NewInventory(s.cfg.InventoryCapacity)
	inv.OnChange(s.bumpRevision)
	return inv
}

// bumpRevision runs with the lock held: inventories only change inside
// session methods.
func (s *Session) bumpRevision() {
	s.revision++
}

// prepared is a world built off-lock, ready to be swapped in.
type prepared struct {
	name    string
	seed    uint64
	grid    *world.Grid
	paths   *pathfind.Pathfinder
	player  world.Point
	stats   survival.Stats
	slots   []survival.Slot
	hotbar  int
	animals []survival.Animal
	rng     *rand.Rand
}

// Generate builds a new world on a worker goroutine without holding the
// lock, then installs it in one step. The live world is untouched until the
// install, and untouched after it if ctx ends first.
func (s *Session) Generate(ctx context.Context, name string, params mapgen.Parameters) (mapgen.Report, error) {
	type result struct {
		p      prepared
		report mapgen.Report
		err    error
	}
	done := make(chan result, 1)
	go func() {
		p, report, err := s.prepareGenerated(ctx, name, params)
		done <- result{p: p, report: report, err: err}
	}()

	select {
	case <-ctx.Done():
		return mapgen.Report{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return mapgen.Report{}, r.err
		}
		s.install(r.p)
		return r.report, nil
	}
}

func (s *Session) prepareGenerated(ctx context.Context, name string, params mapgen.Parameters) (prepared, mapgen.Report, error) {
	grid, report, err := mapgen.Generate(ctx, params)
	if err != nil {
		return prepared{}, mapgen.Report{}, err
	}
	spawn, ok := grid.FirstWalkable()
	if !ok {
		return prepared{}, mapgen.Report{}, ErrSpawnUnavailable
	}
	paths := pathfind.New(grid)
	rng := rand.New(rand.NewPCG(report.Seed, report.Seed^0x9e3779b97f4a7c15))
	return prepared{
		name:    name,
		seed:    report.Seed,
		grid:    grid,
		paths:   paths,
		player:  spawn,
		stats:   survival.NewStats(),
		animals: spawnAnimals(grid, spawn, s.cfg.AnimalCount, rng, s.cfg.NewID),
		rng:     rng,
	}, report, nil
}

// spawnAnimals places n animals on random walkable tiles other than the
// spawn tile, alternating kinds in catalogue order.
func spawnAnimals(grid *world.Grid, spawn world.Point, n int, rng *rand.Rand, newID func() string) []survival.Animal {
	out := make([]survival.Animal, 0, n)
	kinds := survival.AnimalKinds()
	for i, attempts := 0, 0; len(out) < n && attempts < 10*n; attempts++ {
		x, y := rng.IntN(grid.Width()), rng.IntN(grid.Height())
		pos := world.Point{X: x, Y: y}
		if pos == spawn || !grid.IsWalkable(x, y) {
			continue
		}
		a, _ := survival.NewAnimal(newID(), kinds[i%len(kinds)], pos)
		out = append(out, a)
		i++
	}
	return out
}

// Apply installs a world restored from a save. The pathfinder is rebuilt for
// the restored grid before the swap.
func (s *Session) Apply(r savegame.Restored) {
	stats := survival.NewStats()
	stats.Restore(r.Health, r.Hunger)
	hotbar := r.SelectedHotbar
	if hotbar < 0 || hotbar >= survival.HotbarSize {
		hotbar = 0
	}
	s.install(prepared{
		name:    r.WorldName,
		seed:    r.Seed,
		grid:    r.Grid,
		paths:   pathfind.New(r.Grid),
		player:  r.Player,
		stats:   stats,
		slots:   r.Slots,
		hotbar:  hotbar,
		animals: r.Animals,
		rng:     rand.New(rand.NewPCG(r.Seed, uint64(len(r.Animals)))),
	})
}

func (s *Session) install(p prepared) {
	inv := survival.NewInventory(s.cfg.InventoryCapacity)
	if p.slots != nil {
		inv.Replace(p.slots)
	}
	animals := make(map[string]*survival.Animal, len(p.animals))
	for i := range p.animals {
		a := p.animals[i]
		animals[a.ID] = &a
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.worldName = p.name
	s.seed = p.seed
	s.grid = p.grid
	s.paths = p.paths
	s.player = p.player
	s.stats = p.stats
	s.inv = inv
	s.inv.OnChange(s.bumpRevision)
	s.hotbar = p.hotbar
	s.animals = animals
	s.rng = p.rng
	s.revision++
}

// Capture snapshots the live world for saving.
func (s *Session) Capture() (savegame.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return savegame.Data{}, ErrNoWorld
	}
	return savegame.Capture(savegame.State{
		WorldName:      s.worldName,
		Seed:           s.seed,
		Grid:           s.grid,
		Player:         s.player,
		Stats:          s.stats,
		Slots:          s.inv.Slots(),
		SelectedHotbar: s.hotbar,
		Animals:        s.animalList(),
	}, s.cfg.Now()), nil
}

func (s *Session) WorldName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.worldName
}

func (s *Session) animalList() []survival.Animal {
	out := make([]survival.Animal, 0, len(s.animals))
	for _, a := range s.animals {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Session) ready() error {
	if s.grid == nil {
		return ErrNoWorld
	}
	if s.stats.Dead {
		return ErrPlayerDead
	}
	return nil
}
