package observe

import (
	"context"
	"errors"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

const (
	defaultViewRadius = 5
	maxViewRadius     = 16
)

type UseCase struct {
	Session *session.Session
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Session == nil || req.Radius < 0 || req.Radius > maxViewRadius {
		return Response{}, ErrInvalidRequest
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	radius := req.Radius
	if radius == 0 {
		radius = defaultViewRadius
	}
	v, err := u.Session.Observe(radius)
	if err != nil {
		return Response{}, err
	}
	return Response{
		WorldName: v.WorldName,
		Seed:      v.Seed,
		Size:      v.Size,
		View: View{
			Width:  radius*2 + 1,
			Height: radius*2 + 1,
			Center: v.Player,
			Radius: radius,
		},
		Player:         v.Player,
		Stats:          v.Stats,
		Inventory:      v.Slots,
		SelectedHotbar: v.SelectedHotbar,
		Revision:       v.Revision,
		Tiles:          v.Tiles,
		Objects:        projectObjects(v.Tiles, v.Player, u.Session.ReachTiles()),
		Animals:        projectAnimals(v.Animals),
		Rules:          defaultRules(len(v.Slots), u.Session.ReachTiles()),
		Recipes:        survival.ProductionRecipeRules(),
	}, nil
}

// projectObjects lists each object once, in the order its first tile appears
// in the window.
func projectObjects(tiles []world.TileView, player world.Point, reach int) []ObservedObject {
	seen := map[world.ObjectID]int{}
	out := []ObservedObject{}
	for _, t := range tiles {
		if t.Origin == nil {
			continue
		}
		inReach := player.Chebyshev(world.Point{X: t.X, Y: t.Y}) <= reach
		if i, ok := seen[t.ObjectID]; ok {
			out[i].InReach = out[i].InReach || inReach
			continue
		}
		drop, _ := survival.DropFor(t.Object)
		req, _ := survival.RequirementFor(t.Object)
		seen[t.ObjectID] = len(out)
		out = append(out, ObservedObject{
			ID:          t.ObjectID,
			Kind:        t.Object,
			Origin:      *t.Origin,
			Drop:        drop,
			Requirement: req,
			InReach:     inReach,
		})
	}
	return out
}

func projectAnimals(animals []survival.Animal) []ObservedAnimal {
	out := make([]ObservedAnimal, 0, len(animals))
	for _, a := range animals {
		def := a.Definition()
		out = append(out, ObservedAnimal{
			ID:        a.ID,
			Kind:      a.Kind,
			Pos:       a.Position,
			Health:    a.Health,
			MaxHealth: def.MaxHealth,
			Hostile:   def.Hostile,
		})
	}
	return out
}

func defaultRules(capacity, reach int) Rules {
	return Rules{
		MaxHealth:           survival.MaxHealth,
		MaxHunger:           survival.MaxHunger,
		HungerDecaySeconds:  int(survival.HungerDecayInterval.Seconds()),
		HungerDecayAmount:   survival.HungerDecayAmount,
		HealthTickSeconds:   int(survival.HealthTickInterval.Seconds()),
		StarvationDamage:    survival.StarvationDamage,
		HealthRegenPerTick:  survival.HealthRegenPerTick,
		ReachTiles:          reach,
		HotbarSize:          survival.HotbarSize,
		InventoryCapacity:   capacity,
		DefaultAttackDamage: survival.DefaultAttackDamage,
	}
}
