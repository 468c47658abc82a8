package action

import (
	"context"
	"errors"
	"time"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/survival"
)

type moveActionHandler struct{}
type gatherActionHandler struct{}
type craftActionHandler struct{}
type eatActionHandler struct{}
type moveItemActionHandler struct{}
type dropActionHandler struct{}
type selectHotbarActionHandler struct{}
type attackActionHandler struct{}

func (moveActionHandler) Validate(survival.ActionIntent) bool { return true }

func (moveActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	path, err := uc.Session.Move(intent.X, intent.Y)
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		path: path,
		events: []survival.DomainEvent{event("player_moved", now, map[string]any{
			"x":     intent.X,
			"y":     intent.Y,
			"steps": len(path) - 1,
		})},
	}, nil
}

func (gatherActionHandler) Validate(survival.ActionIntent) bool { return true }

// Execute gathers at the target. When the target is out of reach the
// response carries the approach path so the caller can walk there first.
func (gatherActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	res, err := uc.Session.Gather(intent.X, intent.Y)
	if errors.Is(err, session.ErrOutOfReach) {
		path, pathErr := uc.Session.ApproachPath(intent.X, intent.Y)
		if pathErr != nil {
			return outcome{}, err
		}
		return outcome{path: path}, err
	}
	if err != nil {
		return outcome{}, err
	}
	events := []survival.DomainEvent{event("object_gathered", now, map[string]any{
		"object": string(res.Object.Kind),
		"x":      res.Object.Origin.X,
		"y":      res.Object.Origin.Y,
		"item":   string(res.Drop.Item),
		"count":  res.Drop.Count,
		"tool":   string(res.Tool),
	})}
	if res.ToolBroke {
		events = append(events, event("tool_broke", now, map[string]any{"tool": string(res.Tool)}))
	}
	return outcome{events: events}, nil
}

func (craftActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.Item != ""
}

func (craftActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	made, err := uc.Session.Craft(intent.Item)
	if err != nil {
		return outcome{}, err
	}
	return outcome{events: []survival.DomainEvent{event("item_crafted", now, map[string]any{
		"item":  string(made.Item),
		"count": made.Count,
	})}}, nil
}

func (eatActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.Item != ""
}

func (eatActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	stats, err := uc.Session.Eat(intent.Item)
	if err != nil {
		return outcome{}, err
	}
	return outcome{events: []survival.DomainEvent{event("item_eaten", now, map[string]any{
		"item":   string(intent.Item),
		"hunger": stats.Hunger,
	})}}, nil
}

func (moveItemActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.Index >= 0 && intent.Target >= 0 && intent.Index != intent.Target
}

func (moveItemActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	if err := uc.Session.MoveItem(intent.Index, intent.Target); err != nil {
		return outcome{}, err
	}
	return outcome{events: []survival.DomainEvent{event("item_moved", now, map[string]any{
		"from": intent.Index,
		"to":   intent.Target,
	})}}, nil
}

func (dropActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.Index >= 0 && intent.Amount >= 0
}

func (dropActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	slot, err := uc.Session.Drop(intent.Index, intent.Amount)
	if err != nil {
		return outcome{}, err
	}
	return outcome{events: []survival.DomainEvent{event("item_dropped", now, map[string]any{
		"index":  intent.Index,
		"item":   string(slot.Item),
		"amount": max(intent.Amount, 1),
	})}}, nil
}

func (selectHotbarActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.Index >= 0 && intent.Index < survival.HotbarSize
}

func (selectHotbarActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	if err := uc.Session.SelectHotbar(intent.Index); err != nil {
		return outcome{}, err
	}
	return outcome{events: []survival.DomainEvent{event("hotbar_selected", now, map[string]any{
		"index": intent.Index,
	})}}, nil
}

func (attackActionHandler) Validate(intent survival.ActionIntent) bool {
	return intent.AnimalID != "" && intent.Amount >= 0
}

func (attackActionHandler) Execute(_ context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error) {
	res, err := uc.Session.Attack(intent.AnimalID, intent.Amount)
	if err != nil {
		return outcome{}, err
	}
	events := []survival.DomainEvent{event("animal_hit", now, map[string]any{
		"animal_id": res.Animal.ID,
		"kind":      string(res.Animal.Kind),
		"health":    res.Animal.Health,
	})}
	if res.Killed {
		loot := make([]map[string]any, 0, len(res.Loot))
		for _, l := range res.Loot {
			loot = append(loot, map[string]any{"item": string(l.Item), "count": l.Count})
		}
		events = append(events, event("animal_killed", now, map[string]any{
			"animal_id": res.Animal.ID,
			"loot":      loot,
		}))
	}
	if res.CounterDamage > 0 {
		events = append(events, event("player_hit", now, map[string]any{
			"animal_id": res.Animal.ID,
			"damage":    res.CounterDamage,
		}))
	}
	return outcome{events: events}, nil
}
