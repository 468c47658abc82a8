package status

import (
	"context"
	"errors"
	"testing"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

func TestUseCase_ReportsPlayerAndTotals(t *testing.T) {
	s := session.New(session.Config{})
	s.Apply(savegame.Restored{
		WorldName: "status",
		Grid:      world.NewGrid(4, 4),
		Player:    world.Point{X: 1, Y: 2},
		Health:    70,
		Hunger:    40,
		Slots: []survival.Slot{
			{Item: survival.ItemStone, Count: 2},
			{Item: survival.ItemWood, Count: 1},
			{Item: survival.ItemStone, Count: 3},
		},
	})

	resp, err := UseCase{Session: s}.Execute(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.WorldName != "status" || resp.Player != (world.Point{X: 1, Y: 2}) {
		t.Fatalf("unexpected status: %+v", resp)
	}
	if resp.Stats.Health != 70 || resp.Stats.Hunger != 40 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if len(resp.Totals) != 2 || resp.Totals[0].Item != survival.ItemWood || resp.Totals[1].Count != 5 {
		t.Fatalf("unexpected totals: %+v", resp.Totals)
	}
}

func TestUseCase_RejectsMissingSession(t *testing.T) {
	if _, err := (UseCase{}).Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesNoWorld(t *testing.T) {
	uc := UseCase{Session: session.New(session.Config{})}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, session.ErrNoWorld) {
		t.Fatalf("expected ErrNoWorld, got %v", err)
	}
}
