package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"survivalcraft/internal/domain/survival"
)

func TestUseCase_ReconstructsLatestStateFromEvents(t *testing.T) {
	repo := fakeRepo{events: []survival.DomainEvent{
		{Type: "player_moved", OccurredAt: time.Unix(1, 0), Payload: map[string]any{"state_after": map[string]any{"health": 80, "hunger": 70.0, "x": 2, "y": 3, "revision": int64(1)}}},
		{Type: "item_eaten", OccurredAt: time.Unix(2, 0), Payload: map[string]any{"state_after": map[string]any{"health": 60, "hunger": 90, "x": 3, "y": 4, "revision": int64(2)}}},
		{Type: "tick", OccurredAt: time.Unix(3, 0), Payload: map[string]any{}},
	}}

	out, err := UseCase{Events: repo}.Execute(context.Background(), Request{Limit: 10})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.LatestState.Health != 60 || out.LatestState.Hunger != 90 {
		t.Fatalf("unexpected latest vitals: %+v", out.LatestState)
	}
	if out.LatestState.Position.X != 3 || out.LatestState.Position.Y != 4 || out.LatestState.Revision != 2 {
		t.Fatalf("unexpected latest position: %+v", out.LatestState)
	}
	if len(out.Events) != 3 {
		t.Fatalf("event count mismatch: got=%d want=3", len(out.Events))
	}
}

func TestUseCase_FiltersWindowAndType(t *testing.T) {
	repo := fakeRepo{events: []survival.DomainEvent{
		{Type: "player_moved", OccurredAt: time.Unix(10, 0), Payload: map[string]any{}},
		{Type: "item_crafted", OccurredAt: time.Unix(20, 0), Payload: map[string]any{}},
		{Type: "player_moved", OccurredAt: time.Unix(30, 0), Payload: map[string]any{}},
	}}
	uc := UseCase{Events: repo}

	out, err := uc.Execute(context.Background(), Request{OccurredFrom: 15, OccurredTo: 30})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 2 || out.Events[0].Type != "item_crafted" {
		t.Fatalf("unexpected window: %+v", out.Events)
	}

	out, _ = uc.Execute(context.Background(), Request{Type: "player_moved"})
	if len(out.Events) != 2 {
		t.Fatalf("type filter mismatch: got=%d want=2", len(out.Events))
	}
}

func TestUseCase_FiltersBeforeApplyingLimit(t *testing.T) {
	events := []survival.DomainEvent{{Type: "item_crafted", OccurredAt: time.Unix(1, 0), Payload: map[string]any{}}}
	for i := 0; i < 60; i++ {
		events = append(events, survival.DomainEvent{Type: "player_moved", OccurredAt: time.Unix(int64(i+2), 0), Payload: map[string]any{}})
	}
	uc := UseCase{Events: fakeRepo{events: events}}

	out, err := uc.Execute(context.Background(), Request{Type: "item_crafted"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Type != "item_crafted" {
		t.Fatalf("expected the older crafted event, got %d events", len(out.Events))
	}

	out, _ = uc.Execute(context.Background(), Request{Type: "player_moved", Limit: 5})
	if len(out.Events) != 5 || out.Events[4].OccurredAt.Unix() != 61 {
		t.Fatalf("expected the newest 5 moves, got %+v", out.Events)
	}
}

func TestUseCase_RejectsBadRequests(t *testing.T) {
	uc := UseCase{Events: fakeRepo{}}
	for _, req := range []Request{{Limit: -1}, {Limit: maxLimit + 1}, {OccurredFrom: 9, OccurredTo: 3}} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest for %+v, got %v", req, err)
		}
	}
	if _, err := (UseCase{}).Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest without a journal, got %v", err)
	}
}

type fakeRepo struct {
	events []survival.DomainEvent
}

func (r fakeRepo) Append(_ context.Context, _ []survival.DomainEvent) error {
	return nil
}

func (r fakeRepo) ListRecent(_ context.Context, limit int) ([]survival.DomainEvent, error) {
	if limit > 0 && len(r.events) > limit {
		return r.events[len(r.events)-limit:], nil
	}
	return r.events, nil
}
