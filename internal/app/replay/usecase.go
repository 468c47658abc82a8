package replay

import (
	"context"
	"errors"
	"strings"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/survival"
)

const maxLimit = 500

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Events == nil || req.Limit < 0 || req.Limit > maxLimit {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}
	events, err := u.Events.ListRecent(ctx, 0)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	events = filterByType(events, strings.TrimSpace(req.Type))
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	return Response{Events: events, LatestState: reconstruct(events)}, nil
}

func filterByTimeWindow(events []survival.DomainEvent, from, to int64) []survival.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]survival.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func filterByType(events []survival.DomainEvent, kind string) []survival.DomainEvent {
	if kind == "" {
		return events
	}
	out := make([]survival.DomainEvent, 0, len(events))
	for _, evt := range events {
		if evt.Type == kind {
			out = append(out, evt)
		}
	}
	return out
}

func reconstruct(events []survival.DomainEvent) LatestState {
	state := LatestState{}
	for _, evt := range events {
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		state.Position.X = int(num(after["x"]))
		state.Position.Y = int(num(after["y"]))
		state.Health = int(num(after["health"]))
		state.Hunger = int(num(after["hunger"]))
		state.Revision = int64(num(after["revision"]))
		state.Dead, _ = after["dead"].(bool)
	}
	return state
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
