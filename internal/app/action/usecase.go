package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/survival"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
)

type UseCase struct {
	Session *session.Session
	Metrics ports.ActionMetrics
	Events  ports.EventRepository
	Now     func() time.Time
}

// rejections are expected rule outcomes. They produce a REJECTED response
// instead of an error.
var rejections = []struct {
	err  error
	code string
}{
	{session.ErrNothingToGather, "NOTHING_TO_GATHER"},
	{session.ErrOutOfReach, "OUT_OF_REACH"},
	{session.ErrToolRequired, "TOOL_REQUIRED"},
	{session.ErrCannotCraft, "MISSING_INGREDIENTS"},
	{session.ErrUnknownItem, "NO_RECIPE"},
	{session.ErrNotEdible, "NOT_EDIBLE"},
	{session.ErrItemMissing, "ITEM_MISSING"},
	{session.ErrInvalidSlot, "INVALID_SLOT"},
	{session.ErrNoPath, "NO_PATH"},
	{session.ErrAnimalNotFound, "ANIMAL_NOT_FOUND"},
	{session.ErrPlayerDead, "PLAYER_DEAD"},
}

func rejectionCode(err error) (string, bool) {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.code, true
		}
	}
	return "", false
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Session == nil {
		return Response{}, ErrInvalidRequest
	}
	req.Intent.Type = survival.ActionType(strings.ToLower(strings.TrimSpace(string(req.Intent.Type))))
	spec, ok := actionRegistry()[req.Intent.Type]
	if !ok || !isSupportedActionType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}
	intent, err := normalizeIntent(req.Intent)
	if err != nil {
		return Response{}, err
	}
	if !spec.Handler.Validate(intent) {
		return Response{}, ErrInvalidActionParams
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	out, err := spec.Handler.Execute(ctx, u, intent, now)
	resp := Response{ResultCode: survival.ResultOK, Events: out.events, Path: out.path}
	if err != nil {
		code, rejected := rejectionCode(err)
		if !rejected {
			if u.Metrics != nil {
				if errors.Is(err, ports.ErrConflict) {
					u.Metrics.RecordConflict()
				} else {
					u.Metrics.RecordFailure()
				}
			}
			return Response{}, err
		}
		resp.ResultCode = survival.ResultRejected
		resp.Reason = code
		resp.Events = append(resp.Events, event("action_rejected", now, map[string]any{
			"action": string(intent.Type),
			"reason": code,
		}))
	}
	if resp.Events == nil {
		resp.Events = []survival.DomainEvent{}
	}

	resp.Player, resp.Stats = u.Session.Player()
	resp.Inventory, resp.Revision = u.Session.Inventory()
	if u.Events != nil {
		stampStateAfter(resp.Events, resp)
		if err := u.Events.Append(ctx, resp.Events); err != nil {
			if u.Metrics != nil {
				u.Metrics.RecordFailure()
			}
			return Response{}, fmt.Errorf("journal events: %w", err)
		}
	}
	if u.Metrics != nil {
		u.Metrics.RecordSettled(intent.Type, resp.ResultCode, resp.Reason)
	}
	return resp, nil
}

// normalizeIntent canonicalises the item id. Unknown ids are rejected with a
// suggestion when one is close enough.
func normalizeIntent(intent survival.ActionIntent) (survival.ActionIntent, error) {
	intent.AnimalID = strings.TrimSpace(intent.AnimalID)
	if strings.TrimSpace(string(intent.Item)) == "" {
		intent.Item = ""
		return intent, nil
	}
	item, ok := survival.ParseItemType(string(intent.Item))
	if ok {
		intent.Item = item
		return intent, nil
	}
	if guess, ok := survival.SuggestItemType(string(intent.Item)); ok {
		return intent, fmt.Errorf("%w: unknown item %q, did you mean %q", ErrInvalidActionParams, intent.Item, guess)
	}
	return intent, fmt.Errorf("%w: unknown item %q", ErrInvalidActionParams, intent.Item)
}

func stampStateAfter(events []survival.DomainEvent, resp Response) {
	after := map[string]any{
		"x":        resp.Player.X,
		"y":        resp.Player.Y,
		"health":   resp.Stats.Health,
		"hunger":   resp.Stats.Hunger,
		"dead":     resp.Stats.Dead,
		"revision": resp.Revision,
	}
	for i := range events {
		events[i].Payload["state_after"] = after
	}
}
