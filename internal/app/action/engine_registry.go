package action

import (
	"context"
	"time"

	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type outcome struct {
	events []survival.DomainEvent
	path   []world.Point
}

type ActionHandler interface {
	Validate(intent survival.ActionIntent) bool
	Execute(ctx context.Context, uc UseCase, intent survival.ActionIntent, now time.Time) (outcome, error)
}

type ActionSpec struct {
	Type    survival.ActionType
	Handler ActionHandler
}

func actionRegistry() map[survival.ActionType]ActionSpec {
	return map[survival.ActionType]ActionSpec{
		survival.ActionMove:         {Type: survival.ActionMove, Handler: moveActionHandler{}},
		survival.ActionGather:       {Type: survival.ActionGather, Handler: gatherActionHandler{}},
		survival.ActionCraft:        {Type: survival.ActionCraft, Handler: craftActionHandler{}},
		survival.ActionEat:          {Type: survival.ActionEat, Handler: eatActionHandler{}},
		survival.ActionMoveItem:     {Type: survival.ActionMoveItem, Handler: moveItemActionHandler{}},
		survival.ActionDrop:         {Type: survival.ActionDrop, Handler: dropActionHandler{}},
		survival.ActionSelectHotbar: {Type: survival.ActionSelectHotbar, Handler: selectHotbarActionHandler{}},
		survival.ActionAttack:       {Type: survival.ActionAttack, Handler: attackActionHandler{}},
	}
}

func supportedActionTypes() []survival.ActionType {
	return []survival.ActionType{
		survival.ActionMove,
		survival.ActionGather,
		survival.ActionCraft,
		survival.ActionEat,
		survival.ActionMoveItem,
		survival.ActionDrop,
		survival.ActionSelectHotbar,
		survival.ActionAttack,
	}
}

func isSupportedActionType(t survival.ActionType) bool {
	for _, actionType := range supportedActionTypes() {
		if t == actionType {
			return true
		}
	}
	return false
}

func event(kind string, now time.Time, payload map[string]any) survival.DomainEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return survival.DomainEvent{Type: kind, OccurredAt: now, Payload: payload}
}
