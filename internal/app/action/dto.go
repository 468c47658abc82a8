package action

import (
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type Request struct {
	Intent survival.ActionIntent
}

type Response struct {
	ResultCode survival.ResultCode    `json:"result_code"`
	Reason     string                 `json:"reason,omitempty"`
	Events     []survival.DomainEvent `json:"events"`
	Player     world.Point            `json:"player"`
	Stats      survival.Stats         `json:"stats"`
	Inventory  []survival.Slot        `json:"inventory"`
	Revision   int64                  `json:"inventory_revision"`
	Path       []world.Point          `json:"path,omitempty"`
}
