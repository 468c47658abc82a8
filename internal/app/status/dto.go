package status

import (
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

type Request struct{}

type Response struct {
	WorldName string                `json:"world_name"`
	Player    world.Point           `json:"player"`
	Stats     survival.Stats        `json:"stats"`
	Totals    []survival.ItemAmount `json:"totals"`
	Revision  int64                 `json:"inventory_revision"`
}
