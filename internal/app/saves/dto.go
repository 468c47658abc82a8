package saves

import "survivalcraft/internal/domain/savegame"

type SaveRequest struct {
	Name string `json:"name"`
}

type SaveResponse struct {
	Save savegame.Summary `json:"save"`
}

type LoadRequest struct {
	Name string `json:"name"`
}

type LoadResponse struct {
	Save    savegame.Summary `json:"save"`
	Skipped int              `json:"skipped_records"`
}

type ListRequest struct{}

type ListResponse struct {
	Saves []savegame.Summary `json:"saves"`
}

type DeleteRequest struct {
	Name string `json:"name"`
}

type DeleteResponse struct {
	Deleted string `json:"deleted"`
}
