package worldgen

import (
	"context"
	"errors"
	"strings"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/mapgen"
	"survivalcraft/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid generate request")

type Request struct {
	Name           string   `json:"name"`
	Seed           *uint64  `json:"seed,omitempty"`
	Width          int      `json:"width,omitempty"`
	Height         int      `json:"height,omitempty"`
	WaterThreshold *float64 `json:"water_threshold,omitempty"`
}

type Response struct {
	WorldName string        `json:"world_name"`
	Report    mapgen.Report `json:"report"`
	Spawn     world.Point   `json:"spawn"`
}

// UseCase generates a world from Base with the request's overrides and
// installs it into the session.
type UseCase struct {
	Session *session.Session
	Base    mapgen.Parameters
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Session == nil {
		return Response{}, ErrInvalidRequest
	}
	if req.Width < 0 || req.Height < 0 || req.Width > world.MaxSide || req.Height > world.MaxSide {
		return Response{}, ErrInvalidRequest
	}
	params := u.Base
	if req.Seed != nil {
		params.Seed = *req.Seed
	}
	if req.Width > 0 {
		params.Width = req.Width
	}
	if req.Height > 0 {
		params.Height = req.Height
	}
	if req.WaterThreshold != nil {
		params.WaterThreshold = *req.WaterThreshold
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "world"
	}

	report, err := u.Session.Generate(ctx, name, params)
	if err != nil {
		return Response{}, err
	}
	player, _ := u.Session.Player()
	return Response{WorldName: name, Report: report, Spawn: player}, nil
}
