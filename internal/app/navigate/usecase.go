package navigate

import (
	"context"
	"errors"

	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid path request")

// Request asks for a path to To. A nil From starts at the player.
type Request struct {
	From *world.Point `json:"from,omitempty"`
	To   *world.Point `json:"to"`
}

type Response struct {
	Path      []world.Point `json:"path"`
	Reachable bool          `json:"reachable"`
	Steps     int           `json:"steps"`
}

type UseCase struct {
	Session *session.Session
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Session == nil || req.To == nil {
		return Response{}, ErrInvalidRequest
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	from := req.From
	if from == nil {
		player, _ := u.Session.Player()
		from = &player
	}
	path := u.Session.Path(*from, *req.To)
	if path == nil {
		path = []world.Point{}
	}
	return Response{
		Path:      path,
		Reachable: len(path) > 0,
		Steps:     max(len(path)-1, 0),
	}, nil
}
