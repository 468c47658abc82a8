package status

import (
	"context"
	"errors"

	"survivalcraft/internal/app/session"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Session *session.Session
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	if u.Session == nil {
		return Response{}, ErrInvalidRequest
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	totals, revision, err := u.Session.Totals()
	if err != nil {
		return Response{}, err
	}
	player, stats := u.Session.Player()
	return Response{
		WorldName: u.Session.WorldName(),
		Player:    player,
		Stats:     stats,
		Totals:    totals,
		Revision:  revision,
	}, nil
}
