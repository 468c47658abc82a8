package saves

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/savegame"
)

var ErrInvalidRequest = errors.New("invalid save request")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _.-]{0,63}$`)

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: world name %q", ErrInvalidRequest, raw)
	}
	return name, nil
}

func runInTx(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.RunInTx(ctx, fn)
}

// SaveUseCase captures the live world. An empty name saves under the
// current world name.
type SaveUseCase struct {
	Session   *session.Session
	Repo      ports.SaveRepository
	TxManager ports.TxManager
}

func (u SaveUseCase) Execute(ctx context.Context, req SaveRequest) (SaveResponse, error) {
	if u.Session == nil || u.Repo == nil {
		return SaveResponse{}, ErrInvalidRequest
	}
	data, err := u.Session.Capture()
	if err != nil {
		return SaveResponse{}, err
	}
	raw := req.Name
	if strings.TrimSpace(raw) == "" {
		raw = data.WorldName
	}
	name, err := normalizeName(raw)
	if err != nil {
		return SaveResponse{}, err
	}
	data.WorldName = name
	if err := runInTx(ctx, u.TxManager, func(txCtx context.Context) error {
		return u.Repo.Save(txCtx, data)
	}); err != nil {
		return SaveResponse{}, err
	}
	return SaveResponse{Save: data.Summary()}, nil
}

// LoadUseCase reads a save and installs it into the session.
type LoadUseCase struct {
	Session   *session.Session
	Repo      ports.SaveRepository
	TxManager ports.TxManager
	NewID     func() string
}

func (u LoadUseCase) Execute(ctx context.Context, req LoadRequest) (LoadResponse, error) {
	if u.Session == nil || u.Repo == nil {
		return LoadResponse{}, ErrInvalidRequest
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return LoadResponse{}, err
	}
	var data savegame.Data
	if err := runInTx(ctx, u.TxManager, func(txCtx context.Context) error {
		var loadErr error
		data, loadErr = u.Repo.Load(txCtx, name)
		return loadErr
	}); err != nil {
		return LoadResponse{}, err
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	restored, err := savegame.Restore(data, newID)
	if err != nil {
		return LoadResponse{}, err
	}
	if restored.WorldName == "" {
		restored.WorldName = name
	}
	u.Session.Apply(restored)
	return LoadResponse{Save: data.Summary(), Skipped: restored.Skipped}, nil
}

type ListUseCase struct {
	Repo ports.SaveRepository
}

func (u ListUseCase) Execute(ctx context.Context, _ ListRequest) (ListResponse, error) {
	if u.Repo == nil {
		return ListResponse{}, ErrInvalidRequest
	}
	items, err := u.Repo.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	if items == nil {
		items = []savegame.Summary{}
	}
	return ListResponse{Saves: items}, nil
}

type DeleteUseCase struct {
	Repo      ports.SaveRepository
	TxManager ports.TxManager
}

func (u DeleteUseCase) Execute(ctx context.Context, req DeleteRequest) (DeleteResponse, error) {
	if u.Repo == nil {
		return DeleteResponse{}, ErrInvalidRequest
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return DeleteResponse{}, err
	}
	if err := runInTx(ctx, u.TxManager, func(txCtx context.Context) error {
		return u.Repo.Delete(txCtx, name)
	}); err != nil {
		return DeleteResponse{}, err
	}
	return DeleteResponse{Deleted: name}, nil
}
