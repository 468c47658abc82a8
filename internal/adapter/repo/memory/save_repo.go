package memory

import (
	"context"
	"sort"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/savegame"
)

type SaveRepo struct {
	store *Store
}

func NewSaveRepo(store *Store) SaveRepo {
	return SaveRepo{store: store}
}

func (r SaveRepo) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r SaveRepo) Save(ctx context.Context, data savegame.Data) error {
	defer r.lock(ctx)()
	r.store.saves[data.WorldName] = cloneData(data)
	return nil
}

func (r SaveRepo) Load(ctx context.Context, worldName string) (savegame.Data, error) {
	defer r.lock(ctx)()
	d, ok := r.store.saves[worldName]
	if !ok {
		return savegame.Data{}, ports.ErrNotFound
	}
	return cloneData(d), nil
}

func (r SaveRepo) List(ctx context.Context) ([]savegame.Summary, error) {
	defer r.lock(ctx)()
	out := make([]savegame.Summary, 0, len(r.store.saves))
	for _, d := range r.store.saves {
		out = append(out, d.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r SaveRepo) Delete(ctx context.Context, worldName string) error {
	defer r.lock(ctx)()
	if _, ok := r.store.saves[worldName]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.saves, worldName)
	return nil
}
