package saves

import (
	"context"
	"errors"
	"testing"
	"time"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/app/session"
	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"
	"survivalcraft/internal/domain/world"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	g := world.NewGrid(8, 8)
	rock, _ := world.LookupObject(world.ObjectRock)
	g.PlaceObject(rock, 5, 5)
	s := session.New(session.Config{
		Now: func() time.Time { return time.Unix(1700000000, 0).UTC() },
	})
	s.Apply(savegame.Restored{
		WorldName: "home",
		Seed:      4,
		Grid:      g,
		Player:    world.Point{X: 2, Y: 3},
		Health:    90,
		Hunger:    60,
		Slots:     []survival.Slot{{Item: survival.ItemBerry, Count: 3}},
	})
	return s
}

func TestSaveThenLoadRestoresSession(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	tx := &fakeTx{}
	s := newSession(t)

	out, err := SaveUseCase{Session: s, Repo: repo, TxManager: tx}.Execute(ctx, SaveRequest{Name: " slot-1 "})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if out.Save.WorldName != "slot-1" || out.Save.Version != savegame.CurrentVersion {
		t.Fatalf("unexpected summary: %+v", out.Save)
	}
	if tx.calls != 1 {
		t.Fatalf("tx calls mismatch: got=%d want=1", tx.calls)
	}

	target := session.New(session.Config{})
	loaded, err := LoadUseCase{Session: target, Repo: repo, TxManager: tx}.Execute(ctx, LoadRequest{Name: "slot-1"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Skipped != 0 {
		t.Fatalf("expected nothing skipped, got=%d", loaded.Skipped)
	}
	player, stats := target.Player()
	if player != (world.Point{X: 2, Y: 3}) || stats.Health != 90 || stats.Hunger != 60 {
		t.Fatalf("unexpected restored player: %+v %+v", player, stats)
	}
	slots, _ := target.Inventory()
	if slots[0].Item != survival.ItemBerry || slots[0].Count != 3 {
		t.Fatalf("unexpected restored slot: %+v", slots[0])
	}
	if target.WorldName() != "slot-1" {
		t.Fatalf("world name mismatch: got=%q", target.WorldName())
	}
}

func TestSaveDefaultsToWorldName(t *testing.T) {
	repo := newFakeRepo()
	out, err := SaveUseCase{Session: newSession(t), Repo: repo}.Execute(context.Background(), SaveRequest{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if out.Save.WorldName != "home" {
		t.Fatalf("expected current world name, got %q", out.Save.WorldName)
	}
}

func TestSaveRejectsBadNameAndMissingWorld(t *testing.T) {
	repo := newFakeRepo()
	if _, err := (SaveUseCase{Session: newSession(t), Repo: repo}).Execute(context.Background(), SaveRequest{Name: "../etc"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	empty := session.New(session.Config{})
	if _, err := (SaveUseCase{Session: empty, Repo: repo}).Execute(context.Background(), SaveRequest{Name: "x"}); !errors.Is(err, session.ErrNoWorld) {
		t.Fatalf("expected ErrNoWorld, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.items))
	}
}

func TestLoadRejectsOldVersionAndMissingSave(t *testing.T) {
	repo := newFakeRepo()
	repo.items["old"] = savegame.Data{Version: 1, WorldName: "old"}
	s := newSession(t)

	if _, err := (LoadUseCase{Session: s, Repo: repo}).Execute(context.Background(), LoadRequest{Name: "old"}); !errors.Is(err, savegame.ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
	if s.WorldName() != "home" {
		t.Fatalf("failed load must keep the live world, got %q", s.WorldName())
	}
	if _, err := (LoadUseCase{Session: s, Repo: repo}).Execute(context.Background(), LoadRequest{Name: "nope"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := newSession(t)
	for _, name := range []string{"a", "b"} {
		if _, err := (SaveUseCase{Session: s, Repo: repo}).Execute(ctx, SaveRequest{Name: name}); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}
	list, err := ListUseCase{Repo: repo}.Execute(ctx, ListRequest{})
	if err != nil || len(list.Saves) != 2 {
		t.Fatalf("list: %+v %v", list, err)
	}
	if _, err := (DeleteUseCase{Repo: repo}).Execute(ctx, DeleteRequest{Name: "a"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := (DeleteUseCase{Repo: repo}).Execute(ctx, DeleteRequest{Name: "a"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

type fakeRepo struct {
	items map[string]savegame.Data
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]savegame.Data{}}
}

func (r *fakeRepo) Save(_ context.Context, data savegame.Data) error {
	r.items[data.WorldName] = data
	return nil
}

func (r *fakeRepo) Load(_ context.Context, name string) (savegame.Data, error) {
	d, ok := r.items[name]
	if !ok {
		return savegame.Data{}, ports.ErrNotFound
	}
	return d, nil
}

func (r *fakeRepo) List(_ context.Context) ([]savegame.Summary, error) {
	out := make([]savegame.Summary, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d.Summary())
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.items[name]; !ok {
		return ports.ErrNotFound
	}
	delete(r.items, name)
	return nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

var _ ports.SaveRepository = (*fakeRepo)(nil)
var _ ports.TxManager = (*fakeTx)(nil)
