package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/savegame"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("SURVIVALCRAFT_DB_DSN")
	if dsn == "" {
		t.Skip("SURVIVALCRAFT_DB_DSN is required for integration test")
	}
	return dsn
}

func TestSaveRepo_UpsertLoadListDelete(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenSaveDB(context.Background(), dsn, PoolConfig{})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if _, err := ApplyMigrations(ctx, db, "../../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	name := "it-save-roundtrip"
	_ = db.Exec("DELETE FROM world_saves WHERE world_name = ?", name).Error

	repo := NewSaveRepo(db)
	data := savegame.Data{
		Version:   savegame.CurrentVersion,
		WorldName: name,
		Timestamp: time.Unix(1700000000, 0).UTC(),
		Seed:      4,
		Width:     1,
		Height:    1,
		Health:    70,
		Hunger:    20,
		Floors:    []savegame.FloorRecord{{Kind: "land"}},
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	data.Hunger = 10
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := repo.Load(ctx, name)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Hunger != 10 || len(got.Floors) != 1 {
		t.Fatalf("unexpected save: %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := 0
	for _, s := range list {
		if s.WorldName == name {
			found++
		}
	}
	if found != 1 {
		t.Fatalf("expected one listed save, got=%d", found)
	}

	if err := repo.Delete(ctx, name); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, name); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTxManager_RollsBackSave(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenSaveDB(context.Background(), dsn, PoolConfig{})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	name := "it-save-rollback"
	_ = db.Exec("DELETE FROM world_saves WHERE world_name = ?", name).Error

	repo := NewSaveRepo(db)
	boom := errors.New("boom")
	err = NewTxManager(db).RunInTx(ctx, func(txCtx context.Context) error {
		if err := repo.Save(txCtx, savegame.Data{Version: savegame.CurrentVersion, WorldName: name}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := repo.Load(ctx, name); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rollback, got %v", err)
	}
}
