package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/savegame"
)

func TestSaveRepo_LoadReturnsCopy(t *testing.T) {
	store := NewStore()
	store.SeedSave(savegame.Data{
		WorldName: "w",
		Version:   savegame.CurrentVersion,
		Floors:    []savegame.FloorRecord{{Kind: "land"}},
	})
	repo := NewSaveRepo(store)

	got, err := repo.Load(context.Background(), "w")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got.Floors[0].Kind = "water"
	again, _ := repo.Load(context.Background(), "w")
	if again.Floors[0].Kind != "land" {
		t.Fatalf("stored save was mutated: %+v", again.Floors)
	}
}

func TestSaveRepo_InsideTxDoesNotDeadlock(t *testing.T) {
	store := NewStore()
	repo := NewSaveRepo(store)
	tx := NewTxManager(store)

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Save(ctx, savegame.Data{WorldName: "a", Timestamp: time.Unix(1, 0)}); err != nil {
			return err
		}
		if err := repo.Save(ctx, savegame.Data{WorldName: "b", Timestamp: time.Unix(2, 0)}); err != nil {
			return err
		}
		list, err := repo.List(ctx)
		if err != nil {
			return err
		}
		if len(list) != 2 || list[0].WorldName != "b" {
			t.Fatalf("unexpected list: %+v", list)
		}
		return repo.Delete(ctx, "a")
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	if err := repo.Delete(context.Background(), "a"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

var _ ports.SaveRepository = SaveRepo{}
var _ ports.TxManager = TxManager{}
