package boltrepo

import (
	"context"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"survivalcraft/internal/adapter/codec"
	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/savegame"
)

// SaveRepo keeps the msgpack payload and its summary in separate buckets so
// listing never decodes full saves.
type SaveRepo struct {
	db *bolt.DB
}

func NewSaveRepo(db *bolt.DB) SaveRepo {
	return SaveRepo{db: db}
}

func (r SaveRepo) Save(ctx context.Context, data savegame.Data) error {
	payload, err := codec.EncodeSave(data)
	if err != nil {
		return err
	}
	summary, err := codec.Pack(data.Summary())
	if err != nil {
		return fmt.Errorf("encode summary %q: %w", data.WorldName, err)
	}
	key := []byte(data.WorldName)
	return update(ctx, r.db, func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketSaves).Put(key, payload); err != nil {
			return err
		}
		return tx.Bucket(bucketSummaries).Put(key, summary)
	})
}

func (r SaveRepo) Load(ctx context.Context, worldName string) (savegame.Data, error) {
	var payload []byte
	err := view(ctx, r.db, func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSaves).Get([]byte(worldName))
		if v == nil {
			return ports.ErrNotFound
		}
		// Get's slice is only valid inside the transaction.
		payload = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return savegame.Data{}, err
	}
	return codec.DecodeSave(payload)
}

func (r SaveRepo) List(ctx context.Context) ([]savegame.Summary, error) {
	out := []savegame.Summary{}
	err := view(ctx, r.db, func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSummaries).ForEach(func(k, v []byte) error {
			var s savegame.Summary
			if err := codec.Unpack(v, &s); err != nil {
				return fmt.Errorf("decode summary %q: %w", k, err)
			}
			out = append(out, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r SaveRepo) Delete(ctx context.Context, worldName string) error {
	key := []byte(worldName)
	return update(ctx, r.db, func(tx *bolt.Tx) error {
		saves := tx.Bucket(bucketSaves)
		if saves.Get(key) == nil {
			return ports.ErrNotFound
		}
		if err := saves.Delete(key); err != nil {
			return err
		}
		return tx.Bucket(bucketSummaries).Delete(key)
	})
}
