package boltrepo

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketSaves     = []byte("saves")
	bucketSummaries = []byte("save_summaries")
)

// Open opens the save file and creates the buckets it needs.
func Open(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketSaves, bucketSummaries} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return db, nil
}

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context, tx *bolt.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func txFromCtx(ctx context.Context) (*bolt.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*bolt.Tx)
	return tx, ok && tx != nil
}

// update runs fn in the caller's transaction when there is one.
func update(ctx context.Context, db *bolt.DB, fn func(tx *bolt.Tx) error) error {
	if tx, ok := txFromCtx(ctx); ok {
		if !tx.Writable() {
			return bolt.ErrTxNotWritable
		}
		return fn(tx)
	}
	return db.Update(fn)
}

func view(ctx context.Context, db *bolt.DB, fn func(tx *bolt.Tx) error) error {
	if tx, ok := txFromCtx(ctx); ok {
		return fn(tx)
	}
	return db.View(fn)
}

type TxManager struct {
	db *bolt.DB
}

func NewTxManager(db *bolt.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}
	return t.db.Update(func(tx *bolt.Tx) error {
		return fn(withTx(ctx, tx))
	})
}
