package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type saveTxKey struct{}

// TxManager runs save operations in one postgres transaction. A call made
// while a transaction is already open on ctx joins it.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, saveTxKey{}, tx))
	})
}

func txFromCtx(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(saveTxKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// conn is the transaction open on ctx, or base outside one.
func conn(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := txFromCtx(ctx); ok {
		return tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}
