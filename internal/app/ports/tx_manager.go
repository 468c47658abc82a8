package ports

import "context"

// TxManager groups save repository calls so a save or delete lands whole.
// Repositories pick the transaction up from the ctx passed to fn; a nested
// RunInTx joins the outer one.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
