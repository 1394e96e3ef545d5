package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes the transaction lifecycle so services can group
// several repository calls into one atomic unit.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to defer; rolling back after a commit is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
