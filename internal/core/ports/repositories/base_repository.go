package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager lets a repository group its statements in one pgx
// transaction, as the exchange-rate upsert does with its row lock.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
