package database

import (
	"context"
	"database/sql"
)

// Querier is the statement surface shared by a pool and a transaction.
// Catalog repositories and seeders depend on it so they run unchanged
// inside or outside a Tx.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type DB interface {
	Querier

	Ping(ctx context.Context) error
	Close() error
	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes a database/sql handle for the migration runner.
	SQLDB() *sql.DB
}

type Tx interface {
	Querier

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
