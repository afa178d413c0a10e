package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor is the subset of database/sql shared by *sql.DB and *sql.Tx, so a
// repository can run standalone or inside a caller-managed transaction.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
