package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBTX is a common interface for *sqlx.DB and *sqlx.Tx.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Compile-time check that *sqlx.DB and *sqlx.Tx implement DBTX.
var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)
