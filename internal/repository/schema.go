package repository

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var Schema string

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, exec DBTX) error {
	if _, err := exec.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
