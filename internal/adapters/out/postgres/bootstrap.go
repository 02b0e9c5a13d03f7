package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// EnsureDatabase connects to the maintenance database behind adminDSN and
// creates name when it does not exist yet.
func EnsureDatabase(ctx context.Context, adminDSN string, name string) error {
	conn, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %s: %w", name, err)
	}

	if exists {
		return nil
	}

	if _, err = conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(name)); err != nil {
		var pqErr *pq.Error
		// 42P04: created concurrently by another instance
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database %s: %w", name, err)
	}

	return nil
}
