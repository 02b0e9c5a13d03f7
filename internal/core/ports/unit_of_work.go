package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
// Callers manage the lifecycle explicitly: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// After a successful Commit there is nothing to roll back and an error is returned.
	Rollback(ctx context.Context) error

	// DroneRepository returns a repository bound to the current transaction.
	DroneRepository() DroneRepository

	// MedicationRepository returns a repository bound to the current transaction.
	MedicationRepository() MedicationRepository
}
