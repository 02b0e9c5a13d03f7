// Package commands contains the write operations of the drone fleet.
// Every command follows the same shape: a validated command value built by
// its constructor and a handler that runs it inside a unit of work.
package commands

import (
	"context"

	"dronefleet/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DroneRepoFactory provides the drone repository within a transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// MedicationRepoFactory provides the medication repository within a transaction.
	MedicationRepoFactory interface {
		MedicationRepository() ports.MedicationRepository
	}

	// DroneUoW manages transactions for drone-only operations.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// UoW manages transactions across drones and medications.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DroneRepository().GetForUpdate(ctx, id)
	//   err = uow.MedicationRepository().Add(ctx, m)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DroneRepoFactory
		MedicationRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
