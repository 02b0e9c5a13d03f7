// Package ports defines the persistence contracts of the drone fleet.
// Domain and application code depend on these interfaces; the postgres
// adapters implement them.
package ports

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	// Add persists a newly registered drone.
	// Returns *drone.DuplicateSerialNumberError when the serial number is taken.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists the battery and state of an existing drone.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by id.
	// Returns *errs.ObjectNotFoundError when no such drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetForUpdate retrieves a drone by id and locks its row until the
	// surrounding transaction ends. Concurrent loads and returns of the same
	// drone are serialized through this lock.
	//
	// Example:
	//   uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   d, err := uow.DroneRepository().GetForUpdate(ctx, id)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAllInState retrieves all drones currently in state.
	GetAllInState(ctx context.Context, state drone.State) ([]*drone.Drone, error)
}
