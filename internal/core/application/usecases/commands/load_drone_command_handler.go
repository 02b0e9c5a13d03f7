package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/core/domain/services"
)

// LoadDroneCommandHandler loads a medication onto a drone.
//
// The drone row is locked for the whole transaction so that two loads, or a
// load and a return, on the same drone never interleave between the weight
// check and the write.
type LoadDroneCommandHandler struct {
	uowFactory UoWFactory
	loader     services.DroneLoader
}

func NewLoadDroneCommandHandler(uowFactory UoWFactory, loader services.DroneLoader) LoadDroneCommandHandler {
	return LoadDroneCommandHandler{
		uowFactory: uowFactory,
		loader:     loader,
	}
}

// Handle checks existence, then battery, then weight. On success the medication
// is stored bound to the drone and the drone is moved to LOADED from IDLE or LOADING.
func (h *LoadDroneCommandHandler) Handle(ctx context.Context, cmd LoadDroneCommand) (*medication.Medication, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	medicationRepo := uow.MedicationRepository()

	aggregate, err := droneRepo.GetForUpdate(ctx, cmd.DroneID())
	if err != nil {
		return nil, err
	}

	onBoard, err := medicationRepo.GetAllByDrone(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	m := cmd.Medication()
	stateChanged, err := h.loader.Load(aggregate, onBoard, m)
	if err != nil {
		return nil, err
	}

	if err = medicationRepo.Add(ctx, m); err != nil {
		return nil, err
	}

	if stateChanged {
		if err = droneRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
