package commands

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
)

// RegisterDroneCommandHandler persists newly registered drones.
type RegisterDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewRegisterDroneCommandHandler(uowFactory DroneUoWFactory) RegisterDroneCommandHandler {
	return RegisterDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the drone and stores it. The stored drone is returned with the
// weight limit derived from its model.
// A taken serial number surfaces as *drone.DuplicateSerialNumberError.
func (h *RegisterDroneCommandHandler) Handle(ctx context.Context, cmd RegisterDroneCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := drone.NewDrone(cmd.DroneID(), cmd.SerialNumber(), cmd.Model(), cmd.BatteryCapacity(), cmd.State())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DroneRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
