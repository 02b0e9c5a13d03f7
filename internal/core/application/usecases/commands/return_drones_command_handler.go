package commands

import (
	"context"
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
)

// ReturnDronesCommandHandler runs the return sweep: every DELIVERED drone is
// moved to RETURNING and loses drone.ReturnBatteryCost battery.
//
// Each drone is updated in its own transaction. A failure on one drone is
// recorded and the sweep goes on with the next.
type ReturnDronesCommandHandler struct {
	uowFactory DroneUoWFactory
}

func NewReturnDronesCommandHandler(uowFactory DroneUoWFactory) ReturnDronesCommandHandler {
	return ReturnDronesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of drones moved to RETURNING and the joined
// per-drone errors, if any.
func (h *ReturnDronesCommandHandler) Handle(ctx context.Context, cmd ReturnDronesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.deliveredDrones(ctx)
	if err != nil {
		return 0, err
	}

	var (
		returned int
		errList  []error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			errList = append(errList, ctx.Err())
			break
		}

		ok, returnErr := h.returnDrone(ctx, id)
		if returnErr != nil {
			errList = append(errList, fmt.Errorf("drone %s: %w", id, returnErr))
			continue
		}
		if ok {
			returned++
		}
	}

	return returned, errors.Join(errList...)
}

func (h *ReturnDronesCommandHandler) deliveredDrones(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drones, err := uow.DroneRepository().GetAllInState(ctx, drone.Delivered)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(drones))
	for _, d := range drones {
		ids = append(ids, d.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// returnDrone locks one drone and returns it if it is still DELIVERED.
// It reports false when the drone left DELIVERED since it was listed.
func (h *ReturnDronesCommandHandler) returnDrone(ctx context.Context, id kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DroneRepository()
	aggregate, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return false, err
	}

	if aggregate.State() != drone.Delivered {
		return false, nil
	}

	if err = aggregate.Return(); err != nil {
		return false, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
