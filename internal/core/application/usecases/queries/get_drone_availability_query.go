package queries

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

var ErrGetDroneAvailabilityQueryIsNotConstructed = errors.New(
	"GetDroneAvailabilityQuery must be created via NewGetDroneAvailabilityQuery constructor",
)

// GetDroneAvailabilityQuery asks whether a drone can take a new load:
// it must be IDLE with at least drone.LowBatteryThreshold battery.
type GetDroneAvailabilityQuery struct {
	droneQuery
}

func NewGetDroneAvailabilityQuery(droneID kernel.UUID) (GetDroneAvailabilityQuery, error) {
	q, err := newDroneQuery(droneID)
	if err != nil {
		return GetDroneAvailabilityQuery{}, err
	}
	return GetDroneAvailabilityQuery{droneQuery: q}, nil
}

func (q GetDroneAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneAvailabilityQueryIsNotConstructed)
}

type GetDroneAvailabilityQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneAvailabilityQueryHandler(db *gorm.DB) GetDroneAvailabilityQueryHandler {
	return GetDroneAvailabilityQueryHandler{db: db}
}

func (h GetDroneAvailabilityQueryHandler) Handle(ctx context.Context, query GetDroneAvailabilityQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var (
		state   string
		battery int
	)
	err := scanDroneRow(ctx, h.db, query.DroneID(),
		`SELECT state, battery_capacity FROM drones WHERE id = ?`,
		&state, &battery,
	)
	if err != nil {
		return false, err
	}

	return state == drone.Idle.String() && battery >= drone.LowBatteryThreshold, nil
}
