package queries

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

var ErrGetDroneBatteryQueryIsNotConstructed = errors.New(
	"GetDroneBatteryQuery must be created via NewGetDroneBatteryQuery constructor",
)

// GetDroneBatteryQuery reads the battery level of a drone. The level may be
// negative after return sweeps.
type GetDroneBatteryQuery struct {
	droneQuery
}

func NewGetDroneBatteryQuery(droneID kernel.UUID) (GetDroneBatteryQuery, error) {
	q, err := newDroneQuery(droneID)
	if err != nil {
		return GetDroneBatteryQuery{}, err
	}
	return GetDroneBatteryQuery{droneQuery: q}, nil
}

func (q GetDroneBatteryQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneBatteryQueryIsNotConstructed)
}

type GetDroneBatteryQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneBatteryQueryHandler(db *gorm.DB) GetDroneBatteryQueryHandler {
	return GetDroneBatteryQueryHandler{db: db}
}

func (h GetDroneBatteryQueryHandler) Handle(ctx context.Context, query GetDroneBatteryQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var battery int
	if err := scanDroneRow(ctx, h.db, query.DroneID(),
		`SELECT battery_capacity FROM drones WHERE id = ?`, &battery,
	); err != nil {
		return 0, err
	}

	return battery, nil
}
