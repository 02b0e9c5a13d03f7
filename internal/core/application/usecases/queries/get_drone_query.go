package queries

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

// GetDroneQuery reads the full state of one drone.
type GetDroneQuery struct {
	droneQuery
}

func NewGetDroneQuery(droneID kernel.UUID) (GetDroneQuery, error) {
	q, err := newDroneQuery(droneID)
	if err != nil {
		return GetDroneQuery{}, err
	}
	return GetDroneQuery{droneQuery: q}, nil
}

func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// GetDroneQueryResponse is the drone read model. Model and State hold the
// upper-case names, e.g. "HEAVYWEIGHT" and "IDLE".
type GetDroneQueryResponse struct {
	ID              kernel.UUID
	SerialNumber    string
	Model           string
	WeightLimit     kernel.Weight
	BatteryCapacity int
	State           string
}

type GetDroneQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneQueryHandler(db *gorm.DB) GetDroneQueryHandler {
	return GetDroneQueryHandler{db: db}
}

func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (GetDroneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDroneQueryResponse{}, err
	}

	response := GetDroneQueryResponse{ID: query.DroneID()}
	var weightLimit float64
	err := scanDroneRow(ctx, h.db, query.DroneID(), `
		SELECT
			serial_number,
			model,
			weight_limit,
			battery_capacity,
			state
		FROM drones
		WHERE id = ?
	`, &response.SerialNumber, &response.Model, &weightLimit, &response.BatteryCapacity, &response.State)
	if err != nil {
		return GetDroneQueryResponse{}, err
	}
	response.WeightLimit = kernel.Weight(weightLimit)

	return response, nil
}
