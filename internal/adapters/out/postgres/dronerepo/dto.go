// Package dronerepo persists drone aggregates with GORM.
package dronerepo

import (
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO is the row layout of the drones table.
// Model and state are stored by name so the table stays readable in psql.
type DroneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SerialNumber    string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Model           string    `gorm:"type:varchar(20);not null"`
	WeightLimit     float64   `gorm:"type:double precision;not null"`
	BatteryCapacity int       `gorm:"type:int;not null"`
	State           string    `gorm:"type:varchar(20);not null;index"`
}

func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(d *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:              d.ID().Bytes(),
		SerialNumber:    d.SerialNumber(),
		Model:           d.Model().String(),
		WeightLimit:     d.WeightLimit().Float64(),
		BatteryCapacity: d.BatteryCapacity(),
		State:           d.State().String(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	model, err := drone.ParseModel(dto.Model)
	if err != nil {
		return nil, err
	}

	state, err := drone.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(id, dto.SerialNumber, model, kernel.Weight(dto.WeightLimit), dto.BatteryCapacity, state)
}
