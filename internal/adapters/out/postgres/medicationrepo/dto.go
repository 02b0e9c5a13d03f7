// Package medicationrepo persists medications with GORM.
package medicationrepo

import (
	"dronefleet/internal/adapters/out/postgres/dronerepo"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"

	"github.com/google/uuid"
)

// MedicationDTO is the row layout of the medications table.
type MedicationDTO struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name      string              `gorm:"type:varchar(255);not null"`
	Code      string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	Weight    float64             `gorm:"type:double precision;not null"`
	ImageName string              `gorm:"type:varchar(255)"`
	ImageType string              `gorm:"type:varchar(255)"`
	ImageData []byte              `gorm:"type:bytea"`
	DroneID   *uuid.UUID          `gorm:"type:uuid;index"`
	Drone     *dronerepo.DroneDTO `gorm:"foreignKey:DroneID;constraint:OnDelete:RESTRICT"`
}

func (MedicationDTO) TableName() string {
	return "medications"
}

func fromDomain(m *medication.Medication) MedicationDTO {
	var droneID *uuid.UUID
	if m.DroneID() != nil {
		raw := m.DroneID().Bytes()
		droneID = &raw
	}

	image := m.Image()
	return MedicationDTO{
		ID:        m.ID().Bytes(),
		Name:      m.Name(),
		Code:      m.Code(),
		Weight:    m.Weight().Float64(),
		ImageName: image.Name,
		ImageType: image.Type,
		ImageData: image.Data,
		DroneID:   droneID,
	}
}

func toDomain(dto MedicationDTO) (*medication.Medication, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}
		droneID = &dID
	}

	image := medication.Image{Name: dto.ImageName, Type: dto.ImageType, Data: dto.ImageData}
	return medication.RestoreMedication(id, dto.Name, dto.Code, kernel.Weight(dto.Weight), image, droneID)
}
