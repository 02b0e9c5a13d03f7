package medicationrepo

import (
	"context"
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"

	"gorm.io/gorm"
)

// GormMedicationRepository implements ports.MedicationRepository using GORM.
type GormMedicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMedicationRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicationRepository {
	return &GormMedicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a medication with its drone binding.
func (r *GormMedicationRepository) Add(ctx context.Context, aggregate *medication.Medication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Drone").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", medication.ErrDuplicateCode, aggregate.Code())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByDrone returns the medications bound to droneID ordered by code.
func (r *GormMedicationRepository) GetAllByDrone(
	ctx context.Context,
	droneID kernel.UUID,
) ([]*medication.Medication, error) {
	if err := droneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MedicationDTO
	if err := r.db.WithContext(ctx).
		Where("drone_id = ?", droneID.Bytes()).
		Order("code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	medications := make([]*medication.Medication, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		medications = append(medications, m)
	}

	return medications, nil
}
