package ports

import (
	"context"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"
)

// MedicationRepository defines the persistence contract for medications.
type MedicationRepository interface {
	// Add persists a medication together with its drone binding.
	// Returns medication.ErrDuplicateCode when the code is taken.
	Add(ctx context.Context, aggregate *medication.Medication) error

	// GetAllByDrone retrieves the medications bound to droneID.
	GetAllByDrone(ctx context.Context, droneID kernel.UUID) ([]*medication.Medication, error)
}
