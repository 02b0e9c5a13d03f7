package queries

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetLoadedMedicationsQueryIsNotConstructed = errors.New(
	"GetLoadedMedicationsQuery must be created via NewGetLoadedMedicationsQuery constructor",
)

// GetLoadedMedicationsQuery lists the medications bound to a drone.
//
// Example:
//
//	query, err := NewGetLoadedMedicationsQuery(droneID)
//	if err != nil {
//	    return err
//	}
//	medications, err := handler.Handle(ctx, query)
type GetLoadedMedicationsQuery struct {
	droneQuery
}

func NewGetLoadedMedicationsQuery(droneID kernel.UUID) (GetLoadedMedicationsQuery, error) {
	q, err := newDroneQuery(droneID)
	if err != nil {
		return GetLoadedMedicationsQuery{}, err
	}
	return GetLoadedMedicationsQuery{droneQuery: q}, nil
}

func (q GetLoadedMedicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadedMedicationsQueryIsNotConstructed)
}

// GetLoadedMedicationsQueryResponse is the medication read model.
type GetLoadedMedicationsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Code      string
	Weight    kernel.Weight
	ImageName string
	ImageType string
	ImageData []byte
}

type GetLoadedMedicationsQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadedMedicationsQueryHandler(db *gorm.DB) GetLoadedMedicationsQueryHandler {
	return GetLoadedMedicationsQueryHandler{db: db}
}

// Handle returns the drone's medications ordered by code. An existing drone
// with nothing on board yields an empty slice.
func (h GetLoadedMedicationsQueryHandler) Handle(
	ctx context.Context,
	query GetLoadedMedicationsQuery,
) ([]GetLoadedMedicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := droneExists(ctx, h.db, query.DroneID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			weight,
			COALESCE(image_name, ''),
			COALESCE(image_type, ''),
			image_data
		FROM medications
		WHERE drone_id = ?
		ORDER BY code
	`, query.DroneID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medications := make([]GetLoadedMedicationsQueryResponse, 0)
	for rows.Next() {
		var (
			m      GetLoadedMedicationsQueryResponse
			id     uuid.UUID
			weight float64
		)

		if err = rows.Scan(&id, &m.Name, &m.Code, &weight, &m.ImageName, &m.ImageType, &m.ImageData); err != nil {
			return nil, err
		}

		medicationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		m.ID = medicationID
		m.Weight = kernel.Weight(weight)

		medications = append(medications, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return medications, nil
}
