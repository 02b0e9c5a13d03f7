package queries

import (
	"context"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// droneQuery carries the target drone id shared by every per-drone query.
type droneQuery struct {
	droneID kernel.UUID
	guard   guard.ConstructorGuard
}

func newDroneQuery(droneID kernel.UUID) (droneQuery, error) {
	if err := droneID.Validate(); err != nil {
		return droneQuery{}, err
	}
	return droneQuery{droneID: droneID, guard: guard.NewConstructorGuard()}, nil
}

func (q droneQuery) DroneID() kernel.UUID {
	return q.droneID
}

// scanDroneRow runs a single-row query keyed by drone id and scans it into dest.
// A missing row is reported as a drone not-found error.
func scanDroneRow(ctx context.Context, db *gorm.DB, droneID kernel.UUID, query string, dest ...any) error {
	rows, err := db.WithContext(ctx).Raw(query, droneID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return err
		}
		return errs.NewEntityNotFoundError("drone", "id", droneID)
	}

	if err = rows.Scan(dest...); err != nil {
		return err
	}

	return rows.Err()
}

// droneExists reports whether a drone row with id exists.
func droneExists(ctx context.Context, db *gorm.DB, droneID kernel.UUID) error {
	var id uuid.UUID
	return scanDroneRow(ctx, db, droneID, `SELECT id FROM drones WHERE id = ?`, &id)
}
