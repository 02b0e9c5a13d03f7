package dronerepo

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDroneRepository implements ports.DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new drone. A unique violation on serial_number becomes
// *drone.DuplicateSerialNumberError; the connection must be opened with
// gorm.Config.TranslateError.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return drone.NewDuplicateSerialNumberError(aggregate.SerialNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns of a drone: battery and state.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"battery_capacity": aggregate.BatteryCapacity(),
			"state":            aggregate.State().String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("drone", "id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the drone with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released immediately.
func (r *GormDroneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormDroneRepository) GetAllInState(ctx context.Context, state drone.State) ([]*drone.Drone, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Where("state = ?", state.String()).
		Order("serial_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	return drones, nil
}

func (r *GormDroneRepository) get(db *gorm.DB, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("drone", "id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
