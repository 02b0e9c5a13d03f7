package postgres

import (
	"dronefleet/internal/adapters/out/postgres/dronerepo"
	"dronefleet/internal/adapters/out/postgres/medicationrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects GORM to dsn. Driver errors are translated so repositories can
// match gorm.ErrDuplicatedKey on unique violations.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the drones and medications tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&dronerepo.DroneDTO{}, &medicationrepo.MedicationDTO{})
}
