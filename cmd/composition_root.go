package cmd

import (
	"log/slog"

	"dronefleet/internal/adapters/in/http"
	"dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/services"
	"dronefleet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() *commands.RegisterDroneCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRegisterDroneCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateLoadDroneCommandHandler() *commands.LoadDroneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewLoadDroneCommandHandler(f, services.NewDroneLoader())
	return &h
}

func (c *CompositionRoot) CreateReturnDronesCommandHandler() *commands.ReturnDronesCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewReturnDronesCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneAvailabilityQueryHandler() queries.GetDroneAvailabilityQueryHandler {
	return queries.NewGetDroneAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneBatteryQueryHandler() queries.GetDroneBatteryQueryHandler {
	return queries.NewGetDroneBatteryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadedMedicationsQueryHandler() queries.GetLoadedMedicationsQueryHandler {
	return queries.NewGetLoadedMedicationsQueryHandler(c.gormDB)
}

// CreateServer wires the HTTP adapter. The pinger may be nil.
func (c *CompositionRoot) CreateServer(pinger http.Pinger) *http.Server {
	return http.NewServer(
		c.CreateRegisterDroneCommandHandler(),
		c.CreateLoadDroneCommandHandler(),
		c.CreateGetDroneQueryHandler(),
		c.CreateGetDroneAvailabilityQueryHandler(),
		c.CreateGetDroneBatteryQueryHandler(),
		c.CreateGetLoadedMedicationsQueryHandler(),
		pinger,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReturnDronesCommandHandler(),
		c.config.ReturnSweepInterval,
		c.logger,
	)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
