package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/adapters/out/postgres/pgtest"
	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/core/domain/services"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type droneUoWFactory func() commands.DroneUoW

func (f droneUoWFactory) Create() commands.DroneUoW { return f() }

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := postgres.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE medications, drones").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) loadHandler() commands.LoadDroneCommandHandler {
	return commands.NewLoadDroneCommandHandler(
		uowFactory(func() commands.UoW { return suite.factory.Create() }),
		services.NewDroneLoader(),
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) returnHandler() commands.ReturnDronesCommandHandler {
	return commands.NewReturnDronesCommandHandler(
		droneUoWFactory(func() commands.DroneUoW { return suite.factory.Create() }),
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) register(serial string, model drone.Model, battery int, state drone.State) *drone.Drone {
	cmd, err := commands.NewRegisterDroneCommand(serial, model, battery, state)
	suite.Require().NoError(err)

	handler := commands.NewRegisterDroneCommandHandler(
		droneUoWFactory(func() commands.DroneUoW { return suite.factory.Create() }),
	)
	d, err := handler.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) load(droneID kernel.UUID, code string, weight kernel.Weight) error {
	cmd, err := commands.NewLoadDroneCommand(droneID, "Med-"+code, code, weight, medication.Image{})
	suite.Require().NoError(err)

	handler := suite.loadHandler()
	_, err = handler.Handle(context.Background(), cmd)
	return err
}

func (suite *UnitOfWorkIntegrationTestSuite) storedDrone(id kernel.UUID) *drone.Drone {
	d, err := suite.factory.Create().DroneRepository().Get(context.Background(), id)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	d, err := drone.NewDrone(kernel.NewUUID(), "DRN-RB", drone.Lightweight, 50, drone.Idle)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DroneRepository().Add(ctx, d))
	suite.Equal(1, uow.(*postgres.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().DroneRepository().Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLoad_HappyPathThenOverload() {
	d := suite.register("DRN-800", drone.Cruiserweight, 90, drone.Idle)

	suite.Require().NoError(suite.load(d.ID(), "A", 500))
	suite.Require().NoError(suite.load(d.ID(), "B", 200))
	err := suite.load(d.ID(), "C", 150)

	suite.Require().ErrorIs(err, drone.ErrOverload)
	suite.Equal("unable to load: load exceeds weight limit of 800", err.Error())
	suite.Equal(drone.Loaded, suite.storedDrone(d.ID()).State())

	onBoard, err := suite.factory.Create().MedicationRepository().GetAllByDrone(context.Background(), d.ID())
	suite.Require().NoError(err)
	suite.Len(onBoard, 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLoad_BatteryLowLeavesNoTrace() {
	d := suite.register("DRN-LOW", drone.Heavyweight, 20, drone.Idle)

	err := suite.load(d.ID(), "IBU", 50)

	suite.Require().ErrorIs(err, drone.ErrBatteryLow)
	suite.Equal(drone.Idle, suite.storedDrone(d.ID()).State())
	onBoard, err := suite.factory.Create().MedicationRepository().GetAllByDrone(context.Background(), d.ID())
	suite.Require().NoError(err)
	suite.Empty(onBoard)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLoad_ConcurrentLoadsNeverExceedLimit() {
	d := suite.register("DRN-RACE", drone.Lightweight, 100, drone.Idle)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		overload  int
		other     []error
	)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.load(d.ID(), "RACE_"+string(rune('A'+i)), 100)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, drone.ErrOverload):
				overload++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	suite.Empty(other)
	suite.Equal(4, succeeded)
	suite.Equal(attempts-4, overload)

	onBoard, err := suite.factory.Create().MedicationRepository().GetAllByDrone(context.Background(), d.ID())
	suite.Require().NoError(err)
	suite.InDelta(400, medication.TotalWeight(onBoard).Float64(), 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReturnSweep_MovesOnlyDeliveredDrones() {
	delivered := suite.register("DRN-DEL", drone.Lightweight, 80, drone.Delivered)
	drained := suite.register("DRN-DRAIN", drone.Lightweight, 5, drone.Delivered)
	idle := suite.register("DRN-IDLE", drone.Lightweight, 80, drone.Idle)

	handler := suite.returnHandler()
	returned, err := handler.Handle(context.Background(), commands.NewReturnDronesCommand())

	suite.Require().NoError(err)
	suite.Equal(2, returned)

	stored := suite.storedDrone(delivered.ID())
	suite.Equal(drone.Returning, stored.State())
	suite.Equal(70, stored.BatteryCapacity())

	stored = suite.storedDrone(drained.ID())
	suite.Equal(drone.Returning, stored.State())
	suite.Equal(-5, stored.BatteryCapacity())

	stored = suite.storedDrone(idle.ID())
	suite.Equal(drone.Idle, stored.State())
	suite.Equal(80, stored.BatteryCapacity())

	returned, err = handler.Handle(context.Background(), commands.NewReturnDronesCommand())
	suite.Require().NoError(err)
	suite.Zero(returned, "a second sweep finds nothing to return")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReturnSweep_ConcurrentWithLoad() {
	d := suite.register("DRN-MIX", drone.Heavyweight, 90, drone.Delivered)

	var wg sync.WaitGroup
	var loadErr, sweepErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		loadErr = suite.load(d.ID(), "MIX", 100)
	}()
	go func() {
		defer wg.Done()
		handler := suite.returnHandler()
		_, sweepErr = handler.Handle(context.Background(), commands.NewReturnDronesCommand())
	}()
	wg.Wait()

	suite.Require().NoError(loadErr)
	suite.Require().NoError(sweepErr)

	stored := suite.storedDrone(d.ID())
	suite.Equal(drone.Returning, stored.State())
	suite.Equal(80, stored.BatteryCapacity())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
