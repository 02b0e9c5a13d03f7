package commands_test

import (
	"context"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDroneRepo struct{ mock.Mock }

func (m *MockDroneRepo) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepo) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepo) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepo) GetAllInState(ctx context.Context, state drone.State) ([]*drone.Drone, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type MockMedicationRepo struct{ mock.Mock }

func (m *MockMedicationRepo) Add(ctx context.Context, med *medication.Medication) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicationRepo) GetAllByDrone(ctx context.Context, droneID kernel.UUID) ([]*medication.Medication, error) {
	args := m.Called(ctx, droneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*medication.Medication), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUnitOfWork) MedicationRepository() ports.MedicationRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

func restoreDrone(id kernel.UUID, model drone.Model, battery int, state drone.State) *drone.Drone {
	d, err := drone.RestoreDrone(id, "SN-"+id.String()[:8], model, model.MaxWeight(), battery, state)
	if err != nil {
		panic(err)
	}
	return d
}

func loadedMedication(droneID kernel.UUID, code string, weight kernel.Weight) *medication.Medication {
	m, err := medication.RestoreMedication(kernel.NewUUID(), "Med-"+code, code, weight, medication.Image{}, &droneID)
	if err != nil {
		panic(err)
	}
	return m
}

func medicationWithID(id kernel.UUID) any {
	return mock.MatchedBy(func(m *medication.Medication) bool {
		return m != nil && m.ID().IsEqual(id)
	})
}
