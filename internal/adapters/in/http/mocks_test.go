package http_test

import (
	"context"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/medication"

	"github.com/stretchr/testify/mock"
)

type MockRegisterDroneHandler struct{ mock.Mock }

func (m *MockRegisterDroneHandler) Handle(ctx context.Context, cmd commands.RegisterDroneCommand) (*drone.Drone, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

type MockLoadDroneHandler struct{ mock.Mock }

func (m *MockLoadDroneHandler) Handle(ctx context.Context, cmd commands.LoadDroneCommand) (*medication.Medication, error) {
	args := m.Called(ctx, cmd)
	if fn, ok := args.Get(0).(func(context.Context, commands.LoadDroneCommand) (*medication.Medication, error)); ok {
		return fn(ctx, cmd)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medication.Medication), args.Error(1)
}

type MockGetDroneHandler struct{ mock.Mock }

func (m *MockGetDroneHandler) Handle(ctx context.Context, query queries.GetDroneQuery) (queries.GetDroneQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDroneQueryResponse), args.Error(1)
}

type MockGetDroneAvailabilityHandler struct{ mock.Mock }

func (m *MockGetDroneAvailabilityHandler) Handle(ctx context.Context, query queries.GetDroneAvailabilityQuery) (bool, error) {
	args := m.Called(ctx, query)
	return args.Bool(0), args.Error(1)
}

type MockGetDroneBatteryHandler struct{ mock.Mock }

func (m *MockGetDroneBatteryHandler) Handle(ctx context.Context, query queries.GetDroneBatteryQuery) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

type MockGetLoadedMedicationsHandler struct{ mock.Mock }

func (m *MockGetLoadedMedicationsHandler) Handle(
	ctx context.Context,
	query queries.GetLoadedMedicationsQuery,
) ([]queries.GetLoadedMedicationsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetLoadedMedicationsQueryResponse), args.Error(1)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
