package drone_test

import (
	"errors"
	"strings"
	"testing"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDrone(t *testing.T, model drone.Model, battery int, state drone.State) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), "SN-"+kernel.NewUUID().String()[:8], model, battery, state)
	require.NoError(t, err)
	return d
}

func TestNewDrone(t *testing.T) {
	t.Run("should set weight limit from model", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := drone.NewDrone(id, "SN-001", drone.Cruiserweight, 80, drone.Idle)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, id, d.ID())
		assert.Equal(t, "SN-001", d.SerialNumber())
		assert.Equal(t, drone.Cruiserweight, d.Model())
		assert.Equal(t, kernel.Weight(800), d.WeightLimit())
		assert.Equal(t, 80, d.BatteryCapacity())
		assert.Equal(t, drone.Idle, d.State())
	})

	t.Run("should accept battery bounds", func(t *testing.T) {
		for _, battery := range []int{0, 100} {
			_, err := drone.NewDrone(kernel.NewUUID(), "SN-002", drone.Lightweight, battery, drone.Idle)
			require.NoError(t, err)
		}
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := drone.NewDrone(kernel.UUID{}, "", drone.UnknownModel, 101, drone.UnknownState)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative battery", func(t *testing.T) {
		_, err := drone.NewDrone(kernel.NewUUID(), "SN-003", drone.Lightweight, -1, drone.Idle)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject serial numbers over the length limit", func(t *testing.T) {
		_, err := drone.NewDrone(kernel.NewUUID(), strings.Repeat("X", 101), drone.Lightweight, 50, drone.Idle)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = drone.NewDrone(kernel.NewUUID(), strings.Repeat("X", 100), drone.Lightweight, 50, drone.Idle)
		require.NoError(t, err)
	})
}

func TestRestoreDrone(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := drone.RestoreDrone(id, "SN-010", drone.Heavyweight, 1000, 55, drone.Delivering)

		require.NoError(t, err)
		assert.Equal(t, kernel.Weight(1000), d.WeightLimit())
		assert.Equal(t, drone.Delivering, d.State())
	})

	t.Run("should accept negative battery left by sweeps", func(t *testing.T) {
		d, err := drone.RestoreDrone(kernel.NewUUID(), "SN-011", drone.Lightweight, 400, -5, drone.Returning)

		require.NoError(t, err)
		assert.Equal(t, -5, d.BatteryCapacity())
	})

	t.Run("should reject a weight limit that differs from the model", func(t *testing.T) {
		_, err := drone.RestoreDrone(kernel.NewUUID(), "SN-012", drone.Lightweight, 999, 50, drone.Idle)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "weight limit")
	})
}

func TestDrone_Validate(t *testing.T) {
	var zero drone.Drone
	var nilDrone *drone.Drone

	require.ErrorIs(t, zero.Validate(), drone.ErrDroneIsNotConstructed)
	require.ErrorIs(t, nilDrone.Validate(), drone.ErrDroneIsNotConstructed)
}

func TestDrone_IsAvailable(t *testing.T) {
	testCases := []struct {
		name    string
		battery int
		state   drone.State
		want    bool
	}{
		{"idle with 80 percent", 80, drone.Idle, true},
		{"idle at threshold", drone.LowBatteryThreshold, drone.Idle, true},
		{"idle below threshold", drone.LowBatteryThreshold - 1, drone.Idle, false},
		{"loaded with 80 percent", 80, drone.Loaded, false},
		{"loading with full battery", 100, drone.Loading, false},
		{"returning with full battery", 100, drone.Returning, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDrone(t, drone.Middleweight, tc.battery, tc.state)
			assert.Equal(t, tc.want, d.IsAvailable())
		})
	}
}

func TestDrone_ValidateBattery(t *testing.T) {
	require.NoError(t, newTestDrone(t, drone.Lightweight, 25, drone.Idle).ValidateBattery())
	require.ErrorIs(t, newTestDrone(t, drone.Lightweight, 24, drone.Idle).ValidateBattery(), drone.ErrBatteryLow)
	assert.Equal(t, "drone cannot be loaded, battery below 25%", drone.ErrBatteryLow.Error())
}

func TestDrone_ValidateCapacity(t *testing.T) {
	d := newTestDrone(t, drone.Cruiserweight, 80, drone.Idle)

	t.Run("should accept a load up to the limit", func(t *testing.T) {
		require.NoError(t, d.ValidateCapacity(600, 200))
	})

	t.Run("should report the weight limit on overload", func(t *testing.T) {
		err := d.ValidateCapacity(800, 200)

		var overload *drone.OverloadError
		require.ErrorAs(t, err, &overload)
		require.ErrorIs(t, err, drone.ErrOverload)
		assert.Equal(t, kernel.Weight(800), overload.WeightLimit)
		assert.Equal(t, "unable to load: load exceeds weight limit of 800", err.Error())
	})
}

func TestDrone_MarkLoaded(t *testing.T) {
	t.Run("should move IDLE to LOADED", func(t *testing.T) {
		d := newTestDrone(t, drone.Lightweight, 80, drone.Idle)

		assert.True(t, d.MarkLoaded())
		assert.Equal(t, drone.Loaded, d.State())
	})

	t.Run("should leave LOADED unchanged", func(t *testing.T) {
		d := newTestDrone(t, drone.Lightweight, 80, drone.Loaded)

		assert.False(t, d.MarkLoaded())
		assert.Equal(t, drone.Loaded, d.State())
	})
}

func TestDrone_Return(t *testing.T) {
	t.Run("should consume battery and move to RETURNING", func(t *testing.T) {
		d := newTestDrone(t, drone.Lightweight, 80, drone.Delivered)

		require.NoError(t, d.Return())

		assert.Equal(t, 70, d.BatteryCapacity())
		assert.Equal(t, drone.Returning, d.State())
	})

	t.Run("should not clamp battery below zero", func(t *testing.T) {
		d := newTestDrone(t, drone.Lightweight, 5, drone.Delivered)

		require.NoError(t, d.Return())

		assert.Equal(t, -5, d.BatteryCapacity())
	})

	t.Run("should leave non delivered drones untouched", func(t *testing.T) {
		d := newTestDrone(t, drone.Lightweight, 80, drone.Delivering)

		err := d.Return()

		require.Error(t, err)
		assert.Equal(t, 80, d.BatteryCapacity())
		assert.Equal(t, drone.Delivering, d.State())
	})
}

func TestDuplicateSerialNumberError(t *testing.T) {
	err := drone.NewDuplicateSerialNumberError("SN-001", errors.New("unique violation"))

	require.ErrorIs(t, err, drone.ErrDuplicateSerialNumber)
	assert.Equal(t, "drone with serial number 'SN-001' already exists (cause: unique violation)", err.Error())
}
