package guard_test

import (
	"errors"
	"testing"

	"dronefleet/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		require.NoError(t, guard.NewConstructorGuard().Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Drone must be created via NewDrone")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInDomainType(t *testing.T) {
	errBatteryReadingNotConstructed := errors.New("BatteryReading must be created via newBatteryReading")

	type batteryReading struct {
		percent int
		guard   guard.ConstructorGuard
	}

	newBatteryReading := func(percent int) (batteryReading, error) {
		if percent < 0 || percent > 100 {
			return batteryReading{}, errors.New("percent is out of range")
		}
		return batteryReading{percent: percent, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		reading, err := newBatteryReading(80)

		require.NoError(t, err)
		require.NoError(t, reading.guard.Validate(errBatteryReadingNotConstructed))
		assert.Equal(t, 80, reading.percent)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var reading batteryReading

		err := reading.guard.Validate(errBatteryReadingNotConstructed)

		assert.Equal(t, errBatteryReadingNotConstructed, err)
	})

	t.Run("copies_keep_the_constructed_flag", func(t *testing.T) {
		reading, err := newBatteryReading(25)
		require.NoError(t, err)

		readingCopy := reading

		require.NoError(t, readingCopy.guard.Validate(errBatteryReadingNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
