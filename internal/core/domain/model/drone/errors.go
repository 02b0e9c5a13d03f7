package drone

import (
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/kernel"
)

var (
	// ErrDroneIsNotConstructed is returned when using a Drone that was not built by NewDrone or RestoreDrone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")

	// ErrBatteryLow rejects loading a drone whose battery is under LowBatteryThreshold.
	ErrBatteryLow = fmt.Errorf("drone cannot be loaded, battery below %d%%", LowBatteryThreshold)

	// ErrOverload is the sentinel behind OverloadError.
	ErrOverload = errors.New("drone weight limit exceeded")

	// ErrDuplicateSerialNumber is the sentinel behind DuplicateSerialNumberError.
	ErrDuplicateSerialNumber = errors.New("drone serial number already registered")
)

// OverloadError rejects a load whose combined weight would exceed the drone's limit.
// It reports the limit, not the excess.
type OverloadError struct {
	WeightLimit kernel.Weight
}

func NewOverloadError(weightLimit kernel.Weight) *OverloadError {
	return &OverloadError{WeightLimit: weightLimit}
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("unable to load: load exceeds weight limit of %s", e.WeightLimit)
}

func (e *OverloadError) Unwrap() error {
	return ErrOverload
}

// DuplicateSerialNumberError is returned by repositories when a serial number is already taken.
type DuplicateSerialNumberError struct {
	SerialNumber string
	Cause        error
}

func NewDuplicateSerialNumberError(serialNumber string, cause error) *DuplicateSerialNumberError {
	return &DuplicateSerialNumberError{SerialNumber: serialNumber, Cause: cause}
}

func (e *DuplicateSerialNumberError) Error() string {
	msg := fmt.Sprintf("drone with serial number '%s' already exists", e.SerialNumber)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *DuplicateSerialNumberError) Unwrap() error {
	return ErrDuplicateSerialNumber
}
