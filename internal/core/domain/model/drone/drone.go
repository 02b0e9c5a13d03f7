package drone

import (
	"errors"
	"fmt"
	"strings"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

const (
	// LowBatteryThreshold is the minimum battery percentage required to load a drone.
	LowBatteryThreshold = 25
	// ReturnBatteryCost is the battery percentage consumed when a drone starts returning.
	ReturnBatteryCost = 10
	// MaxBatteryCapacity is the upper bound of the battery percentage.
	MaxBatteryCapacity = 100
	// SerialNumberMaxLength bounds the length of a serial number.
	SerialNumberMaxLength = 100
)

// Drone is the aggregate root for a fleet unit.
//
// Invariants:
//   - weightLimit equals model.MaxWeight() for the whole life of the drone
//   - batteryCapacity never increases
//   - state only changes through MarkLoaded and Return
//
// Example:
//
//	d, err := drone.NewDrone(kernel.NewUUID(), "SN-001", drone.Cruiserweight, 80, drone.Idle)
//	if err != nil {
//	    return err
//	}
//	d.WeightLimit() // 800
type Drone struct {
	id              kernel.UUID
	serialNumber    string
	model           Model
	weightLimit     kernel.Weight
	batteryCapacity int
	state           State
	guard           guard.ConstructorGuard
}

// NewDrone registers a new drone. The weight limit is always taken from the model;
// callers cannot supply one.
//
// Business rules:
//   - serialNumber is required and at most SerialNumberMaxLength characters
//   - model and state must be known values
//   - batteryCapacity must be within [0, MaxBatteryCapacity]
func NewDrone(id kernel.UUID, serialNumber string, model Model, batteryCapacity int, state State) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.setBatteryCapacity(batteryCapacity),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone rebuilds a persisted drone. The stored weight limit must still match
// the model. The battery may be below zero because return sweeps do not clamp it.
func RestoreDrone(
	id kernel.UUID,
	serialNumber string,
	model Model,
	weightLimit kernel.Weight,
	batteryCapacity int,
	state State,
) (*Drone, error) {
	d := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.restoreBatteryCapacity(batteryCapacity),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	if d.weightLimit != weightLimit {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"weight limit",
			fmt.Errorf("%s does not match %s model limit %s", weightLimit, d.model, d.weightLimit),
		)
	}

	return d, nil
}

// Validate reports whether the drone was built by one of its constructors.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Drone) ID() kernel.UUID {
	return d.id
}

func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

func (d *Drone) Model() Model {
	return d.model
}

func (d *Drone) WeightLimit() kernel.Weight {
	return d.weightLimit
}

func (d *Drone) BatteryCapacity() int {
	return d.batteryCapacity
}

func (d *Drone) State() State {
	return d.state
}

// HasSufficientBattery reports whether the battery is at or above LowBatteryThreshold.
func (d *Drone) HasSufficientBattery() bool {
	return d.batteryCapacity >= LowBatteryThreshold
}

// IsAvailable reports whether the drone can accept a new load: IDLE with sufficient battery.
func (d *Drone) IsAvailable() bool {
	return d.state == Idle && d.HasSufficientBattery()
}

// ValidateBattery returns ErrBatteryLow when the drone may not be loaded.
func (d *Drone) ValidateBattery() error {
	if !d.HasSufficientBattery() {
		return ErrBatteryLow
	}
	return nil
}

// ValidateCapacity checks that the already loaded weight plus incoming fits the weight limit.
// Returns an *OverloadError carrying the limit otherwise.
func (d *Drone) ValidateCapacity(loaded kernel.Weight, incoming kernel.Weight) error {
	if loaded.Add(incoming).Exceeds(d.weightLimit) {
		return NewOverloadError(d.weightLimit)
	}
	return nil
}

// MarkLoaded applies a load event to the state machine and reports whether the state changed.
func (d *Drone) MarkLoaded() bool {
	next := d.state.Load()
	changed := next != d.state
	d.state = next
	return changed
}

// Return moves a DELIVERED drone to RETURNING and consumes ReturnBatteryCost.
// The battery is not clamped at zero.
func (d *Drone) Return() error {
	next, err := d.state.Return()
	if err != nil {
		return err
	}

	d.batteryCapacity -= ReturnBatteryCost
	d.state = next
	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if strings.TrimSpace(serialNumber) == "" {
		return errs.NewValueIsRequiredError("serial number")
	}
	if len(serialNumber) > SerialNumberMaxLength {
		return errs.NewValueIsOutOfRangeError("serial number length", len(serialNumber), 1, SerialNumberMaxLength)
	}
	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	d.model = model
	d.weightLimit = model.MaxWeight()
	return nil
}

func (d *Drone) setBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < 0 || batteryCapacity > MaxBatteryCapacity {
		return errs.NewValueIsOutOfRangeError("battery capacity", batteryCapacity, 0, MaxBatteryCapacity)
	}
	d.batteryCapacity = batteryCapacity
	return nil
}

func (d *Drone) restoreBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity > MaxBatteryCapacity {
		return errs.NewValueIsOutOfRangeError("battery capacity", batteryCapacity, "-", MaxBatteryCapacity)
	}
	d.batteryCapacity = batteryCapacity
	return nil
}

func (d *Drone) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	d.state = state
	return nil
}
