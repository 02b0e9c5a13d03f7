package commands

import (
	"errors"
	"strings"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrRegisterDroneCommandIsNotConstructed = errors.New(
	"RegisterDroneCommand must be created via NewRegisterDroneCommand constructor",
)

// RegisterDroneCommand is a request to add a drone to the fleet.
// The weight limit is never part of the request; it follows from the model.
//
// Example:
//
//	cmd, err := NewRegisterDroneCommand("DRN-0001", drone.Heavyweight, 100, drone.Idle)
//	if err != nil {
//	    return err
//	}
//	registered, err := handler.Handle(ctx, cmd)
type RegisterDroneCommand struct { //nolint:recvcheck //using for validation
	droneID         kernel.UUID
	serialNumber    string
	model           drone.Model
	batteryCapacity int
	state           drone.State

	guard guard.ConstructorGuard
}

// NewRegisterDroneCommand validates the registration input and assigns a fresh id.
func NewRegisterDroneCommand(
	serialNumber string,
	model drone.Model,
	batteryCapacity int,
	state drone.State,
) (RegisterDroneCommand, error) {
	command := RegisterDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(kernel.NewUUID()),
		command.setSerialNumber(serialNumber),
		command.setModel(model),
		command.setBatteryCapacity(batteryCapacity),
		command.setState(state),
	); err != nil {
		return RegisterDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDroneCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDroneCommandIsNotConstructed)
}

func (c RegisterDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

func (c RegisterDroneCommand) SerialNumber() string {
	return c.serialNumber
}

func (c RegisterDroneCommand) Model() drone.Model {
	return c.model
}

func (c RegisterDroneCommand) BatteryCapacity() int {
	return c.batteryCapacity
}

func (c RegisterDroneCommand) State() drone.State {
	return c.state
}

func (c *RegisterDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *RegisterDroneCommand) setSerialNumber(serialNumber string) error {
	if strings.TrimSpace(serialNumber) == "" {
		return errs.NewValueIsRequiredError("serialNumber")
	}
	if len(serialNumber) > drone.SerialNumberMaxLength {
		return errs.NewValueIsOutOfRangeError("serialNumber length", len(serialNumber), 1, drone.SerialNumberMaxLength)
	}

	c.serialNumber = serialNumber
	return nil
}

func (c *RegisterDroneCommand) setModel(model drone.Model) error {
	if err := model.Validate(); err != nil {
		return err
	}

	c.model = model
	return nil
}

func (c *RegisterDroneCommand) setBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < 0 || batteryCapacity > drone.MaxBatteryCapacity {
		return errs.NewValueIsOutOfRangeError("batteryCapacity", batteryCapacity, 0, drone.MaxBatteryCapacity)
	}

	c.batteryCapacity = batteryCapacity
	return nil
}

func (c *RegisterDroneCommand) setState(state drone.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	c.state = state
	return nil
}
