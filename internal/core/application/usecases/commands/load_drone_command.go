package commands

import (
	"errors"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/pkg/guard"
)

var ErrLoadDroneCommandIsNotConstructed = errors.New(
	"LoadDroneCommand must be created via NewLoadDroneCommand constructor",
)

// LoadDroneCommand is a request to put one medication on a drone.
// The medication itself is validated and identified when the command is built.
type LoadDroneCommand struct { //nolint:recvcheck //using for validation
	droneID    kernel.UUID
	medication *medication.Medication

	guard guard.ConstructorGuard
}

// NewLoadDroneCommand validates the target drone id and builds an unassigned medication.
func NewLoadDroneCommand(
	droneID kernel.UUID,
	name string,
	code string,
	weight kernel.Weight,
	image medication.Image,
) (LoadDroneCommand, error) {
	command := LoadDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	m, medErr := medication.NewMedication(kernel.NewUUID(), name, code, weight, image)
	if err := errors.Join(command.setDroneID(droneID), medErr); err != nil {
		return LoadDroneCommand{}, err
	}
	command.medication = m

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadDroneCommand) Validate() error {
	return c.guard.Validate(ErrLoadDroneCommandIsNotConstructed)
}

func (c LoadDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Medication returns a fresh unbound copy of the medication to load, so a
// command can be handled again after a failed attempt.
func (c LoadDroneCommand) Medication() *medication.Medication {
	return c.medication.Clone()
}

func (c *LoadDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}
