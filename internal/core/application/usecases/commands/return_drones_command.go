package commands

import (
	"errors"

	"dronefleet/internal/pkg/guard"
)

var ErrReturnDronesCommandIsNotConstructed = errors.New(
	"ReturnDronesCommand must be created via NewReturnDronesCommand constructor",
)

// ReturnDronesCommand triggers one return sweep over the fleet.
type ReturnDronesCommand struct {
	guard guard.ConstructorGuard
}

func NewReturnDronesCommand() ReturnDronesCommand {
	return ReturnDronesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReturnDronesCommand) Validate() error {
	return c.guard.Validate(ErrReturnDronesCommandIsNotConstructed)
}
