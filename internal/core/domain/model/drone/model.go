package drone

import (
	"fmt"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
)

// Model is the drone's weight class. Each model has a fixed maximum carry weight.
type Model int

const (
	// UnknownModel is the zero value and is never valid.
	UnknownModel Model = iota
	Lightweight
	Middleweight
	Cruiserweight
	Heavyweight
)

func modelNames() map[Model]string {
	return map[Model]string{
		Lightweight:   "LIGHTWEIGHT",
		Middleweight:  "MIDDLEWEIGHT",
		Cruiserweight: "CRUISERWEIGHT",
		Heavyweight:   "HEAVYWEIGHT",
	}
}

func modelMaxWeights() map[Model]kernel.Weight {
	return map[Model]kernel.Weight{
		Lightweight:   400,
		Middleweight:  600,
		Cruiserweight: 800,
		Heavyweight:   1000,
	}
}

// ParseModel maps the upper-case model name used by the API and the database to a Model.
func ParseModel(s string) (Model, error) {
	for m, name := range modelNames() {
		if name == s {
			return m, nil
		}
	}
	return UnknownModel, errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%q is not a valid model", s))
}

// Validate rejects UnknownModel and out-of-range values.
func (m Model) Validate() error {
	if _, ok := modelNames()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%d is not a valid model", m))
	}
	return nil
}

// MaxWeight returns the carry capacity of the model, or 0 for an invalid model.
func (m Model) MaxWeight() kernel.Weight {
	return modelMaxWeights()[m]
}

func (m Model) String() string {
	if name, ok := modelNames()[m]; ok {
		return name
	}
	return "UNKNOWN"
}
