package drone

import (
	"fmt"

	"dronefleet/internal/pkg/errs"
)

// State is the operational state of a drone.
//
// Transitions owned by this service:
//
//	IDLE ────┐
//	         ├──(load)──> LOADED
//	LOADING ─┘
//
//	DELIVERED ──(return sweep)──> RETURNING
//
// LOADING, DELIVERING and DELIVERED are entered by flight control outside
// this service. RETURNING has no successor here.
type State int

const (
	// UnknownState is the zero value and is never valid.
	UnknownState State = iota
	Idle
	Loading
	Loaded
	Delivering
	Delivered
	Returning
)

func stateNames() map[State]string {
	return map[State]string{
		Idle:       "IDLE",
		Loading:    "LOADING",
		Loaded:     "LOADED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Returning:  "RETURNING",
	}
}

// ParseState maps an upper-case state name to a State.
func ParseState(s string) (State, error) {
	for st, name := range stateNames() {
		if name == s {
			return st, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

// Validate rejects UnknownState and out-of-range values.
func (s State) Validate() error {
	if _, ok := stateNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if name, ok := stateNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Load applies a load event. IDLE and LOADING become LOADED; any other state
// is returned unchanged, so an already loaded drone can take more packages.
func (s State) Load() State {
	if s == Idle || s == Loading {
		return Loaded
	}
	return s
}

// Return applies a return sweep. Only DELIVERED may move to RETURNING.
func (s State) Return() (State, error) {
	if s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"state is invalid",
			fmt.Errorf("%s is not a valid state to return", s),
		)
	}
	return Returning, nil
}
