// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell a constructed instance from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning struct was built by its constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type LoadDroneCommand struct {
//	    droneID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c LoadDroneCommand) Validate() error {
//	    return c.guard.Validate(ErrLoadDroneCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
// Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError falls back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
