package services

import (
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/medication"
)

// DroneLoader applies the load rules for a single medication.
//
// Checks run in a fixed order and the first failure wins:
//   - the drone and medication are constructed
//   - battery is at least drone.LowBatteryThreshold
//   - the weight already on board plus the incoming weight fits the limit
//
// On success the medication is bound to the drone and the drone is moved to
// LOADED when it was IDLE or LOADING.
//
// Example usage:
//
//	loader := services.NewDroneLoader()
//	stateChanged, err := loader.Load(d, onBoard, m)
//	if errors.Is(err, drone.ErrBatteryLow) {
//	    return err
//	}
type DroneLoader struct{}

func NewDroneLoader() DroneLoader {
	return DroneLoader{}
}

// Load validates m against d and the medications already on board and binds it.
// It reports whether the drone state changed.
func (l DroneLoader) Load(d *drone.Drone, onBoard []*medication.Medication, m *medication.Medication) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := m.Validate(); err != nil {
		return false, err
	}

	if err := d.ValidateBattery(); err != nil {
		return false, err
	}

	if err := d.ValidateCapacity(medication.TotalWeight(onBoard), m.Weight()); err != nil {
		return false, err
	}

	if err := m.AssignTo(d.ID()); err != nil {
		return false, err
	}

	return d.MarkLoaded(), nil
}
