package medication

import (
	"errors"
	"fmt"
	"regexp"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
	codePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

var (
	// ErrMedicationIsNotConstructed is returned when using a Medication not built by its constructors.
	ErrMedicationIsNotConstructed = errors.New("Medication must be created via NewMedication constructor")
	// ErrAlreadyAssigned rejects binding a medication that already belongs to a drone.
	ErrAlreadyAssigned = errors.New("medication is already assigned to a drone")
	// ErrDuplicateCode is returned by repositories when the medication code is already taken.
	ErrDuplicateCode = errors.New("medication code already exists")
)

// Image is the opaque picture attached to a medication. It is stored and
// returned as is.
type Image struct {
	Name string
	Type string
	Data []byte
}

// Medication is a package that can be loaded onto a drone.
//
// Example:
//
//	m, err := medication.NewMedication(kernel.NewUUID(), "Paracetamol-500", "PARA_500", 200, medication.Image{})
//	if err != nil {
//	    return err
//	}
//	err = m.AssignTo(droneID)
type Medication struct {
	id      kernel.UUID
	name    string
	code    string
	weight  kernel.Weight
	image   Image
	droneID *kernel.UUID
	guard   guard.ConstructorGuard
}

// NewMedication creates an unassigned medication after validating name, code and weight.
func NewMedication(id kernel.UUID, name string, code string, weight kernel.Weight, image Image) (*Medication, error) {
	m := &Medication{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setCode(code),
		m.setWeight(weight),
	); err != nil {
		return nil, err
	}
	m.image = image

	return m, nil
}

// RestoreMedication rebuilds a persisted medication, optionally bound to droneID.
func RestoreMedication(
	id kernel.UUID,
	name string,
	code string,
	weight kernel.Weight,
	image Image,
	droneID *kernel.UUID,
) (*Medication, error) {
	m, err := NewMedication(id, name, code, weight, image)
	if err != nil {
		return nil, err
	}

	if droneID != nil {
		if err = m.AssignTo(*droneID); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Validate reports whether the medication was built by one of its constructors.
func (m *Medication) Validate() error {
	if m == nil {
		return ErrMedicationIsNotConstructed
	}
	return m.guard.Validate(ErrMedicationIsNotConstructed)
}

func (m *Medication) ID() kernel.UUID {
	return m.id
}

func (m *Medication) Name() string {
	return m.name
}

func (m *Medication) Code() string {
	return m.code
}

func (m *Medication) Weight() kernel.Weight {
	return m.weight
}

func (m *Medication) Image() Image {
	return m.image
}

// DroneID returns the owning drone or nil while unassigned.
func (m *Medication) DroneID() *kernel.UUID {
	return m.droneID
}

// IsAssigned reports whether the medication belongs to a drone.
func (m *Medication) IsAssigned() bool {
	return m.droneID != nil
}

// AssignTo binds the medication to a drone. A medication is bound at most once.
func (m *Medication) AssignTo(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	if m.droneID != nil {
		return ErrAlreadyAssigned
	}
	m.droneID = &droneID
	return nil
}

// Clone returns an independent copy; binding the copy leaves m untouched.
func (m *Medication) Clone() *Medication {
	if m == nil {
		return nil
	}

	c := *m
	if m.image.Data != nil {
		c.image.Data = append([]byte{}, m.image.Data...)
	}
	if m.droneID != nil {
		droneID := *m.droneID
		c.droneID = &droneID
	}
	return &c
}

func (m *Medication) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medication) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q does not match %s", name, namePattern))
	}
	m.name = name
	return nil
}

func (m *Medication) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q does not match %s", code, codePattern))
	}
	m.code = code
	return nil
}

func (m *Medication) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	m.weight = weight
	return nil
}

// TotalWeight sums the weights of medications.
func TotalWeight(medications []*Medication) kernel.Weight {
	weights := make([]kernel.Weight, 0, len(medications))
	for _, m := range medications {
		weights = append(weights, m.Weight())
	}
	return kernel.SumWeights(weights...)
}
