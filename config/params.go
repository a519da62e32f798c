package config

import (
	"fmt"

	"github.com/c360/modkit/errors"
)

// IntParam describes a constrained integer field with a configured
// default and an inclusive lower bound.
type IntParam struct {
	Name    string
	Default int
	Low     int
}

// Validate checks v against the parameter's constraint. Failures are
// Validation-kind domain errors naming the field and the constraint.
func (p IntParam) Validate(component string, v int) error {
	if v < p.Low {
		cause := fmt.Errorf("value %d below minimum %d", v, p.Low)
		return errors.Validation(cause, component, p.Name, fmt.Sprintf("must be >= %d", p.Low))
	}
	return nil
}

// NumberParam describes a constrained float field with a configured
// default and an inclusive lower bound.
type NumberParam struct {
	Name    string
	Default float64
	Low     float64
}

// Validate checks v against the parameter's constraint
func (p NumberParam) Validate(component string, v float64) error {
	if v < p.Low {
		cause := fmt.Errorf("value %v below minimum %v", v, p.Low)
		return errors.Validation(cause, component, p.Name, fmt.Sprintf("must be >= %v", p.Low))
	}
	return nil
}
