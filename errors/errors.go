// Package errors provides standardized error handling for the modkit
// composition core. It includes the domain error taxonomy, standard error
// variables, and helper functions for consistent error wrapping across
// registration, resolution, and validation.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies domain errors raised by the composition core
type Kind int

const (
	// KindUnknown is the zero value; errors of this kind carry no taxonomy entry
	KindUnknown Kind = iota
	// KindReassignment marks a second registration under an already-bound name
	KindReassignment
	// KindModuleNotFound marks dotted-path module resolution that exhausted all strategies
	KindModuleNotFound
	// KindPortNotFound marks dotted-path or legacy port resolution that exhausted all strategies
	KindPortNotFound
	// KindStructuralIntegrity marks an unregistered module-typed sub-network found at clean scope close
	KindStructuralIntegrity
	// KindInvalidDimension marks a non-positive dimension requested from a vocabulary map
	KindInvalidDimension
	// KindValidation marks a constrained field write that violated its constraint
	KindValidation
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindReassignment:
		return "reassignment"
	case KindModuleNotFound:
		return "module-not-found"
	case KindPortNotFound:
		return "port-not-found"
	case KindStructuralIntegrity:
		return "structural-integrity"
	case KindInvalidDimension:
		return "invalid-dimension"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Standard error variables for the domain taxonomy. Domain errors created
// through the constructors below match these via errors.Is.
var (
	// ErrReassignment indicates a name already bound to a registered module
	// was assigned a new module value
	ErrReassignment = errors.New("module name already bound")
	// ErrModuleNotFound indicates dotted-path module resolution failed
	ErrModuleNotFound = errors.New("module not found")
	// ErrPortNotFound indicates dotted-path or legacy port resolution failed
	ErrPortNotFound = errors.New("port not found")
	// ErrStructuralIntegrity indicates a nested module-typed sub-network was
	// never registered under a name
	ErrStructuralIntegrity = errors.New("unregistered nested module")
	// ErrInvalidDimension indicates a non-positive vocabulary dimension
	ErrInvalidDimension = errors.New("invalid vocabulary dimension")
	// ErrValidation indicates a constrained field write violated its constraint
	ErrValidation = errors.New("field validation failed")
)

// sentinel returns the standard error variable for a kind
func sentinel(k Kind) error {
	switch k {
	case KindReassignment:
		return ErrReassignment
	case KindModuleNotFound:
		return ErrModuleNotFound
	case KindPortNotFound:
		return ErrPortNotFound
	case KindStructuralIntegrity:
		return ErrStructuralIntegrity
	case KindInvalidDimension:
		return ErrInvalidDimension
	case KindValidation:
		return ErrValidation
	default:
		return nil
	}
}

// Error is a domain error carrying its classification and the context of
// the failing operation. Path holds the originally requested path or name
// for diagnostics.
type Error struct {
	Kind      Kind
	Err       error
	Message   string
	Component string
	Operation string
	Path      string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the standard error variable for this
// error's kind, so callers can match against the taxonomy with errors.Is
// without depending on the concrete Error type.
func (e *Error) Is(target error) bool {
	return target == sentinel(e.Kind)
}

// KindOf returns the classification of err, or KindUnknown for errors
// outside the domain taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// newDomain creates a new domain error.
// This is an internal helper - use the kind-specific constructors instead.
func newDomain(kind Kind, component, operation, path, message string) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Component: component,
		Operation: operation,
		Path:      path,
	}
}

// Reassignment creates a reassignment error for a name already bound on
// the given module.
func Reassignment(component, name string) error {
	return newDomain(KindReassignment, component, "Register", name,
		fmt.Sprintf("%s.Register: cannot re-bind name %q: module names can only be assigned once", component, name))
}

// ModuleNotFound creates a module resolution error carrying the requested path
func ModuleNotFound(component, operation, path string) error {
	return newDomain(KindModuleNotFound, component, operation, path,
		fmt.Sprintf("%s.%s: could not find module %q", component, operation, path))
}

// PortNotFound creates a port resolution error carrying the requested path
func PortNotFound(component, operation, path string) error {
	return newDomain(KindPortNotFound, component, operation, path,
		fmt.Sprintf("%s.%s: could not find port %q", component, operation, path))
}

// Structural creates a structural integrity error naming the offending
// sub-network.
func Structural(component, offender string) error {
	return newDomain(KindStructuralIntegrity, component, "Build", offender,
		fmt.Sprintf("%s.Build: nested module %q must be registered under a name before the scope closes", component, offender))
}

// InvalidDimension creates an invalid dimension error
func InvalidDimension(component, operation string, dimensions int) error {
	return newDomain(KindInvalidDimension, component, operation, "",
		fmt.Sprintf("%s.%s: dimensions must be a positive integer, got %d", component, operation, dimensions))
}

// Validation creates a field validation error naming the field and the
// violated constraint. The cause chain stays attached so callers can
// inspect the originating check unless a simplified Policy strips it.
func Validation(cause error, component, field, constraint string) error {
	e := newDomain(KindValidation, component, "SetParam", field,
		fmt.Sprintf("%s: field %q violates constraint: %s", component, field, constraint))
	e.Err = cause
	return e
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// Policy controls user-visible error formatting at the registration and
// validation boundary. When Simplified is set, validation errors are
// re-reported without their originating low-level cause chain: the
// user-visible error still identifies the field and the violated
// constraint, but not the internal validation call stack.
type Policy struct {
	Simplified bool
}

// Apply formats err according to the policy. Non-validation errors and
// nil pass through unchanged.
func (p Policy) Apply(err error) error {
	if err == nil || !p.Simplified {
		return err
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindValidation {
		return err
	}
	stripped := *e
	stripped.Err = nil
	return &stripped
}
