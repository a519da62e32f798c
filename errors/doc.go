// Package errors provides standardized error handling patterns for the
// modkit composition core.
//
// # Overview
//
// The errors package implements the domain error taxonomy for module
// composition: Reassignment, ModuleNotFound, PortNotFound,
// StructuralIntegrity, InvalidDimension, and Validation. Every domain
// error carries the component and operation that raised it plus the
// originally requested path or name, so resolution failures stay
// diagnosable without string matching.
//
// The taxonomy integrates with Go's standard error handling patterns,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Match against the standard error variables:
//
//	if _, err := root.GetModuleInput("vision.default"); errors.Is(err, errors.ErrPortNotFound) {
//	    // the path matched no port, no child, and no legacy form
//	}
//
// Wrap lower-level errors with component context:
//
//	if err := vocabs.Set(d, v); err != nil {
//	    return errors.Wrap(err, "Module", "Register", "vocabulary pre-insertion")
//	}
//
// # Simplified Reporting
//
// A Policy controls how validation errors surface at the registration
// boundary. With Simplified set, a constrained field write that fails
// validation is re-reported without its originating cause chain: the
// caller still sees the field and the violated constraint, but not the
// internal validation call stack. All other error kinds pass through a
// simplified Policy unchanged.
package errors
