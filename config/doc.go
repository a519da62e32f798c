// Package config provides ambient configuration for the modkit
// composition core: runtime settings, per-type configured defaults, and
// validated parameter types used by the generic field-assignment path.
//
// # Settings
//
// Settings hold process-wide toggles, loaded from YAML and overridable
// from the environment. The only setting today is simplified error
// reporting, which is converted into an errors.Policy and injected into
// modules rather than consulted as a global switch.
//
// # Defaults
//
// Defaults is a per-type registry of configured default values. When a
// field write receives the Default sentinel, the effective value is
// resolved from this registry before validation and assignment.
//
// # Parameters
//
// IntParam and NumberParam describe constrained fields. Validate returns
// a Validation-kind domain error naming the field and the violated
// constraint, which the write path reports through the injected policy.
package config
