// Package metric provides Prometheus instrumentation for the modkit
// composition core.
//
// Metrics cover the three phases of a module tree's life: registration
// (submodules bound to names), resolution (dotted-path and legacy
// lookups), and validation (structural checks at scope close). Modules
// carry a *Metrics optionally; a nil receiver path is never taken because
// instrumentation is guarded at the call sites.
package metric
