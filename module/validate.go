package module

import (
	"github.com/c360/modkit/errors"
)

// Build runs a construction body against this module and validates the
// structure when the body returns cleanly: every structurally nested
// module-typed sub-network must have been registered under a name.
//
// A construction error propagates unchanged; the structural check is
// skipped entirely in that case and never masks the original failure.
func (m *Module) Build(fn func(*Module) error) error {
	if err := fn(m); err != nil {
		return err
	}
	return m.validateStructure()
}

// validateStructure checks registration by identity, not name: a nested
// module registered under any name passes.
func (m *Module) validateStructure() error {
	registered := make(map[*Module]struct{}, m.children.len())
	for _, name := range m.children.names {
		registered[m.children.byName[name]] = struct{}{}
	}

	for _, net := range m.networks {
		sub, ok := net.(*Module)
		if !ok {
			continue
		}
		if _, ok := registered[sub]; !ok {
			if m.metrics != nil {
				m.metrics.StructuralFailuresTotal.Inc()
			}
			return errors.Structural(componentName, sub.describe())
		}
	}
	return nil
}
