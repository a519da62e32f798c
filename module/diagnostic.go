package module

import (
	"fmt"
)

// CodeUnderscoreNotation is the stable diagnostic code emitted when a
// deprecated underscore-joined lookup resolves successfully.
const CodeUnderscoreNotation = "underscore-notation"

// Diagnostic is a structured, non-fatal diagnostic event. Diagnostics
// are distinct from the error taxonomy: they accompany a successful
// result and never fail the operation that emitted them.
type Diagnostic struct {
	Code    string
	Module  string
	Path    string
	Message string
}

// DiagnosticHandler receives diagnostic events. Handlers must not assume
// any delivery beyond the emitting call's lifetime.
type DiagnosticHandler func(Diagnostic)

// warnDeprecatedUnderscore emits the deprecation diagnostic for a
// successful legacy lookup.
func (m *Module) warnDeprecatedUnderscore(path string) {
	m.emit(Diagnostic{
		Code:   CodeUnderscoreNotation,
		Module: m.describe(),
		Path:   path,
		Message: fmt.Sprintf(
			"underscore notation for inputs and outputs is deprecated, use dot notation %q instead",
			dotFormOf(path)),
	})
}

// emit delivers a diagnostic to the installed handler, falling back to
// the module's logger.
func (m *Module) emit(d Diagnostic) {
	if m.metrics != nil && d.Code == CodeUnderscoreNotation {
		m.metrics.DeprecatedLookupsTotal.WithLabelValues(m.describe()).Inc()
	}
	if m.diag != nil {
		m.diag(d)
		return
	}
	if m.logger != nil {
		m.logger.Warn(d.Message, "code", d.Code, "module", d.Module, "path", d.Path)
	}
}

// dotFormOf renders the dot-form suggestion for a legacy name
func dotFormOf(path string) string {
	moduleName, portName, ok := splitLegacy(path)
	if !ok {
		return path
	}
	return moduleName + "." + portName
}
