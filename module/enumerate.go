package module

import (
	"iter"
)

// GetModuleInputs enumerates the addressable input names of direct
// children: the bare child name for a port named "default", otherwise
// the legacy "<child>_<port>" concatenation. The sequence is lazy,
// finite, and restartable, and follows registration then declaration
// order. Enumeration never emits dot-form names.
func (m *Module) GetModuleInputs() iter.Seq[string] {
	return m.enumerate(directionInput)
}

// GetModuleOutputs enumerates the addressable output names of direct
// children, with the same naming scheme as GetModuleInputs.
func (m *Module) GetModuleOutputs() iter.Seq[string] {
	return m.enumerate(directionOutput)
}

func (m *Module) enumerate(d portDirection) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range m.children.names {
			child := m.children.byName[name]
			for _, portName := range child.portsFor(d).names {
				label := name
				if portName != DefaultPortName {
					label = name + "_" + portName
				}
				if !yield(label) {
					return
				}
			}
		}
	}
}
