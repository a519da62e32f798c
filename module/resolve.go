package module

import (
	"github.com/c360/modkit/errors"
	"github.com/c360/modkit/vocabulary"
)

// GetModule resolves a dotted path to a nested module. With stripOutput
// set, a leaf segment matching one of the current module's own port
// names resolves to the current module itself, so a module can be
// addressed by one of its ports.
func (m *Module) GetModule(path string, stripOutput bool) (*Module, error) {
	sub, err := m.getModule(path, stripOutput)
	if m.metrics != nil {
		m.metrics.ObserveResolution("GetModule", err)
	}
	return sub, err
}

func (m *Module) getModule(path string, stripOutput bool) (*Module, error) {
	head, rest, nested := splitHead(path)
	if nested {
		child, ok := m.children.get(head)
		if !ok {
			return nil, errors.ModuleNotFound(componentName, "GetModule", path)
		}
		return child.getModule(rest, stripOutput)
	}

	if child, ok := m.children.get(path); ok {
		return child, nil
	}
	if stripOutput {
		if _, ok := m.inputs.get(path); ok {
			return m, nil
		}
		if _, ok := m.outputs.get(path); ok {
			return m, nil
		}
	}
	return nil, errors.ModuleNotFound(componentName, "GetModule", path)
}

// GetModuleInput resolves a dotted path to an input port. The path is
// either "<module>.<port>" (recursing per segment), a port of this
// module, or a bare module name addressing that module's "default"
// input. The deprecated underscore-joined legacy form still resolves,
// emitting a deprecation diagnostic alongside the successful result.
func (m *Module) GetModuleInput(path string) (Port, error) {
	p, err := m.getPort(directionInput, "GetModuleInput", path)
	if m.metrics != nil {
		m.metrics.ObserveResolution("GetModuleInput", err)
	}
	return p, err
}

// GetModuleOutput resolves a dotted path to an output port, with the
// same strategy order as GetModuleInput.
func (m *Module) GetModuleOutput(path string) (Port, error) {
	p, err := m.getPort(directionOutput, "GetModuleOutput", path)
	if m.metrics != nil {
		m.metrics.ObserveResolution("GetModuleOutput", err)
	}
	return p, err
}

// getPort implements the shared resolution strategy for both directions.
// Strategy order: dotted recursion, own port, bare child name via the
// "default" port, then the deprecated last-underscore split. Lookup
// misses surface as port-not-found errors carrying the requested path.
func (m *Module) getPort(d portDirection, op, path string) (Port, error) {
	head, rest, nested := splitHead(path)
	if nested {
		child, ok := m.children.get(head)
		if !ok {
			return Port{}, errors.PortNotFound(componentName, op, path)
		}
		return child.getPort(d, op, rest)
	}

	if p, ok := m.portsFor(d).get(path); ok {
		return p, nil
	}
	if child, ok := m.children.get(path); ok {
		return child.getPort(d, op, DefaultPortName)
	}
	if moduleName, portName, ok := splitLegacy(path); ok {
		child, found := m.children.get(moduleName)
		if !found {
			return Port{}, errors.PortNotFound(componentName, op, path)
		}
		p, err := child.getPort(d, op, portName)
		if err != nil {
			return Port{}, err
		}
		m.warnDeprecatedUnderscore(path)
		return p, nil
	}
	return Port{}, errors.PortNotFound(componentName, op, path)
}

// GetInputVocab resolves a dotted path to the vocabulary binding of an
// input port.
func (m *Module) GetInputVocab(path string) (*vocabulary.Vocab, error) {
	p, err := m.GetModuleInput(path)
	if err != nil {
		return nil, err
	}
	return p.Binding.Vocab(), nil
}

// GetOutputVocab resolves a dotted path to the vocabulary binding of an
// output port.
func (m *Module) GetOutputVocab(path string) (*vocabulary.Vocab, error) {
	p, err := m.GetModuleOutput(path)
	if err != nil {
		return nil, err
	}
	return p.Binding.Vocab(), nil
}
