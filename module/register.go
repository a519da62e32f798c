package module

import (
	stderrors "errors"
	"fmt"

	"github.com/c360/modkit/config"
	"github.com/c360/modkit/errors"
)

// Register binds child to name within this module's construction scope.
// A name is bound exactly once: a second registration under the same
// name fails with a reassignment error regardless of the new value.
//
// Registration sets the child's label when unset, inserts it into the
// child registry, upgrades every raw-dimension port binding through the
// PARENT's vocabulary map (so sibling modules sharing a dimension share
// one handle), records the child as structurally nested, and finally
// invokes the child's on-add hook, which observes a fully resolved child.
func (m *Module) Register(name string, child *Module) error {
	if name == "" {
		return errors.Wrap(stderrors.New("name must not be empty"),
			componentName, "Register", "name validation")
	}
	if child == nil {
		return errors.Wrap(stderrors.New("child must not be nil"),
			componentName, "Register", "child validation")
	}
	if _, exists := m.children.get(name); exists {
		return errors.Reassignment(componentName, name)
	}

	if child.label == "" {
		child.label = name
	}
	m.children.set(name, child)

	if err := child.resolvePorts(m); err != nil {
		return errors.Wrap(err, componentName, "Register", "port resolution")
	}

	m.Attach(child)

	if m.metrics != nil {
		m.metrics.RegistrationsTotal.WithLabelValues(m.describe()).Inc()
	}
	if m.logger != nil {
		m.logger.Debug("registered submodule",
			"parent", m.describe(), "name", name)
	}

	if child.onAdd != nil {
		child.onAdd(m)
	}
	return nil
}

// resolvePorts upgrades every raw port binding through the parent's
// vocabulary map. Already-resolved bindings pass through untouched, so
// the upgrade happens exactly once.
func (m *Module) resolvePorts(parent *Module) error {
	for _, pm := range []*portMap{m.inputs, m.outputs} {
		for _, name := range pm.names {
			p := pm.ports[name]
			b, err := p.Binding.resolve(parent.vocabs)
			if err != nil {
				return err
			}
			p.Binding = b
			pm.ports[name] = p
		}
	}
	return nil
}

// Configurable parameter names accepted by SetParam
const (
	ParamDimPerEnsemble = "dim_per_ensemble"
	ParamProductNeurons = "product_neurons"
	ParamCconvNeurons   = "cconv_neurons"
	ParamSynapse        = "synapse"
)

var (
	paramDimPerEnsemble = config.IntParam{Name: ParamDimPerEnsemble, Default: 16, Low: 1}
	paramProductNeurons = config.IntParam{Name: ParamProductNeurons, Default: 100, Low: 1}
	paramCconvNeurons   = config.IntParam{Name: ParamCconvNeurons, Default: 200, Low: 1}
	paramSynapse        = config.NumberParam{Name: ParamSynapse, Default: 0.01, Low: 0}
)

// SetParam is the generic field-assignment path for non-module-typed
// fields: it resolves the Default sentinel from the per-type defaults
// registry, validates the value against the field's constraint, and
// reports failures through the module's error policy.
func (m *Module) SetParam(field string, value any) error {
	if config.IsDefault(value) {
		if v, ok := m.defaults.Get(typeName, field); ok {
			value = v
		} else {
			value = m.builtinDefault(field)
		}
	}

	var err error
	switch field {
	case ParamDimPerEnsemble:
		err = m.setIntParam(paramDimPerEnsemble, value, &m.dimPerEnsemble)
	case ParamProductNeurons:
		err = m.setIntParam(paramProductNeurons, value, &m.productNeurons)
	case ParamCconvNeurons:
		err = m.setIntParam(paramCconvNeurons, value, &m.cconvNeurons)
	case ParamSynapse:
		err = m.setNumberParam(paramSynapse, value, &m.synapse)
	default:
		err = errors.Validation(fmt.Errorf("unknown field %q", field),
			typeName, field, "must name a configurable parameter")
	}
	return m.policy.Apply(err)
}

func (m *Module) setIntParam(p config.IntParam, value any, target *int) error {
	v, ok := value.(int)
	if !ok {
		return errors.Validation(fmt.Errorf("got %T", value), typeName, p.Name, "must be an int")
	}
	if err := p.Validate(typeName, v); err != nil {
		return err
	}
	*target = v
	return nil
}

func (m *Module) setNumberParam(p config.NumberParam, value any, target *float64) error {
	var v float64
	switch n := value.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return errors.Validation(fmt.Errorf("got %T", value), typeName, p.Name, "must be a number")
	}
	if err := p.Validate(typeName, v); err != nil {
		return err
	}
	*target = v
	return nil
}

// builtinDefault returns the built-in default for a parameter when the
// ambient registry has no entry. Unknown fields fall through to the
// SetParam type switch, which rejects them.
func (m *Module) builtinDefault(field string) any {
	switch field {
	case ParamDimPerEnsemble:
		return paramDimPerEnsemble.Default
	case ParamProductNeurons:
		return paramProductNeurons.Default
	case ParamCconvNeurons:
		return paramCconvNeurons.Default
	case ParamSynapse:
		return paramSynapse.Default
	default:
		return nil
	}
}

// DimPerEnsemble returns the configured dimensions-per-ensemble parameter
func (m *Module) DimPerEnsemble() int { return m.dimPerEnsemble }

// ProductNeurons returns the configured product-neurons parameter
func (m *Module) ProductNeurons() int { return m.productNeurons }

// CconvNeurons returns the configured circular-convolution neurons parameter
func (m *Module) CconvNeurons() int { return m.cconvNeurons }

// Synapse returns the configured synapse time constant in seconds
func (m *Module) Synapse() float64 { return m.synapse }
