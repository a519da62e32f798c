package module

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/c360/modkit/config"
	"github.com/c360/modkit/errors"
	"github.com/c360/modkit/metric"
	"github.com/c360/modkit/vocabulary"
)

// componentName is the error-context component for this type, and
// typeName keys the ambient per-type defaults registry.
const (
	componentName = "Module"
	typeName      = "Module"
)

// Module is a named composable entity owning a child-module registry and
// named input/output ports bound to dimensionality-keyed vocabularies.
// A Module is constructed standalone and unregistered; it becomes
// registered when bound to a name in a parent, and validated when the
// parent's construction scope closes cleanly.
type Module struct {
	label string

	vocabs *vocabulary.Map
	seed   *int64

	children *childSet
	inputs   *portMap
	outputs  *portMap

	// structurally nested sub-networks, tracked in construction order
	// independent of naming
	networks []any

	onAdd      func(parent *Module)
	similarity vocabulary.SimilarityFunc

	defaults *config.Defaults
	policy   errors.Policy

	dimPerEnsemble int
	productNeurons int
	cconvNeurons   int
	synapse        float64

	logger  *slog.Logger
	diag    DiagnosticHandler
	metrics *metric.Metrics
}

// Option is a functional option for configuring a Module.
type Option func(*Module)

// WithVocabs shares an existing vocabulary map with the module instead of
// creating a fresh one. The map's lifetime is that of its longest-lived
// holder.
func WithVocabs(vocabs *vocabulary.Map) Option {
	return func(m *Module) {
		m.vocabs = vocabs
	}
}

// WithSeed seeds the module's own vocabulary map deterministically.
// Ignored when WithVocabs supplies a map.
func WithSeed(seed int64) Option {
	return func(m *Module) {
		m.seed = &seed
	}
}

// WithOnAdd sets the hook invoked after the module is registered in a
// parent and its ports are resolved. Use it to defer setup until the
// module knows its owning composition.
func WithOnAdd(hook func(parent *Module)) Option {
	return func(m *Module) {
		m.onAdd = hook
	}
}

// WithLogger sets the structured logger used for registration and
// diagnostic events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Module) {
		m.logger = logger
	}
}

// WithDiagnostics installs a handler for non-fatal diagnostic events,
// replacing the default log-based delivery.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(m *Module) {
		m.diag = handler
	}
}

// WithMetrics instruments the module's registration, resolution, and
// validation paths.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(m *Module) {
		m.metrics = metrics
	}
}

// WithPolicy sets the error-reporting policy applied to validated field
// writes.
func WithPolicy(policy errors.Policy) Option {
	return func(m *Module) {
		m.policy = policy
	}
}

// WithDefaults sets the per-type defaults registry consulted by Default
// sentinel writes and root vocabulary construction. Defaults to the
// ambient registry.
func WithDefaults(defaults *config.Defaults) Option {
	return func(m *Module) {
		m.defaults = defaults
	}
}

// WithSimilarity sets the external similarity helper that Similarity
// delegates to.
func WithSimilarity(fn vocabulary.SimilarityFunc) Option {
	return func(m *Module) {
		m.similarity = fn
	}
}

// New constructs a standalone, unregistered module. The label may be
// empty; registration then assigns the bound name as the label.
//
// Vocabulary map precedence: an explicitly shared map, else a map
// configured in the defaults registry, else a fresh map seeded when
// WithSeed was given.
func New(label string, opts ...Option) *Module {
	m := &Module{
		label:          label,
		children:       newChildSet(),
		inputs:         newPortMap(),
		outputs:        newPortMap(),
		defaults:       config.Ambient(),
		dimPerEnsemble: paramDimPerEnsemble.Default,
		productNeurons: paramProductNeurons.Default,
		cconvNeurons:   paramCconvNeurons.Default,
		synapse:        paramSynapse.Default,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.vocabs == nil {
		if v, ok := m.defaults.Get(typeName, "vocabs"); ok {
			if shared, ok := v.(*vocabulary.Map); ok {
				m.vocabs = shared
			}
		}
	}
	if m.vocabs == nil {
		if m.seed != nil {
			rng := rand.New(rand.NewSource(*m.seed))
			m.vocabs = vocabulary.NewMap(vocabulary.WithRand(rng))
		} else {
			m.vocabs = vocabulary.NewMap()
		}
	}
	return m
}

// Label returns the module's assigned name, empty until registration
// when none was given at construction.
func (m *Module) Label() string {
	return m.label
}

// Vocabs returns the module's vocabulary map
func (m *Module) Vocabs() *vocabulary.Map {
	return m.vocabs
}

// Child returns the registered child module bound to name
func (m *Module) Child(name string) (*Module, bool) {
	return m.children.get(name)
}

// ChildNames returns the registered child names in registration order
func (m *Module) ChildNames() []string {
	names := make([]string, len(m.children.names))
	copy(names, m.children.names)
	return names
}

// DeclareInput declares a named input port carrying an object reference
// and a vocabulary binding.
func (m *Module) DeclareInput(name string, obj any, b Binding) {
	m.inputs.set(name, Port{Object: obj, Binding: b})
}

// DeclareOutput declares a named output port
func (m *Module) DeclareOutput(name string, obj any, b Binding) {
	m.outputs.set(name, Port{Object: obj, Binding: b})
}

// Input returns the declared input port with the given name
func (m *Module) Input(name string) (Port, bool) {
	return m.inputs.get(name)
}

// Output returns the declared output port with the given name
func (m *Module) Output(name string) (Port, bool) {
	return m.outputs.get(name)
}

// Attach records sub as structurally nested under this module,
// independent of naming. Register attaches implicitly; Attach exists for
// sub-networks constructed in scope that are not (yet) bound to a name.
func (m *Module) Attach(sub any) {
	for _, existing := range m.networks {
		if existing == sub {
			return
		}
	}
	m.networks = append(m.networks, sub)
}

// Networks returns the structurally nested sub-networks in construction
// order.
func (m *Module) Networks() []any {
	nets := make([]any, len(m.networks))
	copy(nets, m.networks)
	return nets
}

// Similarity compares probed data rows against a vocabulary using the
// configured external helper. When v is nil, the vocabulary is inferred
// by looking up the data's row width in the module's own map.
func (m *Module) Similarity(rows [][]float64, v *vocabulary.Vocab) ([]float64, error) {
	if m.similarity == nil {
		return nil, errors.Wrap(stderrors.New("no similarity helper configured"),
			componentName, "Similarity", "helper lookup")
	}
	if v == nil {
		if len(rows) == 0 {
			return nil, errors.Wrap(stderrors.New("cannot infer vocabulary from empty data"),
				componentName, "Similarity", "vocabulary inference")
		}
		width := len(rows[0])
		inferred, ok := m.vocabs.Lookup(width)
		if !ok {
			return nil, errors.Wrap(fmt.Errorf("no vocabulary registered for width %d", width),
				componentName, "Similarity", "vocabulary inference")
		}
		v = inferred
	}
	return m.similarity(rows, v)
}

// portsFor selects the port map for a direction
func (m *Module) portsFor(d portDirection) *portMap {
	if d == directionInput {
		return m.inputs
	}
	return m.outputs
}

// describe names the module in diagnostics and errors
func (m *Module) describe() string {
	if m.label != "" {
		return m.label
	}
	return "<unnamed module>"
}
