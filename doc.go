// Package modkit provides a hierarchical module-composition and
// named-port resolution core for declaratively building trees of
// interacting components.
//
// # Architecture
//
// modkit is a build-time composition and addressing layer. It performs
// no numeric computation, simulates nothing, and persists nothing: its
// output is a finished, validated module tree for consumption elsewhere.
//
//	┌─────────────────────────────────────┐
//	│          module.Module              │  registration, dotted-path
//	│  (children, input/output ports)     │  resolution, validation
//	└─────────────────────────────────────┘
//	           ↓ binds ports via
//	┌─────────────────────────────────────┐
//	│         vocabulary.Map              │  dimension → shared
//	│   (get-or-create handle registry)   │  vocabulary handle
//	└─────────────────────────────────────┘
//	           ↓ reports through
//	┌─────────────────────────────────────┐
//	│     errors / config / metric        │  taxonomy, policy,
//	│                                     │  settings, instrumentation
//	└─────────────────────────────────────┘
//
// # Building
//
// Construction proceeds by registering named submodules into a parent.
// Each name binds exactly once; registration resolves raw-dimension
// port declarations into shared vocabulary handles through the parent's
// map, so sibling modules declaring the same dimensionality interoperate
// on one vocabulary.
//
//	root := module.New("model")
//	err := root.Build(func(m *module.Module) error {
//	    vision := module.New("")
//	    vision.DeclareOutput("default", v1Node, module.Raw(16))
//	    return m.Register("vision", vision)
//	})
//
// Build validates at clean scope close that every structurally nested
// module was registered; a construction error propagates unchanged.
//
// # Addressing
//
// Nested ports resolve through dotted paths ("vision.v1"). A bare module
// name addresses its "default" port. The deprecated underscore-joined
// form still resolves and emits a structured deprecation diagnostic.
package modkit
