// Package module provides the hierarchical module-composition and
// named-port resolution core of modkit.
//
// # Overview
//
// A Module is a named composable entity owning a registry of child
// modules plus named input and output ports. Each port carries an object
// reference and a vocabulary binding: either a raw positive integer
// dimension declared at construction, or a resolved vocabulary handle.
//
// Building proceeds by registering named submodules into a parent.
// Register enforces single assignment per name, auto-labels the child,
// and lazily upgrades every raw-dimension port through the parent's
// vocabulary map, so sibling modules declaring the same dimension end up
// sharing one handle. After registration the child's on-add hook runs,
// observing a fully resolved module.
//
// # Addressing
//
// Once built, nested modules and ports are addressed with dotted paths:
//
//	port, err := root.GetModuleOutput("vision.v1")
//
// A bare module name addresses its port literally named "default". The
// deprecated underscore-joined form ("vision_v1") still resolves but
// emits a structured deprecation diagnostic with a stable code.
//
// # Validation
//
// Build runs a construction body and, when it returns cleanly, verifies
// that every structurally nested module-typed sub-network was registered
// under a name. A construction error propagates unchanged and skips the
// check entirely.
package module
