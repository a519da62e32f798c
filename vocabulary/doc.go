// Package vocabulary provides dimensionality-keyed vocabulary handles for
// the modkit composition core.
//
// # Overview
//
// A Vocab is an opaque, identity-comparable handle representing a fixed
// dimensionality symbolic vector space. Ports on sibling modules that
// declare the same raw dimension must end up sharing one handle, so the
// package centers on Map: a registry from positive integer dimension to
// Vocab with get-or-create semantics.
//
// GetOrCreate is idempotent: the first call for a dimension constructs a
// handle (using the map's seeded random source when one was supplied) and
// caches it; every later call returns the identical handle. A handle
// pre-inserted with Set takes precedence over auto-creation and is never
// overwritten by GetOrCreate.
//
// # Boundaries
//
// The vocabulary's internal algebra (similarity, binding operations) is
// out of scope here. SimilarityFunc is the boundary type for the external
// similarity helper that Module.Similarity delegates to.
package vocabulary
