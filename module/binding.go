package module

import (
	"github.com/c360/modkit/vocabulary"
)

// Binding is the vocabulary binding of a port: either a raw positive
// integer dimension or a resolved vocabulary handle. Resolution converts
// raw to resolved exactly once; a resolved binding never reverts.
type Binding struct {
	dimensions int
	vocab      *vocabulary.Vocab
}

// Raw declares a binding by dimensionality, to be resolved into a shared
// handle at registration time.
func Raw(dimensions int) Binding {
	return Binding{dimensions: dimensions}
}

// Resolved declares a binding with an explicit vocabulary handle
func Resolved(v *vocabulary.Vocab) Binding {
	return Binding{vocab: v}
}

// IsResolved reports whether the binding holds a vocabulary handle
func (b Binding) IsResolved() bool {
	return b.vocab != nil
}

// Dimensions returns the dimensionality of the binding, raw or resolved
func (b Binding) Dimensions() int {
	if b.vocab != nil {
		return b.vocab.Dimensions()
	}
	return b.dimensions
}

// Vocab returns the resolved handle, or nil while the binding is raw
func (b Binding) Vocab() *vocabulary.Vocab {
	return b.vocab
}

// resolve upgrades a raw binding through the given map. Resolving an
// already-resolved binding is a no-op.
func (b Binding) resolve(vocabs *vocabulary.Map) (Binding, error) {
	if b.vocab != nil {
		return b, nil
	}
	v, err := vocabs.GetOrCreate(b.dimensions)
	if err != nil {
		return b, err
	}
	return Binding{vocab: v}, nil
}
