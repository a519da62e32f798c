package vocabulary

import (
	stderrors "errors"
	"math/rand"
	"sync"

	"github.com/c360/modkit/errors"
)

// Map is a registry from positive integer dimension to vocabulary handle.
// A Map may be shared across modules (an ancestor's map reused by
// descendants, or an externally supplied map passed at root construction);
// its lifetime is that of the longest-lived holder.
type Map struct {
	mu    sync.RWMutex
	byDim map[int]*Vocab
	rng   *rand.Rand
}

// Option is a functional option for configuring a Map.
type Option func(*Map)

// WithRand sets a deterministic random source used when auto-creating
// handles. Maps seeded with the same source produce identical handle IDs
// in the same creation order.
func WithRand(rng *rand.Rand) Option {
	return func(m *Map) {
		m.rng = rng
	}
}

// NewMap creates an empty vocabulary map
func NewMap(opts ...Option) *Map {
	m := &Map{
		byDim: make(map[int]*Vocab),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetOrCreate returns the handle for the given dimensionality, creating
// and caching one on first request. Repeated calls with the same
// dimension return the identical handle. A handle pre-inserted with Set
// is respected and never overwritten.
func (m *Map) GetOrCreate(dimensions int) (*Vocab, error) {
	if dimensions < 1 {
		return nil, errors.InvalidDimension("Map", "GetOrCreate", dimensions)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, exists := m.byDim[dimensions]; exists {
		return v, nil
	}
	v := newVocab(dimensions, m.rng)
	m.byDim[dimensions] = v
	return v, nil
}

// Set pre-inserts a handle for a dimension. Later GetOrCreate calls for
// that dimension return this handle instead of auto-creating one.
func (m *Map) Set(dimensions int, v *Vocab) error {
	if dimensions < 1 {
		return errors.InvalidDimension("Map", "Set", dimensions)
	}
	if v == nil {
		return errors.Wrap(stderrors.New("vocabulary handle must not be nil"), "Map", "Set", "handle validation")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.byDim[dimensions] = v
	return nil
}

// Lookup returns the handle registered for a dimension, without creating one
func (m *Map) Lookup(dimensions int) (*Vocab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, exists := m.byDim[dimensions]
	return v, exists
}

// Len returns the number of registered dimensions
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.byDim)
}
