package vocabulary

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Vocab is an opaque handle for a fixed-dimensionality symbolic vector
// space. Handles are identity-comparable: two ports share a vocabulary
// exactly when they hold the same *Vocab.
type Vocab struct {
	id         uuid.UUID
	dimensions int
}

// newVocab constructs a handle for the given dimensionality. When rng is
// non-nil the handle identity is drawn from it, so maps seeded with the
// same source produce the same handle IDs in the same order.
func newVocab(dimensions int, rng *rand.Rand) *Vocab {
	var id uuid.UUID
	if rng != nil {
		// uuid.NewRandomFromReader only fails when the reader does,
		// and *rand.Rand.Read never fails
		id, _ = uuid.NewRandomFromReader(rng)
	} else {
		id = uuid.New()
	}
	return &Vocab{id: id, dimensions: dimensions}
}

// ID returns the unique identity of this handle
func (v *Vocab) ID() uuid.UUID {
	return v.id
}

// Dimensions returns the dimensionality of the vector space
func (v *Vocab) Dimensions() int {
	return v.dimensions
}

// String returns a short human-readable description of the handle
func (v *Vocab) String() string {
	return fmt.Sprintf("Vocab(%dD, %s)", v.dimensions, v.id)
}

// SimilarityFunc is the boundary type for the external similarity helper:
// it compares data rows against a vocabulary and returns one numeric
// result per row. The helper's algebra is outside this core.
type SimilarityFunc func(rows [][]float64, v *Vocab) ([]float64, error)
