package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/modkit/errors"
	"github.com/c360/modkit/vocabulary"
)

func TestBinding_Raw(t *testing.T) {
	b := Raw(16)

	assert.False(t, b.IsResolved())
	assert.Equal(t, 16, b.Dimensions())
	assert.Nil(t, b.Vocab())
}

func TestBinding_Resolve(t *testing.T) {
	vocabs := vocabulary.NewMap()

	resolved, err := Raw(16).resolve(vocabs)
	require.NoError(t, err)
	require.True(t, resolved.IsResolved())
	assert.Equal(t, 16, resolved.Dimensions())

	shared, _ := vocabs.Lookup(16)
	assert.Same(t, shared, resolved.Vocab())
}

func TestBinding_ResolveIdempotent(t *testing.T) {
	vocabs := vocabulary.NewMap()
	v, err := vocabs.GetOrCreate(8)
	require.NoError(t, err)

	b := Resolved(v)
	// resolving against a different map must be a no-op
	again, err := b.resolve(vocabulary.NewMap())
	require.NoError(t, err)
	assert.Same(t, v, again.Vocab())
}

func TestBinding_ResolveInvalidDimension(t *testing.T) {
	_, err := Raw(-1).resolve(vocabulary.NewMap())
	assert.ErrorIs(t, err, errors.ErrInvalidDimension)
}
