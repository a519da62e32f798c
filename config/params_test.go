package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/modkit/errors"
)

func TestIntParam_Validate(t *testing.T) {
	p := IntParam{Name: "dim_per_ensemble", Default: 16, Low: 1}

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"at minimum", 1, false},
		{"above minimum", 128, false},
		{"below minimum", 0, true},
		{"negative", -4, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := p.Validate("Module", test.value)
			if test.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrValidation)
				assert.Contains(t, err.Error(), "dim_per_ensemble")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNumberParam_Validate(t *testing.T) {
	p := NumberParam{Name: "synapse", Default: 0.01, Low: 0}

	require.NoError(t, p.Validate("Module", 0))
	require.NoError(t, p.Validate("Module", 0.05))

	err := p.Validate("Module", -0.01)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)
	assert.Contains(t, err.Error(), "synapse")
}

func TestDefaults(t *testing.T) {
	d := NewDefaults()

	_, found := d.Get("Module", "vocabs")
	assert.False(t, found)

	d.Set("Module", "dim_per_ensemble", 32)
	v, found := d.Get("Module", "dim_per_ensemble")
	require.True(t, found)
	assert.Equal(t, 32, v)

	d.Clear()
	_, found = d.Get("Module", "dim_per_ensemble")
	assert.False(t, found)
}

func TestDefaultSentinel(t *testing.T) {
	assert.True(t, IsDefault(Default))
	assert.False(t, IsDefault(nil))
	assert.False(t, IsDefault(16))
}
