package module

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/modkit/errors"
)

func TestBuild_CleanCloseValidates(t *testing.T) {
	t.Run("all nested modules registered", func(t *testing.T) {
		root := New("root")
		err := root.Build(func(m *Module) error {
			return m.Register("child", New(""))
		})
		assert.NoError(t, err)
	})

	t.Run("unregistered nested module fails", func(t *testing.T) {
		root := New("root")
		err := root.Build(func(m *Module) error {
			orphan := New("orphan")
			m.Attach(orphan)
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrStructuralIntegrity)
		assert.Contains(t, err.Error(), "orphan", "the error names the offending sub-network")
	})

	t.Run("unlabeled orphan still named", func(t *testing.T) {
		root := New("root")
		err := root.Build(func(m *Module) error {
			m.Attach(New(""))
			return nil
		})
		require.ErrorIs(t, err, errors.ErrStructuralIntegrity)
		assert.Contains(t, err.Error(), "<unnamed module>")
	})

	t.Run("non-module sub-networks ignored", func(t *testing.T) {
		root := New("root")
		err := root.Build(func(m *Module) error {
			m.Attach("plain-network")
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestBuild_InFlightErrorPropagatesUnchanged(t *testing.T) {
	boom := stderrors.New("construction failed")

	root := New("root")
	err := root.Build(func(m *Module) error {
		m.Attach(New("never-registered"))
		return boom
	})

	require.Error(t, err)
	assert.Same(t, boom, err, "the original error propagates unchanged")
	assert.NotErrorIs(t, err, errors.ErrStructuralIntegrity,
		"the validator never masks an in-flight failure")
}

func TestAttach_IdentityDeduplicated(t *testing.T) {
	root := New("root")
	child := New("child")

	root.Attach(child)
	root.Attach(child)
	require.NoError(t, root.Register("child", child))

	assert.Len(t, root.Networks(), 1)
}

func TestBuild_RegisteredUnderAnyNamePasses(t *testing.T) {
	// validation checks identity, not the name it was registered under
	root := New("root")
	err := root.Build(func(m *Module) error {
		sub := New("original-label")
		m.Attach(sub)
		return m.Register("some_other_name", sub)
	})
	assert.NoError(t, err)
}
