// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Register("selfRegistered", func(t *T) {
		t.AssertTrue(true)
	})
}

func noop(*T) {}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry(0)
	for _, name := range []string{"test2", "test1", "test10"} {
		_, err := r.Add(name, noop)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, r.Len())
	if diff := cmp.Diff([]string{"test2", "test1", "test10"}, r.Names()); diff != "" {
		t.Errorf("registration order not kept (-want +got):\n%s", diff)
	}

	tests := r.Tests()
	require.Len(t, tests, 3)
	assert.Equal(t, "test1", tests[1].Name)

	// Tests returns a copy
	tests[0] = nil
	assert.NotNil(t, r.Tests()[0])
}

func TestRegistryFull(t *testing.T) {
	r := NewRegistry(2)
	_, err := r.Add("test1", noop)
	require.NoError(t, err)
	_, err = r.Add("test2", noop)
	require.NoError(t, err)

	_, err = r.Add("test3", noop)
	assert.ErrorIs(t, err, ErrRegistryFull)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryInvalid(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.Add("", noop)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = r.Add("test1", nil)
	assert.ErrorIs(t, err, ErrNilFunc)

	assert.Zero(t, r.Len())
}

func TestRegistryFind(t *testing.T) {
	r := NewRegistry(0)
	first, err := r.Add("dup", noop)
	require.NoError(t, err)
	_, err = r.Add("other", noop)
	require.NoError(t, err)
	_, err = r.Add("dup", noop)
	require.NoError(t, err)

	t.Run("FirstMatchWins", func(t *testing.T) {
		found, ok := r.Find("dup")
		require.True(t, ok)
		assert.Same(t, first, found)
		assert.Equal(t, 0, r.Index("dup"))
	})
	t.Run("Missing", func(t *testing.T) {
		_, ok := r.Find("missing")
		assert.False(t, ok)
		assert.Equal(t, -1, r.Index("missing"))
	})
}

func TestRegister(t *testing.T) {
	test, ok := Default.Find("selfRegistered")
	require.True(t, ok, "init did not register the test")
	assert.True(t, test.Run().Passed())
}

func TestRegisterPanics(t *testing.T) {
	n := Default.Len()
	assert.Panics(t, func() {
		Register("", noop)
	})
	assert.Equal(t, n, Default.Len())
}
