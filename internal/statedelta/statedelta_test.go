package statedelta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umbra-zone/umbra/internal/statedelta"
)

func TestDeltaShadowsParent(t *testing.T) {
	parent := statedelta.NewMemStore()
	parent.Set([]byte("a"), []byte("1"))

	delta := statedelta.New(parent)
	require.Equal(t, []byte("1"), delta.Get([]byte("a")))

	delta.Set([]byte("a"), []byte("2"))
	delta.Set([]byte("b"), []byte("3"))

	require.Equal(t, []byte("2"), delta.Get([]byte("a")))
	require.Equal(t, []byte("3"), delta.Get([]byte("b")))

	// parent is untouched until commit
	require.Equal(t, []byte("1"), parent.Get([]byte("a")))
	require.False(t, parent.Has([]byte("b")))
}

func TestDeltaCommit(t *testing.T) {
	parent := statedelta.NewMemStore()
	parent.Set([]byte("a"), []byte("1"))
	parent.Set([]byte("b"), []byte("2"))

	delta := statedelta.New(parent)
	delta.Set([]byte("a"), []byte("10"))
	delta.Delete([]byte("b"))
	delta.Set([]byte("c"), []byte("3"))
	delta.Commit()

	require.Equal(t, []byte("10"), parent.Get([]byte("a")))
	require.False(t, parent.Has([]byte("b")))
	require.Equal(t, []byte("3"), parent.Get([]byte("c")))

	// committed delta is reusable and empty
	delta.Set([]byte("d"), []byte("4"))
	require.False(t, parent.Has([]byte("d")))
}

func TestDeltaDiscard(t *testing.T) {
	parent := statedelta.NewMemStore()
	parent.Set([]byte("a"), []byte("1"))

	delta := statedelta.New(parent)
	delta.Set([]byte("a"), []byte("10"))
	delta.Delete([]byte("a"))
	delta.Set([]byte("b"), []byte("2"))
	delta.Discard()

	require.Equal(t, []byte("1"), parent.Get([]byte("a")))
	require.False(t, parent.Has([]byte("b")))

	// a discarded delta no longer shadows the parent
	require.Equal(t, []byte("1"), delta.Get([]byte("a")))
}

func TestDeltaDeleteShadowsParent(t *testing.T) {
	parent := statedelta.NewMemStore()
	parent.Set([]byte("a"), []byte("1"))

	delta := statedelta.New(parent)
	delta.Delete([]byte("a"))

	require.False(t, delta.Has([]byte("a")))
	require.Nil(t, delta.Get([]byte("a")))
	require.True(t, parent.Has([]byte("a")))
}

func TestDeltaNesting(t *testing.T) {
	parent := statedelta.NewMemStore()
	parent.Set([]byte("a"), []byte("1"))

	outer := statedelta.New(parent)
	outer.Set([]byte("b"), []byte("2"))

	inner := statedelta.New(outer)
	inner.Set([]byte("c"), []byte("3"))

	require.Equal(t, []byte("1"), inner.Get([]byte("a")))
	require.Equal(t, []byte("2"), inner.Get([]byte("b")))

	inner.Commit()
	require.Equal(t, []byte("3"), outer.Get([]byte("c")))
	require.False(t, parent.Has([]byte("c")))

	outer.Commit()
	require.Equal(t, []byte("2"), parent.Get([]byte("b")))
	require.Equal(t, []byte("3"), parent.Get([]byte("c")))
}
