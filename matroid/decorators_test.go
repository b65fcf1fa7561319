package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plammens/matroids-main/matroid"
)

// TestCounting_Accounting verifies counting, Reset, and nil validation.
func TestCounting_Accounting(t *testing.T) {
	u, err := matroid.NewUniform(1)
	require.NoError(t, err)

	c, err := matroid.NewCounting(u)
	require.NoError(t, err)
	assert.Zero(t, c.Calls())

	c.IsIndependent(elems(1))
	c.IsIndependent(elems(1, 2))
	assert.Equal(t, uint64(2), c.Calls())

	c.Reset()
	assert.Zero(t, c.Calls())

	_, err = matroid.NewCounting(nil)
	assert.ErrorIs(t, err, matroid.ErrNilOracle)
}

// TestCached_HitsSkipInnerOracle verifies that repeated queries, in any
// element order, are answered from the cache.
func TestCached_HitsSkipInnerOracle(t *testing.T) {
	u, err := matroid.NewUniform(2)
	require.NoError(t, err)
	counting, err := matroid.NewCounting(u)
	require.NoError(t, err)
	cached, err := matroid.NewCached(counting, 128)
	require.NoError(t, err)

	assert.True(t, cached.IsIndependent(elems(3, 5)))
	assert.True(t, cached.IsIndependent(elems(3, 5)), "verbatim repeat")
	assert.True(t, cached.IsIndependent(elems(5, 3)), "same subset, different order")
	assert.Equal(t, uint64(1), counting.Calls(), "only the first query reaches the inner oracle")
	assert.Equal(t, 1, cached.Len())

	assert.False(t, cached.IsIndependent(elems(1, 2, 3)))
	assert.Equal(t, uint64(2), counting.Calls())
}

// TestCached_Validation verifies constructor argument checks.
func TestCached_Validation(t *testing.T) {
	u, err := matroid.NewUniform(1)
	require.NoError(t, err)

	_, err = matroid.NewCached(nil, 10)
	assert.ErrorIs(t, err, matroid.ErrNilOracle)
	_, err = matroid.NewCached(u, 0)
	assert.ErrorIs(t, err, matroid.ErrBadCacheSize)
}

// TestCached_AgreesWithInner cross-checks cached answers against the inner
// oracle over a spread of graphic-matroid subsets.
func TestCached_AgreesWithInner(t *testing.T) {
	g := matroid.NewGraphic()
	require.NoError(t, g.AddEdge(1, "A", "B"))
	require.NoError(t, g.AddEdge(2, "B", "C"))
	require.NoError(t, g.AddEdge(3, "C", "A"))
	require.NoError(t, g.AddEdge(4, "C", "D"))

	cached, err := matroid.NewCached(g, 16)
	require.NoError(t, err)

	subsets := [][]matroid.Element{
		elems(1), elems(1, 2), elems(1, 2, 3), elems(1, 2, 4),
		elems(3, 4), elems(1, 2, 3, 4), elems(2, 1), elems(1, 2),
	}
	for _, s := range subsets {
		assert.Equal(t, g.IsIndependent(s), cached.IsIndependent(s), "subset %v", s)
	}
}
