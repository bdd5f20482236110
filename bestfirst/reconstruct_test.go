package bestfirst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bestfirst"
	"github.com/katalvlaran/mazepath/gridgraph"
)

func TestReconstruct(t *testing.T) {
	a, b, c := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 0}, gridgraph.Cell{X: 1, Y: 1}
	prev := map[gridgraph.Cell]gridgraph.Cell{
		a: gridgraph.NoCell,
		b: a,
		c: b,
	}

	path, err := bestfirst.Reconstruct(prev, c)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{a, b, c}, path)

	path, err = bestfirst.Reconstruct(prev, a)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{a}, path)
}

func TestReconstruct_Errors(t *testing.T) {
	a, b := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 0}

	t.Run("MissingGoal", func(t *testing.T) {
		_, err := bestfirst.Reconstruct(map[gridgraph.Cell]gridgraph.Cell{a: gridgraph.NoCell}, b)
		assert.ErrorIs(t, err, bestfirst.ErrReconstruction)
	})
	t.Run("NilMap", func(t *testing.T) {
		_, err := bestfirst.Reconstruct(nil, a)
		assert.ErrorIs(t, err, bestfirst.ErrReconstruction)
	})
	t.Run("BrokenChain", func(t *testing.T) {
		_, err := bestfirst.Reconstruct(map[gridgraph.Cell]gridgraph.Cell{b: a}, b)
		assert.ErrorIs(t, err, bestfirst.ErrReconstruction)
	})
	t.Run("Cycle", func(t *testing.T) {
		_, err := bestfirst.Reconstruct(map[gridgraph.Cell]gridgraph.Cell{a: b, b: a}, a)
		assert.ErrorIs(t, err, bestfirst.ErrReconstruction)
	})
}
