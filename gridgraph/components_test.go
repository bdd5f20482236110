package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Split tests a maze split in two by a wall column.
//
//	s +.
//	  +e
//
// ('.' stands for an open cell.) Expect 2 components of sizes 4 and 2.
func TestConnectedComponents_Split(t *testing.T) {
	gg, err := Parse([]string{
		"s + ",
		"  +e",
	})
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.False(t, gg.Connected())
}

// TestComponentOf_Start checks BFS order from the root and the wall case.
func TestComponentOf_Start(t *testing.T) {
	gg, err := Parse([]string{
		"s  ",
		" +e",
	})
	require.NoError(t, err)

	got := gg.ComponentOf(gg.Start())
	want := []Cell{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {2, 1}}
	assert.Equal(t, want, got)
	assert.True(t, gg.Connected())
	assert.Nil(t, gg.ComponentOf(Cell{X: 1, Y: 1}))
}

func TestIndex(t *testing.T) {
	gg, err := Parse([]string{"s  ", "  e"})
	require.NoError(t, err)

	assert.Equal(t, 0, gg.index(Cell{0, 0}))
	assert.Equal(t, 5, gg.index(Cell{2, 1}))
}
