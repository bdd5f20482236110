package bestfirst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// TestParseStrategy covers exact, case/whitespace variants and fallbacks.
func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in     string
		want   Strategy
		wantOK bool
	}{
		{"greedy", Greedy, true},
		{"astar", AStar, true},
		{"Greedy", Greedy, true},
		{" greedy ", Greedy, true},
		{"\tASTAR\n", AStar, true},
		{"dijkstra", AStar, false},
		{"", AStar, false},
		{"a*", AStar, false},
		{"greedy best first", AStar, false},
	}
	for _, tc := range cases {
		got, ok := ParseStrategy(tc.in)
		assert.Equal(t, tc.want, got, "ParseStrategy(%q)", tc.in)
		assert.Equal(t, tc.wantOK, ok, "ParseStrategy(%q) ok", tc.in)
	}
}

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range []Strategy{AStar, Greedy} {
		got, ok := ParseStrategy(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	var zero Strategy
	assert.Equal(t, AStar, zero)
}

func TestStrategy_Priority(t *testing.T) {
	assert.Equal(t, 7, AStar.Priority(3, 4))
	assert.Equal(t, 4, Greedy.Priority(3, 4))
}

func TestManhattan(t *testing.T) {
	a := gridgraph.Cell{X: 1, Y: 5}
	b := gridgraph.Cell{X: 4, Y: 1}
	assert.Equal(t, 7, Manhattan(a, b))
	assert.Equal(t, 7, Manhattan(b, a))
	assert.Equal(t, 0, Manhattan(a, a))
}
