package bestfirst

import "github.com/katalvlaran/mazepath/gridgraph"

// Heuristic estimates the remaining cost between two cells. It must be
// non-negative and pure.
type Heuristic func(from, to gridgraph.Cell) int

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|. On a 4-connected unit-cost grid it
// never overestimates the true remaining cost, which A* needs for optimality.
func Manhattan(a, b gridgraph.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
