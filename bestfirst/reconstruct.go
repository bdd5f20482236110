package bestfirst

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Reconstruct walks prev backwards from goal until it reaches the
// gridgraph.NoCell sentinel and returns the cells in root → goal order.
//
// It returns ErrReconstruction when goal has no entry in prev, or when the
// chain does not terminate within len(prev) steps (a cycle).
//
// Complexity: O(path length).
func Reconstruct(prev map[gridgraph.Cell]gridgraph.Cell, goal gridgraph.Cell) ([]gridgraph.Cell, error) {
	if _, ok := prev[goal]; !ok {
		return nil, fmt.Errorf("%w: goal %v has no predecessor entry", ErrReconstruction, goal)
	}

	// build reversed path
	path := make([]gridgraph.Cell, 0, 16)
	for cur := goal; cur != gridgraph.NoCell; {
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor chain from %v does not terminate", ErrReconstruction, goal)
		}
		path = append(path, cur)
		next, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor entry", ErrReconstruction, cur)
		}
		cur = next
	}
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
