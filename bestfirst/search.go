package bestfirst

import "github.com/katalvlaran/mazepath/gridgraph"

// Search runs strategy s from gg.Start() to gg.Goal() to completion.
//
// Returns:
//
//   - (*Result, nil) when the goal was reached; Result.Path runs Start…Goal.
//   - (*Result, ErrNotFound) when no path exists or the expansion budget ran
//     out. Result.Path is nil; Discovered lists everything reached.
//   - (nil, err) for ErrNilGrid, ErrOptionViolation or ErrEndpoint, before
//     any work is done.
//
// Options customization:
//
//   - WithHeuristic(h):      replace Manhattan.
//   - WithMaxExpansions(n):  stop after n frontier pops.
//   - WithOnDiscover / WithOnExpand / WithOnGoal: observe the run.
//
// Complexity:
//
//   - Time:  O(N log N), N = walkable cells.
//   - Space: O(N).
func Search(gg *gridgraph.GridGraph, s Strategy, opts ...Option) (*Result, error) {
	st, err := NewStepper(gg, s, opts...)
	if err != nil {
		return nil, err
	}
	return st.Run()
}

// SearchBetween is Search with explicit endpoints, which must both be walkable.
func SearchBetween(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, s Strategy, opts ...Option) (*Result, error) {
	st, err := NewStepperBetween(gg, start, goal, s, opts...)
	if err != nil {
		return nil, err
	}
	return st.Run()
}
