// Package bestfirst implements best-first search on a gridgraph.GridGraph
// with two interchangeable strategies: Greedy Best-First Search and A*.
//
// Overview:
//
//   - A single loop drives both strategies; only the frontier priority
//     differs. Greedy orders by the heuristic estimate h alone, A* by g+h.
//   - The frontier is a min-heap ordered by (priority, cost, cell.X, cell.Y),
//     so every tie is broken the same way on every run.
//   - Cells are marked discovered when first pushed, not when popped. Each
//     cell therefore gets exactly one predecessor and one cost. With unit
//     edge costs this still yields optimal A* paths; it would not with
//     arbitrary weights.
//   - Neighbors are visited west, north, east, south.
//
// When to use:
//
//   - Greedy: fast answers where path quality is secondary.
//   - A*: shortest paths under the admissible Manhattan heuristic.
//
// API:
//
//	res, err := bestfirst.Search(gg, bestfirst.AStar)
//	if errors.Is(err, bestfirst.ErrNotFound) {
//	    // no path; res.Discovered still lists every reachable cell
//	}
//
//	st, _ := bestfirst.NewStepper(gg, bestfirst.Greedy)
//	for ev := range st.Events() {
//	    // animate ev.Kind at ev.Cell
//	}
//
// Errors (sentinel):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrEndpoint:         start or goal is not walkable (wraps gridgraph.ErrConfiguration).
//   - ErrOptionViolation:  an Option was given an invalid value.
//   - ErrNotFound:         the frontier was exhausted (or the expansion
//     budget spent) before reaching the goal. Expected, not exceptional.
//   - ErrIncomplete:       Stepper.Result called before the run finished.
//   - ErrReconstruction:   Reconstruct called on a predecessor map that does
//     not lead from the goal back to a root.
//
// Thread safety:
//
//   - A GridGraph can be shared by any number of concurrent searches.
//   - A Stepper owns its run state and must not be driven from two
//     goroutines at once.
//
// Complexity:
//
//   - Time:  O(N log N) for N walkable cells; each cell is pushed once.
//   - Space: O(N) for the discovered set, cost and predecessor maps.
package bestfirst
