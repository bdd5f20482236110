// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore walkable cells in non-decreasing distance (edge count) from a
//     start cell, expanding neighbors west, north, east, south.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (edges) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Exact fewest-steps distances on a unit-cost maze in O(W×H).
//   - Reference answer for heuristic searches: an A* path must be exactly as
//     long as the BFS path; a greedy path may be longer.
//
// Determinism
//
//	Neighbors are always taken in the fixed gridgraph order, so the visit
//	sequence is fully reproducible.
//
// Complexity (N = walkable cells)
//
//   - Time:   O(N)
//   - Memory: O(N)   (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(gg, gg.Start())
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotWalkable, ErrOptionViolation,
//	    // a context error, or a wrapped OnVisit error
//	}
//	steps, ok := result.DistanceTo(gg.Goal())
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):           hook before a cell is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a cell.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil          if the grid pointer is nil.
//   - ErrStartNotWalkable  if the start cell is a wall or out of bounds.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
