// Package gridgraph treats a rectangular maze of single-character markers as
// an implicit, 4-connected, unit-cost graph.
//
// What:
//
//   - GridGraph classifies every cell of a marker grid into exactly one of
//     the wall set or the walkable (path) set, and records the unique Start
//     and Goal cells.
//   - Neighbor queries return the four axis-aligned coordinates of a cell in
//     a fixed order: west, north, east, south.
//   - ConnectedComponents groups walkable cells into 4-connected regions,
//     which is handy to explain why a Goal cannot be reached.
//
// Why:
//
//   - Search engines (see package bestfirst) only need cheap, read-only
//     membership tests and a stable neighbor order.
//   - Building the index once and sharing it by pointer removes any global
//     wall/path/visited state between runs.
//
// Markers:
//
//	'+'  wall
//	' '  open (walkable)
//	's'  start (walkable, exactly one)
//	'e'  goal  (walkable, exactly one)
//
// Coordinates:
//
//	Cell{X: column, Y: row}; (0,0) is the top-left character of the maze.
//
// Complexity:
//
//   - Parse / NewGridGraph: O(W×H) time and memory.
//   - IsPath, IsWall, Neighbors: O(1).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//
// Errors (all wrap ErrConfiguration):
//
//   - ErrEmptyGrid: the maze has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownMarker: a character outside {'+',' ','s','e'}.
//   - ErrNoStart / ErrDuplicateStart: zero or several 's' markers.
//   - ErrNoGoal / ErrDuplicateGoal: zero or several 'e' markers.
//
// A GridGraph is immutable once built and safe for concurrent readers.
package gridgraph
