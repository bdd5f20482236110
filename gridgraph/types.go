package gridgraph

import "fmt"

// Marker is the single-character classification of one maze cell.
type Marker byte

const (
	// Wall is a non-traversable cell.
	Wall Marker = '+'
	// Open is a walkable cell.
	Open Marker = ' '
	// Start is the unique walkable cell a search begins from.
	Start Marker = 's'
	// Goal is the unique walkable cell a search tries to reach.
	Goal Marker = 'e'
)

// Valid reports whether m is one of the four known markers.
func (m Marker) Valid() bool {
	switch m {
	case Wall, Open, Start, Goal:
		return true
	}
	return false
}

// Walkable reports whether a cell carrying m belongs to the path set.
func (m Marker) Walkable() bool {
	return m == Open || m == Start || m == Goal
}

// Cell is a discrete grid coordinate: X is the column, Y is the row.
// Cells compare and hash by value.
type Cell struct {
	X, Y int
}

// NoCell is the "none" sentinel used as the predecessor of a search root.
// It never lies inside a grid.
var NoCell = Cell{X: -1, Y: -1}

// Less orders cells lexicographically: by X first, then by Y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets is the fixed 4-connected visitation order: west, north,
// east, south. Search engines rely on it for reproducible discovery order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// GridGraph is the read-only index of a maze. It is immutable once built.
// Width and Height define dimensions; markers[y][x] holds the original input.
type GridGraph struct {
	Width, Height int
	markers       [][]Marker
	start, goal   Cell
	walls         int
}
