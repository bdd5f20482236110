package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a GridGraph from maze rows, one string per row, each byte a
// Marker. See NewGridGraph for validation rules.
func Parse(rows []string) (*GridGraph, error) {
	markers := make([][]Marker, len(rows))
	for y, row := range rows {
		markers[y] = []Marker(row)
	}

	return NewGridGraph(markers)
}

// ReadMaze reads a maze from r, one row per line. Carriage returns are
// stripped and trailing blank lines are ignored; blank lines inside the
// maze are kept so that they fail the rectangularity check.
func ReadMaze(r io.Reader) (*GridGraph, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return Parse(rows)
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular marker
// grid. It deep-copies the input to ensure immutability.
//
// Validation (in order):
//  1. At least one row and one column (ErrEmptyGrid).
//  2. Every row has the same length (ErrNonRectangular).
//  3. Every marker is known (ErrUnknownMarker).
//  4. Exactly one Start (ErrNoStart, ErrDuplicateStart).
//  5. Exactly one Goal (ErrNoGoal, ErrDuplicateGoal).
//
// Complexity: O(W×H) time and memory.
func NewGridGraph(markers [][]Marker) (*GridGraph, error) {
	if len(markers) == 0 || len(markers[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(markers), len(markers[0])
	for y, row := range markers {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	gg := &GridGraph{
		Width:   w,
		Height:  h,
		markers: make([][]Marker, h),
		start:   NoCell,
		goal:    NoCell,
	}
	for y := 0; y < h; y++ {
		gg.markers[y] = make([]Marker, w)
		copy(gg.markers[y], markers[y])
		for x, m := range gg.markers[y] {
			if err := gg.classify(Cell{X: x, Y: y}, m); err != nil {
				return nil, err
			}
		}
	}
	if gg.start == NoCell {
		return nil, ErrNoStart
	}
	if gg.goal == NoCell {
		return nil, ErrNoGoal
	}

	return gg, nil
}

// classify records the distinguished cells and counts walls.
func (gg *GridGraph) classify(c Cell, m Marker) error {
	switch m {
	case Wall:
		gg.walls++
	case Open:
	case Start:
		if gg.start != NoCell {
			return fmt.Errorf("%w: at %v and %v", ErrDuplicateStart, gg.start, c)
		}
		gg.start = c
	case Goal:
		if gg.goal != NoCell {
			return fmt.Errorf("%w: at %v and %v", ErrDuplicateGoal, gg.goal, c)
		}
		gg.goal = c
	default:
		return fmt.Errorf("%w: %q at %v", ErrUnknownMarker, rune(m), c)
	}

	return nil
}

// Start returns the unique start cell.
func (gg *GridGraph) Start() Cell { return gg.start }

// Goal returns the unique goal cell.
func (gg *GridGraph) Goal() Cell { return gg.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Marker returns the marker at c, or Wall when c is out of bounds.
func (gg *GridGraph) Marker(c Cell) Marker {
	if !gg.InBounds(c) {
		return Wall
	}
	return gg.markers[c.Y][c.X]
}

// IsPath reports whether c belongs to the walkable set (Open, Start or Goal).
// Out-of-bounds cells are never walkable.
func (gg *GridGraph) IsPath(c Cell) bool {
	return gg.InBounds(c) && gg.markers[c.Y][c.X].Walkable()
}

// IsWall reports whether c is an in-bounds wall cell.
func (gg *GridGraph) IsWall(c Cell) bool {
	return gg.InBounds(c) && gg.markers[c.Y][c.X] == Wall
}

// Neighbors returns the four axis-aligned coordinates around c in the fixed
// order west, north, east, south. Coordinates may be out of bounds or walls;
// filter them with IsPath.
func (gg *GridGraph) Neighbors(c Cell) [4]Cell {
	var out [4]Cell
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}

// WalkableNeighbors returns the neighbors of c that belong to the walkable
// set, in west, north, east, south order.
func (gg *GridGraph) WalkableNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, n := range gg.Neighbors(c) {
		if gg.IsPath(n) {
			out = append(out, n)
		}
	}
	return out
}

// WallCount returns the size of the wall set.
func (gg *GridGraph) WallCount() int { return gg.walls }

// PathCount returns the size of the walkable set.
func (gg *GridGraph) PathCount() int { return gg.Width*gg.Height - gg.walls }

// Walls returns the wall set in row-major order.
func (gg *GridGraph) Walls() []Cell {
	return gg.collect(func(m Marker) bool { return m == Wall }, gg.walls)
}

// Paths returns the walkable set in row-major order.
func (gg *GridGraph) Paths() []Cell {
	return gg.collect(Marker.Walkable, gg.PathCount())
}

func (gg *GridGraph) collect(keep func(Marker) bool, n int) []Cell {
	out := make([]Cell, 0, n)
	for y, row := range gg.markers {
		for x, m := range row {
			if keep(m) {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// String renders the maze back to its textual form, one row per line.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow(gg.Height * (gg.Width + 1))
	for y, row := range gg.markers {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range row {
			sb.WriteByte(byte(m))
		}
	}
	return sb.String()
}
