package gridgraph

// ConnectedComponents finds all 4-connected regions of walkable cells.
// Components are listed in row-major order of their first cell; cells
// inside a component are in breadth-first order from that cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gg.IsPath(c) || seen[gg.index(c)] {
				continue
			}
			comps = append(comps, gg.flood(c, seen))
		}
	}
	return comps
}

// ComponentOf returns the walkable component containing c, or nil when c is
// not walkable.
func (gg *GridGraph) ComponentOf(c Cell) []Cell {
	if !gg.IsPath(c) {
		return nil
	}
	return gg.flood(c, make([]bool, gg.Width*gg.Height))
}

// Connected reports whether Start and Goal lie in the same component.
func (gg *GridGraph) Connected() bool {
	for _, c := range gg.ComponentOf(gg.start) {
		if c == gg.goal {
			return true
		}
	}
	return false
}

// flood collects the component of root with a queue-based BFS, marking seen.
func (gg *GridGraph) flood(root Cell, seen []bool) []Cell {
	queue := []Cell{root}
	seen[gg.index(root)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range gg.Neighbors(queue[qi]) {
			if !gg.IsPath(v) || seen[gg.index(v)] {
				continue
			}
			seen[gg.index(v)] = true
			queue = append(queue, v)
		}
	}
	return queue
}

// index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Y*gg.Width + c.X
}
