package bestfirst

import "strings"

// Strategy selects how the frontier is prioritised.
type Strategy int

const (
	// AStar orders the frontier by cost-so-far plus heuristic. It is the
	// zero value and the fallback for any unrecognised selector.
	AStar Strategy = iota
	// Greedy orders the frontier by the heuristic alone.
	Greedy
)

// String returns the canonical selector: "astar" or "greedy".
func (s Strategy) String() string {
	if s == Greedy {
		return "greedy"
	}
	return "astar"
}

// Priority combines the cost so far g and the estimate h into the frontier key.
func (s Strategy) Priority(g, h int) int {
	if s == Greedy {
		return h
	}
	return g + h
}

// ParseStrategy normalises a user-supplied selector. Surrounding whitespace
// and letter case are ignored; "greedy" and "astar" match. Anything else
// resolves to AStar with ok == false so the caller can warn about the fallback.
// It never fails.
func ParseStrategy(s string) (strategy Strategy, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return Greedy, true
	case "astar":
		return AStar, true
	}
	return AStar, false
}
