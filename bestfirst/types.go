package bestfirst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("bestfirst: grid is nil")

	// ErrEndpoint indicates that start or goal is not a walkable cell.
	ErrEndpoint = fmt.Errorf("%w: search endpoint is not walkable", gridgraph.ErrConfiguration)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")

	// ErrNotFound indicates the frontier emptied, or the expansion budget ran
	// out, before the goal was reached. It is an expected outcome.
	ErrNotFound = errors.New("bestfirst: no path to goal")

	// ErrIncomplete indicates a Stepper result was requested mid-run.
	ErrIncomplete = errors.New("bestfirst: search has not finished")

	// ErrReconstruction indicates a predecessor map that does not lead from
	// the goal back to a root. It signals a caller bug.
	ErrReconstruction = errors.New("bestfirst: cannot reconstruct path")
)

// State is the lifecycle of one search run.
type State int

const (
	// Ready: seeded, nothing popped yet.
	Ready State = iota
	// Running: at least one frontier entry popped.
	Running
	// Succeeded: the goal was popped.
	Succeeded
	// Exhausted: the frontier emptied or the budget ran out.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Done reports whether s is terminal.
func (s State) Done() bool { return s == Succeeded || s == Exhausted }

// EventKind tags an Event.
type EventKind int

const (
	// EventDiscover: Cell was pushed for the first time, from From.
	EventDiscover EventKind = iota
	// EventExpand: Cell was popped from the frontier.
	EventExpand
	// EventGoal: Cell (the goal) was popped and finalised.
	EventGoal
	// EventExhausted: the run ended without reaching the goal.
	EventExhausted
)

func (k EventKind) String() string {
	switch k {
	case EventDiscover:
		return "discover"
	case EventExpand:
		return "expand"
	case EventGoal:
		return "goal"
	case EventExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one observable step of a run. Priority and Cost are those of the
// frontier entry involved; From is gridgraph.NoCell for the root discovery
// and for non-discovery events.
type Event struct {
	Kind     EventKind
	Cell     gridgraph.Cell
	From     gridgraph.Cell
	Priority int
	Cost     int
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surface as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables and hooks of one search.
type Options struct {
	// Heuristic estimates remaining cost. Default: Manhattan.
	Heuristic Heuristic

	// MaxExpansions, if > 0, bounds the number of frontier pops. Running
	// out counts as ErrNotFound. 0 disables the bound.
	MaxExpansions int

	// OnDiscover is called once per discovered cell, root included.
	OnDiscover func(cell, from gridgraph.Cell, cost int)

	// OnExpand is called every time an entry is popped.
	OnExpand func(cell gridgraph.Cell, priority, cost int)

	// OnGoal is called once when the goal is finalised.
	OnGoal func(goal gridgraph.Cell)

	err error
}

// DefaultOptions returns Options with the Manhattan heuristic, no expansion
// bound and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Manhattan,
		MaxExpansions: 0,
		OnDiscover:    func(gridgraph.Cell, gridgraph.Cell, int) {},
		OnExpand:      func(gridgraph.Cell, int, int) {},
		OnGoal:        func(gridgraph.Cell) {},
	}
}

// WithHeuristic replaces the Manhattan heuristic. A* is only optimal when h
// never overestimates.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions bounds the number of frontier pops.
//
//	n > 0: at most n pops, then ErrNotFound
//	n == 0: explicit no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnDiscover registers a callback run on every discovery.
func WithOnDiscover(fn func(cell, from gridgraph.Cell, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers a callback run on every frontier pop.
func WithOnExpand(fn func(cell gridgraph.Cell, priority, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback run when the goal is finalised.
func WithOnGoal(fn func(goal gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// Result holds the outcome of one run.
//
//   - Path: Start…Goal inclusive; nil unless State == Succeeded.
//   - Discovered: every cell in the order it was marked discovered, Start first.
//   - Tail: the expanding cell, once per non-root discovery; together with
//     Discovered[1:] it lists every predecessor edge in drawing order.
//   - Cost: g-score fixed at discovery time.
//   - Prev: predecessor fixed at discovery time; Start maps to gridgraph.NoCell.
//   - Expansions: number of frontier pops.
type Result struct {
	Strategy   Strategy
	Start      gridgraph.Cell
	Goal       gridgraph.Cell
	State      State
	Path       []gridgraph.Cell
	Discovered []gridgraph.Cell
	Tail       []gridgraph.Cell
	Cost       map[gridgraph.Cell]int
	Prev       map[gridgraph.Cell]gridgraph.Cell
	Expansions int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return r.State == Succeeded }

// Length returns the number of edges on Path, or -1 when no path was found.
func (r *Result) Length() int {
	if r.Path == nil {
		return -1
	}
	return len(r.Path) - 1
}
