package bestfirst

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Stepper runs a search one event at a time. Events come out strictly in the
// order the engine produces them: the root discovery, then for every pop an
// EventExpand followed by that pop's discoveries, and finally EventGoal or
// EventExhausted.
//
// Each Stepper owns fresh discovered/cost/predecessor state, so any number of
// Steppers may share one GridGraph.
type Stepper struct {
	gg       *gridgraph.GridGraph
	strategy Strategy
	opts     Options
	goal     gridgraph.Cell

	frontier   frontier
	discovered map[gridgraph.Cell]bool
	res        *Result

	pending []Event
}

// NewStepper prepares a run from gg.Start() to gg.Goal().
func NewStepper(gg *gridgraph.GridGraph, s Strategy, opts ...Option) (*Stepper, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	return NewStepperBetween(gg, gg.Start(), gg.Goal(), s, opts...)
}

// NewStepperBetween prepares a run between two arbitrary walkable cells.
// start == goal is allowed and yields the single-cell path.
//
// Validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be walkable (ErrEndpoint).
func NewStepperBetween(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, s Strategy, opts ...Option) (*Stepper, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !gg.IsPath(start) {
		return nil, fmt.Errorf("%w: start %v", ErrEndpoint, start)
	}
	if !gg.IsPath(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrEndpoint, goal)
	}

	n := gg.PathCount()
	st := &Stepper{
		gg:         gg,
		strategy:   s,
		opts:       o,
		goal:       goal,
		frontier:   make(frontier, 0, n),
		discovered: make(map[gridgraph.Cell]bool, n),
		res: &Result{
			Strategy:   s,
			Start:      start,
			Goal:       goal,
			State:      Ready,
			Discovered: make([]gridgraph.Cell, 0, n),
			Tail:       make([]gridgraph.Cell, 0, n),
			Cost:       make(map[gridgraph.Cell]int, n),
			Prev:       make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}
	st.seed(start)

	return st, nil
}

// seed pushes the root with cost 0 and marks it discovered.
func (st *Stepper) seed(start gridgraph.Cell) {
	h := st.opts.Heuristic(start, st.goal)
	st.discover(start, gridgraph.NoCell, 0, h)
}

// discover marks c discovered from `from`, fixes its cost and predecessor,
// and pushes it with its strategy priority.
func (st *Stepper) discover(c, from gridgraph.Cell, cost, priority int) {
	st.discovered[c] = true
	st.res.Prev[c] = from
	st.res.Cost[c] = cost
	st.res.Discovered = append(st.res.Discovered, c)
	if from != gridgraph.NoCell {
		st.res.Tail = append(st.res.Tail, from)
	}
	st.frontier.push(priority, cost, c)

	st.opts.OnDiscover(c, from, cost)
	st.emit(Event{Kind: EventDiscover, Cell: c, From: from, Priority: priority, Cost: cost})
}

func (st *Stepper) emit(ev Event) {
	st.pending = append(st.pending, ev)
}

// State reports the current lifecycle state.
func (st *Stepper) State() State { return st.res.State }

// Step returns the next event. ok is false once the run is over and every
// event has been delivered.
func (st *Stepper) Step() (ev Event, ok bool) {
	for len(st.pending) == 0 {
		if st.res.State.Done() {
			return Event{}, false
		}
		st.advance()
	}
	ev = st.pending[0]
	st.pending = st.pending[1:]

	return ev, true
}

// Events yields the remaining events of the run in order. Breaking out of the
// loop leaves the Stepper paused; ranging again resumes it.
func (st *Stepper) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := st.Step()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Run drains the Stepper and returns its Result.
func (st *Stepper) Run() (*Result, error) {
	for _, ok := st.Step(); ok; _, ok = st.Step() {
	}
	return st.Result()
}

// Result returns the run outcome. The error is nil on success, ErrNotFound
// when the run was exhausted (the Result is still populated), and
// ErrIncomplete while events remain.
func (st *Stepper) Result() (*Result, error) {
	switch st.res.State {
	case Succeeded:
		return st.res, nil
	case Exhausted:
		return st.res, ErrNotFound
	}
	return nil, ErrIncomplete
}

// advance performs one frontier pop and queues the resulting events.
//
// Loop body:
//  1. Empty frontier or spent budget → Exhausted.
//  2. Pop the minimum entry (priority, g, current).
//  3. current == goal → Succeeded, reconstruct the path.
//  4. Otherwise discover every walkable, undiscovered neighbor in
//     west, north, east, south order with cost g+1.
func (st *Stepper) advance() {
	if st.frontier.empty() || st.budgetSpent() {
		st.res.State = Exhausted
		st.emit(Event{Kind: EventExhausted, Cell: st.goal, From: gridgraph.NoCell})
		return
	}

	st.res.State = Running
	cur := st.frontier.popMin()
	st.res.Expansions++
	st.opts.OnExpand(cur.cell, cur.priority, cur.cost)
	st.emit(Event{Kind: EventExpand, Cell: cur.cell, From: gridgraph.NoCell, Priority: cur.priority, Cost: cur.cost})

	if cur.cell == st.goal {
		st.finish(cur)
		return
	}

	g := cur.cost + 1
	for _, nb := range st.gg.Neighbors(cur.cell) {
		if !st.gg.IsPath(nb) || st.discovered[nb] {
			continue
		}
		h := st.opts.Heuristic(nb, st.goal)
		st.discover(nb, cur.cell, g, st.strategy.Priority(g, h))
	}
}

// finish rebuilds the path for a popped goal entry. The predecessor map is
// built by this Stepper, so reconstruction cannot fail here.
func (st *Stepper) finish(goal entry) {
	path, err := Reconstruct(st.res.Prev, goal.cell)
	if err != nil {
		panic(err)
	}
	st.res.Path = path
	st.res.State = Succeeded
	st.opts.OnGoal(goal.cell)
	st.emit(Event{Kind: EventGoal, Cell: goal.cell, From: gridgraph.NoCell, Priority: goal.priority, Cost: goal.cost})
}

func (st *Stepper) budgetSpent() bool {
	return st.opts.MaxExpansions > 0 && st.res.Expansions >= st.opts.MaxExpansions
}
