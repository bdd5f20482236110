// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.GridGraph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[gridgraph.Cell]bool
	res     *BFSResult
}

// BFS runs breadth-first search on gg starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotWalkable for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS(gg *gridgraph.GridGraph, start gridgraph.Cell, opts ...Option) (*BFSResult, error) {
	if gg == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !gg.IsPath(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotWalkable, start)
	}

	// Prepare walker
	n := gg.PathCount()
	w := &walker{
		grid:    gg,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[gridgraph.Cell]bool, n),
		res: &BFSResult{
			Order:  make([]gridgraph.Cell, 0, n),
			Depth:  make(map[gridgraph.Cell]int, n),
			Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, gridgraph.NoCell)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Cell, d int, parent gridgraph.Cell) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != gridgraph.NoCell {
		w.res.Parent[c] = parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen walkable neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.WalkableNeighbors(item.cell) {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.cell)
		}
	}
}

// ShortestDistance is a convenience wrapper returning the fewest-steps
// distance between gg.Start() and gg.Goal(); ok is false when the goal is
// unreachable.
func ShortestDistance(gg *gridgraph.GridGraph) (steps int, ok bool, err error) {
	if gg == nil {
		return 0, false, ErrGraphNil
	}
	res, err := BFS(gg, gg.Start())
	if err != nil {
		return 0, false, err
	}
	steps, ok = res.DistanceTo(gg.Goal())
	return steps, ok, nil
}
