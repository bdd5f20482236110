package bestfirst

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// entry is one pending frontier item. Entries are never mutated once pushed;
// a better priority for the same cell would be a second entry.
type entry struct {
	priority int
	cost     int
	cell     gridgraph.Cell
}

// less orders entries by priority, then cost, then cell (X, then Y).
func (e entry) less(o entry) bool {
	if e.priority != o.priority {
		return e.priority < o.priority
	}
	if e.cost != o.cost {
		return e.cost < o.cost
	}
	return e.cell.Less(o.cell)
}

// frontier is a min-heap of entries. Use push and popMin; the exported
// methods exist only to satisfy heap.Interface.
type frontier []entry

// Len returns the number of pending entries.
func (f frontier) Len() int { return len(f) }

// Less reports whether entry i sorts before entry j.
func (f frontier) Less(i, j int) bool { return f[i].less(f[j]) }

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

func (f *frontier) push(priority, cost int, c gridgraph.Cell) {
	heap.Push(f, entry{priority: priority, cost: cost, cell: c})
}

func (f *frontier) popMin() entry {
	return heap.Pop(f).(entry)
}

func (f frontier) empty() bool { return len(f) == 0 }
