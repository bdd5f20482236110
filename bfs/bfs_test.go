package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// mustParse builds a grid or fails the test.
func mustParse(t *testing.T, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.Parse(rows)
	if err != nil {
		t.Fatalf("Parse(%q): %v", rows, err)
	}
	return gg
}

// pillar is a 3×3 maze with a single wall in the centre.
var pillar = []string{
	"s  ",
	" + ",
	"  e",
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil grid
	if _, err := bfs.BFS(nil, gridgraph.Cell{}); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil grid: want ErrGraphNil, got %v", err)
	}
	gg := mustParse(t, pillar...)
	// start on a wall
	if _, err := bfs.BFS(gg, gridgraph.Cell{X: 1, Y: 1}); !errors.Is(err, bfs.ErrStartNotWalkable) {
		t.Errorf("wall start: want ErrStartNotWalkable, got %v", err)
	}
	// start out of bounds
	if _, err := bfs.BFS(gg, gridgraph.Cell{X: 9, Y: 9}); !errors.Is(err, bfs.ErrStartNotWalkable) {
		t.Errorf("outside start: want ErrStartNotWalkable, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(gg, gg.Start(), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OrderAndDepths pins the visit order on the pillar maze.
func TestBFS_OrderAndDepths(t *testing.T) {
	gg := mustParse(t, pillar...)
	res, err := bfs.BFS(gg, gg.Start())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d, ok := res.DistanceTo(gg.Goal()); !ok || d != 4 {
		t.Errorf("DistanceTo(goal) = %d,%v; want 4,true", d, ok)
	}
	if d := res.Depth[gg.Start()]; d != 0 {
		t.Errorf("Depth[start] = %d; want 0", d)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start.
func TestBFS_Disconnected(t *testing.T) {
	gg := mustParse(t,
		"s +  ",
		"  + e",
	)
	res, err := bfs.BFS(gg, gg.Start())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Errorf("visited %d cells; want 4", len(res.Order))
	}
	if _, ok := res.DistanceTo(gg.Goal()); ok {
		t.Error("goal should be unreachable")
	}
	steps, ok, err := bfs.ShortestDistance(gg)
	if err != nil || ok || steps != 0 {
		t.Errorf("ShortestDistance = %d,%v,%v; want 0,false,nil", steps, ok, err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	gg := mustParse(t, "s  e")
	cases := []struct {
		depth int
		want  int
	}{
		{1, 2},  // s and its neighbor
		{0, 4},  // explicit no limit
		{10, 4}, // beyond maze size
	}
	for _, tc := range cases {
		res, err := bfs.BFS(gg, gg.Start(), bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Order) != tc.want {
			t.Errorf("MaxDepth=%d: visited %d; want %d", tc.depth, len(res.Order), tc.want)
		}
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	gg := mustParse(t, "s e")

	var enq, deq, vis []string
	entry := func(prefix string, c gridgraph.Cell, d int) string {
		return fmt.Sprintf("%s:%v@%d", prefix, c, d)
	}
	_, err := bfs.BFS(
		gg, gg.Start(),
		bfs.WithOnEnqueue(func(c gridgraph.Cell, d int) { enq = append(enq, entry("e", c, d)) }),
		bfs.WithOnDequeue(func(c gridgraph.Cell, d int) { deq = append(deq, entry("d", c, d)) }),
		bfs.WithOnVisit(func(c gridgraph.Cell, d int) error { vis = append(vis, entry("v", c, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantSuffix := []string{"(0,0)@0", "(1,0)@1", "(2,0)@2"}
	for i, suffix := range wantSuffix {
		for _, got := range []string{enq[i], deq[i], vis[i]} {
			if !strings.HasSuffix(got, suffix) {
				t.Errorf("hook[%d] = %q, want suffix %q", i, got, suffix)
			}
		}
	}
}

// TestBFS_VisitErrorAborts checks that an OnVisit error is wrapped and returned.
func TestBFS_VisitErrorAborts(t *testing.T) {
	gg := mustParse(t, pillar...)
	stop := errors.New("stop")
	_, err := bfs.BFS(gg, gg.Start(), bfs.WithOnVisit(func(c gridgraph.Cell, _ int) error {
		if c == (gridgraph.Cell{X: 2, Y: 0}) {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	gg := mustParse(t, pillar...)
	res, _ := bfs.BFS(gg, gg.Start())
	if path, _ := res.PathTo(gg.Start()); !reflect.DeepEqual(path, []gridgraph.Cell{gg.Start()}) {
		t.Errorf("PathTo start: got %v; want [start]", path)
	}
	path, err := res.PathTo(gg.Goal())
	if err != nil {
		t.Fatal(err)
	}
	want := []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo goal: got %v; want %v", path, want)
	}
	if _, err := res.PathTo(gridgraph.Cell{X: 1, Y: 1}); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("PathTo wall: want ErrUnreachable, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	gg := mustParse(t, "s"+strings.Repeat(" ", 100)+"e")
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(gg, gg.Start(), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same grid do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	gg := mustParse(t, pillar...)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := bfs.BFS(gg, gg.Start())
			if err == nil && len(res.Order) != 8 {
				err = fmt.Errorf("visited %d cells", len(res.Order))
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
