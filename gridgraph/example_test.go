package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// ExampleParse builds the index of a small maze and queries it.
func ExampleParse() {
	gg, err := gridgraph.Parse([]string{
		"+++++",
		"+s  +",
		"+ +e+",
		"+++++",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", gg.Start(), "goal:", gg.Goal())
	fmt.Println("walls:", gg.WallCount(), "walkable:", gg.PathCount())
	fmt.Println("from start:", gg.WalkableNeighbors(gg.Start()))
	// Output:
	// start: (1,1) goal: (3,2)
	// walls: 15 walkable: 5
	// from start: [(2,1) (1,2)]
}

// ExampleGridGraph_ConnectedComponents shows why a goal can be unreachable:
// it sits in its own walled-off component.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.Parse([]string{
		"s  +  ",
		"   + e",
	})
	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	fmt.Println("connected:", gg.Connected())
	// Output:
	// component 0: [(0,0) (1,0) (0,1) (2,0) (1,1) (2,1)]
	// component 1: [(4,0) (5,0) (4,1) (5,1)]
	// connected: false
}
