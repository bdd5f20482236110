// Package mazepath finds routes through character-grid mazes with greedy
// best-first and A* search, and records how each search explored the maze.
//
// 🚀 What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: parse '+', ' ', 's', 'e' mazes into a 4-connected graph
//		• Best-first search: greedy (h) and A* (g + h) over one engine
//		• Stepping: drive a search event by event, or range over its events
//		• Reference distances: breadth-first shortest lengths for comparison
//		• A CLI: solve a maze file, an HCL-configured maze, or the built-in one
//
// Under the hood, everything is organized under a few packages:
//
//	gridgraph/  — maze parsing, cells, neighbors & connected components
//	bestfirst/  — the search engine: strategies, frontier, stepper, results
//	bfs/        — breadth-first traversal & shortest distances
//	internal/   — config (HCL), CLI parsing, logging & the run pipeline
//	cmd/        — the mazesolver binary
//
// Quick ASCII example:
//
//	s··
//	·+·
//	··e
//
// A* reaches e in 4 steps; every cell is discovered exactly once, and the
// Result lists them in discovery order together with the edge that found them.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazesolver@latest
package mazepath
