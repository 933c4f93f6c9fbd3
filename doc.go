// Package gridwalk is a traversal engine for implicit 2D grids: cheapest-path
// search and flood-fill region growing over any rectangular container.
//
// What is in the box?
//
//	grid/             - Point, Rect, the View / MutableView contract, a row-major
//	                    Dense container, adapters and the Neighbors policy
//	                    (Adjacent = 4 cells, Bordering = 8 cells)
//	cost/             - the cost Model (Compare, Zero, Add, Normalize) for
//	                    unsigned, signed and floating point costs
//	pathfind/         - unified Dijkstra / A*: ToDest, ToDestHeuristic, ToWhole
//	editing/          - FloodFill, Discover, Components, Copy, Blend
//	islands/          - island labelling and minimum-conversion bridges
//	cmd/gridwalk/     - command-line front end over ASCII map files
//
// Grids are never converted to an explicit graph. Neighbours are generated on
// the fly from precomputed offsets and clipped to the grid bounds; the caller's
// cost function decides which steps exist and what they cost.
//
// Quick start:
//
//	m, _ := grid.ParseLines([]string{
//		"S.#",
//		"#.#",
//		"#.D",
//	})
//	step := func(_ byte, _ grid.Point, to byte, _ grid.Point) (uint, bool) {
//		return 1, to != '#'
//	}
//	res, err := pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(2, 2), grid.Adjacent, step)
//	// res.Outcome == pathfind.PathFound, res.Cost == 4
//
// All algorithms are single-threaded and synchronous. A grid must not be
// mutated while a search or fill is running on it.
package gridwalk
