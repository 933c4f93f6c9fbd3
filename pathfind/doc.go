// Package pathfind implements a unified Dijkstra / A* search over implicit grids.
//
// Overview:
//
//   - The grid is any grid.View[T]; the graph is implicit: every cell is a vertex
//     and edges connect a cell to its neighbours under a grid.Neighbors policy.
//   - A caller-supplied CostFunc prices each step (from, fromPos, to, toPos). Returning
//     false means "no edge" (a wall, a cliff, a closed door, ...).
//   - Costs are any type with a cost.Model; every built-in numeric type works out
//     of the box through cost.For.
//
// Modes:
//
//   - ToDest:          single source, single destination, zero heuristic (Dijkstra).
//   - ToDestHeuristic: single source, single destination, caller heuristic (A*).
//   - ToWhole:         single source, every reachable cell (Dijkstra to exhaustion).
//   - Search:          the general entry point behind all three, taking an explicit
//     cost.Model so custom cost types can be used.
//
// Heuristics:
//
//	A heuristic that never overestimates the remaining cost (admissible) keeps the
//	result optimal. Underestimating heuristics, including the zero heuristic used by
//	ToDest, always preserve optimality; overestimating ones trade optimality for
//	fewer expansions. Manhattan and Chebyshev are provided for unit-cost grids.
//
// Result:
//
//	Result.Tiles holds, per cell, the predecessor and the best cost found, plus an
//	InShortestPath flag set along the reconstructed start→destination path when
//	Outcome == PathFound. Result.Path returns that path in order.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = reachable cells, E = attempted edges.
//   - Space: O(W×H) for the result table plus O(E) heap entries under the
//     lazy-deletion strategy (stale entries are discarded when popped).
//
// Errors:
//
//   - grid.ErrOutOfBounds: start or destination outside the grid; returned before
//     any work is done.
//
// Invalid costs never surface as errors: a CostFunc value that fails normalization
// is treated as "no edge". Comparing non-normalized values is a contract violation
// and panics (see cost.ErrUnordered).
//
// Thread safety:
//
//	A search holds a read-only view of the grid for its whole run; do not mutate
//	the grid concurrently. Each call is independent and leaves no shared state.
package pathfind
