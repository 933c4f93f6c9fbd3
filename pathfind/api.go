package pathfind

import (
	"github.com/katalvlaran/gridwalk/cost"
	"github.com/katalvlaran/gridwalk/grid"
)

// ToDest finds the cheapest path from start to dest using Dijkstra's algorithm.
//
// costFn prices each step and returns false when no step exists; see CostFunc.
// Returns grid.ErrOutOfBounds if start or dest lies outside g.
func ToDest[T any, C cost.Number](
	g grid.View[T],
	start, dest grid.Point,
	nb grid.Neighbors,
	costFn CostFunc[T, C],
	opts ...Option,
) (*Result[C], error) {
	return Search(g, cost.For[C](), start, &dest, nb, costFn, nil, opts...)
}

// ToDestHeuristic finds a path from start to dest using A*, guided by h.
//
// An admissible h (never overestimating) yields the same optimal cost as ToDest
// with fewer expansions; an overestimating h is faster but may miss the optimum.
// Returns grid.ErrOutOfBounds if start or dest lies outside g.
func ToDestHeuristic[T any, C cost.Number](
	g grid.View[T],
	start, dest grid.Point,
	nb grid.Neighbors,
	costFn CostFunc[T, C],
	h Heuristic[C],
	opts ...Option,
) (*Result[C], error) {
	return Search(g, cost.For[C](), start, &dest, nb, costFn, h, opts...)
}

// ToWhole computes the cheapest path from start to every reachable cell.
// The outcome is always MultipleDestinations.
// Returns grid.ErrOutOfBounds if start lies outside g.
func ToWhole[T any, C cost.Number](
	g grid.View[T],
	start grid.Point,
	nb grid.Neighbors,
	costFn CostFunc[T, C],
	opts ...Option,
) (*Result[C], error) {
	return Search(g, cost.For[C](), start, nil, nb, costFn, nil, opts...)
}
