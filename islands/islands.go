package islands

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/editing"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfind"
)

// Sentinel errors for island operations.
var (
	// ErrEmptyIsland indicates a bridge endpoint with no cells.
	ErrEmptyIsland = errors.New("islands: island must contain at least one cell")
	// ErrNoPath indicates no conversion path exists between two islands.
	ErrNoPath = errors.New("islands: no path between specified islands")
)

// Components returns every island of g: maximal groups of neighbouring land
// cells that share the same value. Islands are ordered by their first cell in
// row-major order.
func Components[T comparable](g grid.View[T], nb grid.Neighbors, isLand func(T) bool) [][]grid.Point {
	same := func(a, b T) bool { return a == b && isLand(a) }

	var out [][]grid.Point
	for _, comp := range editing.Components[T](g, nb, same) {
		if v, _ := g.Get(comp[0].X, comp[0].Y); isLand(v) {
			out = append(out, comp)
		}
	}

	return out
}

// Bridge finds a minimum-conversion path from island src to island dst.
//
// The returned path starts at the last src cell it leaves and ends at the first
// dst cell it enters; conversions is the number of water cells on it. Land of
// any island may be crossed for free. Both islands are expected to be connected
// components as returned by Components.
//
// Returns ErrEmptyIsland if src or dst is empty, grid.ErrOutOfBounds for cells
// outside g, and ErrNoPath if the islands cannot be joined.
func Bridge[T any](
	g grid.View[T],
	nb grid.Neighbors,
	isLand func(T) bool,
	src, dst []grid.Point,
	opts ...pathfind.Option,
) (path []grid.Point, conversions uint, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptyIsland
	}
	for _, p := range append(append([]grid.Point(nil), src...), dst...) {
		if err := grid.CheckBounds(g, p); err != nil {
			return nil, 0, err
		}
	}

	step := func(_ T, _ grid.Point, to T, _ grid.Point) (uint, bool) {
		if isLand(to) {
			return 0, true
		}
		return 1, true
	}
	res, err := pathfind.ToDest(g, src[0], dst[0], nb, step, opts...)
	if err != nil {
		return nil, 0, err
	}
	if res.Outcome != pathfind.PathFound {
		return nil, 0, fmt.Errorf("%w: %v to %v", ErrNoPath, src[0], dst[0])
	}

	return trim(res.Path(), src, dst), res.Cost, nil
}

// trim cuts full to the stretch between the last src cell and the first dst
// cell that follows it. Every dropped cell is land, so the cost is unchanged.
func trim(full, src, dst []grid.Point) []grid.Point {
	inSrc := make(map[grid.Point]struct{}, len(src))
	for _, p := range src {
		inSrc[p] = struct{}{}
	}
	inDst := make(map[grid.Point]struct{}, len(dst))
	for _, p := range dst {
		inDst[p] = struct{}{}
	}

	first := 0
	for i, p := range full {
		if _, ok := inSrc[p]; ok {
			first = i
		}
	}
	last := len(full) - 1
	for i := first; i < len(full); i++ {
		if _, ok := inDst[full[i]]; ok {
			last = i
			break
		}
	}

	return full[first : last+1]
}
