package pathfind

import "github.com/katalvlaran/gridwalk/grid"

// Result is the outcome of a search run. It is created fresh per call and is
// owned entirely by the caller.
type Result[C any] struct {
	// Outcome tells whether a single destination was reached.
	Outcome Outcome
	// Cost is the destination cost; valid only when Outcome == PathFound.
	Cost C
	// Tiles holds one Tile per grid cell.
	Tiles *grid.Dense[Tile[C]]
	// Stats counts frontier activity.
	Stats Stats

	start, dest grid.Point
}

// Start returns the cell the search started from.
func (r *Result[C]) Start() grid.Point { return r.start }

// Tile returns the record for p, or false when p is outside the grid.
func (r *Result[C]) Tile(p grid.Point) (Tile[C], bool) {
	return r.Tiles.Get(p.X, p.Y)
}

// CostTo returns the best cost recorded for p, or false if p was never reached.
func (r *Result[C]) CostTo(p grid.Point) (C, bool) {
	t, ok := r.Tile(p)
	if !ok || !t.HasCost {
		var zero C
		return zero, false
	}

	return t.Cost, true
}

// Reached reports whether a cost was recorded for p.
func (r *Result[C]) Reached(p grid.Point) bool {
	_, ok := r.CostTo(p)
	return ok
}

// VisitedCount returns the number of cells with a recorded cost.
func (r *Result[C]) VisitedCount() int {
	n := 0
	for _, t := range r.Tiles.Cells() {
		if t.HasCost {
			n++
		}
	}

	return n
}

// Path returns the cells from start to destination, both inclusive.
// Returns nil unless Outcome == PathFound.
func (r *Result[C]) Path() []grid.Point {
	if r.Outcome != PathFound {
		return nil
	}
	return r.PathTo(r.dest)
}

// PathTo rebuilds the path from the start to p by following origins.
// Returns nil if p was never reached. Useful after ToWhole.
func (r *Result[C]) PathTo(p grid.Point) []grid.Point {
	if !r.Reached(p) {
		return nil
	}
	// build reversed path
	path := []grid.Point{p}
	for cur := p; cur != r.start && len(path) <= r.Tiles.Len(); {
		t := r.Tiles.At(cur)
		if !t.HasOrigin {
			break
		}
		cur = t.Origin
		path = append(path, cur)
	}
	// reverse to get start → p
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
