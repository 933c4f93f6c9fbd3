package editing

import "github.com/katalvlaran/gridwalk/grid"

// State is the discovery mark of a single cell.
type State uint8

const (
	// Unvisited cells were never examined.
	Unvisited State = iota
	// Border cells were examined and rejected by the comparer; they are not painted.
	Border
	// Paint cells were accepted and are (or will be) painted.
	Paint
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Border:
		return "border"
	case Paint:
		return "paint"
	default:
		return "unknown"
	}
}

// Comparer decides whether candidate joins the region. seed is the value of the
// start cell, current the value of the cell being expanded.
type Comparer[T any] func(seed, current, candidate T) bool

// Painter mutates an accepted cell in place.
type Painter[T any] func(v *T, p grid.Point)

// FloodFill paints the region connected to start.
//
// Every cell reachable from start through steps accepted by comparer is
// painted exactly once, the start cell included. Returns the number of painted
// cells, or grid.ErrOutOfBounds if start lies outside g.
func FloodFill[T any](
	g grid.MutableView[T],
	start grid.Point,
	nb grid.Neighbors,
	comparer Comparer[T],
	painter Painter[T],
) (int, error) {
	states, _, err := Discover[T](g, start, nb, comparer)
	if err != nil {
		return 0, err
	}

	painted := 0
	for i, s := range states.Cells() {
		if s != Paint {
			continue
		}
		p := states.Coordinate(i)
		v, ok := g.GetMut(p.X, p.Y)
		if !ok {
			continue
		}
		painter(v, p)
		painted++
	}

	return painted, nil
}

// Discover runs the discovery phase of FloodFill on a read-only view.
// It returns the per-cell state table and the number of Paint cells.
func Discover[T any](
	g grid.View[T],
	start grid.Point,
	nb grid.Neighbors,
	comparer Comparer[T],
) (*grid.Dense[State], int, error) {
	if err := grid.CheckBounds(g, start); err != nil {
		return nil, 0, err
	}
	states, err := grid.NewDense[State](g.Width(), g.Height())
	if err != nil {
		return nil, 0, err
	}

	f := &filler[T]{
		g:        g,
		nb:       nb,
		comparer: comparer,
		states:   states,
		buf:      nb.Prealloc(),
	}
	f.seed, _ = g.Get(start.X, start.Y)
	f.run(start)

	return states, f.painted, nil
}

// filler holds the mutable state of one discovery pass.
type filler[T any] struct {
	g        grid.View[T]
	nb       grid.Neighbors
	comparer Comparer[T]
	seed     T
	states   *grid.Dense[State]
	queue    []grid.Point
	buf      []grid.Point
	painted  int
}

// run seeds the queue with start marked Paint and drains it.
func (f *filler[T]) run(start grid.Point) {
	f.accept(start)
	for qi := 0; qi < len(f.queue); qi++ {
		f.expand(f.queue[qi])
	}
}

// expand examines every unvisited neighbour of p.
func (f *filler[T]) expand(p grid.Point) {
	current, _ := f.g.Get(p.X, p.Y)
	f.buf = f.nb.AppendPoints(f.buf[:0], p, f.g.Width(), f.g.Height())
	for _, n := range f.buf {
		if f.states.At(n) != Unvisited {
			continue
		}
		candidate, _ := f.g.Get(n.X, n.Y)
		if f.comparer(f.seed, current, candidate) {
			f.accept(n)
		} else {
			f.states.Set(n, Border)
		}
	}
}

// accept marks p as Paint and queues it for expansion.
func (f *filler[T]) accept(p grid.Point) {
	f.states.Set(p, Paint)
	f.queue = append(f.queue, p)
	f.painted++
}
