package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/gridwalk/cost"
	"github.com/katalvlaran/gridwalk/grid"
)

// Search is the general entry point behind ToDest, ToDestHeuristic and ToWhole.
//
// If dest is nil the search runs to exhaustion and the outcome is
// MultipleDestinations. Otherwise it stops as soon as dest is finalized.
// A nil heuristic is the zero heuristic; heuristic values failing
// model.Normalize are treated as zero.
//
// Preconditions and validation (in order):
//  1. start must lie inside g (grid.ErrOutOfBounds).
//  2. dest, if given, must lie inside g (grid.ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(W×H + E)
func Search[T, C any](
	g grid.View[T],
	model cost.Model[C],
	start grid.Point,
	dest *grid.Point,
	nb grid.Neighbors,
	costFn CostFunc[T, C],
	h Heuristic[C],
	opts ...Option,
) (*Result[C], error) {
	// 1) Validate coordinates before allocating anything.
	if err := grid.CheckBounds(g, start); err != nil {
		return nil, err
	}
	if dest != nil {
		if err := grid.CheckBounds(g, *dest); err != nil {
			return nil, err
		}
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tiles, err := grid.NewDense[Tile[C]](g.Width(), g.Height())
	if err != nil {
		return nil, err
	}

	res := &Result[C]{
		Outcome: MultipleDestinations,
		Tiles:   tiles,
		start:   start,
	}
	if dest != nil {
		res.Outcome = PathNotFound
		res.dest = *dest
	}

	r := &runner[T, C]{
		g:       g,
		model:   model,
		nb:      nb,
		costFn:  costFn,
		h:       h,
		dest:    dest,
		options: cfg,
		res:     res,
		best:    make([]C, tiles.Len()),
		known:   make([]bool, tiles.Len()),
		pq:      frontier[C]{model: model},
		buf:     nb.Prealloc(),
	}

	// 3) Seed and run.
	r.init(start)
	r.process()

	// 4) Mark the shortest path when a destination was reached.
	if res.Outcome == PathFound {
		r.markPath()
	}

	if l := cfg.Logger; l != nil {
		l.Debug("pathfind finished",
			"outcome", res.Outcome.String(),
			"start", start.String(),
			"neighbors", nb.String(),
			"finalized", res.Stats.Finalized,
			"pushed", res.Stats.Pushed,
			"stale", res.Stats.Stale,
		)
	}

	return res, nil
}

// runner holds the mutable state for a single search execution.
type runner[T, C any] struct {
	g       grid.View[T]   // The input grid; read-only within the search.
	model   cost.Model[C]  // Ordering, identity, addition and normalization of costs.
	nb      grid.Neighbors // Neighbour policy.
	costFn  CostFunc[T, C] // Step cost.
	h       Heuristic[C]   // Optional heuristic (nil = zero).
	dest    *grid.Point    // Optional destination (nil = whole grid).
	options Options        // Logger and hooks.
	res     *Result[C]     // Output; owns the per-cell tiles.
	best    []C            // Best tentative cost per cell (row-major).
	known   []bool         // Whether best[i] holds a value.
	pq      frontier[C]    // Min-heap of entries keyed by estimated cost.
	buf     []grid.Point   // Reused neighbour scratch buffer.
}

// init pushes the start cell at zero cost; the start is its own origin.
func (r *runner[T, C]) init(start grid.Point) {
	zero := r.model.Zero()
	i := r.index(start)
	r.best[i], r.known[i] = zero, true
	heap.Init(&r.pq)
	r.push(entry[C]{estimated: zero, actual: zero, pos: start, origin: start})
}

// process repeatedly pops the lowest-estimate entry and expands it.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable cell processed, or dest unreachable).
//   - The destination is finalized.
func (r *runner[T, C]) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-estimate entry.
		e := heap.Pop(&r.pq).(entry[C])
		r.res.Stats.Popped++

		// 2) Lazy deletion: skip entries not strictly better than the recorded cost,
		//    and entries already superseded by a cheaper tentative cost.
		tile := r.res.Tiles.Ptr(e.pos)
		if tile.HasCost && r.model.Compare(e.actual, tile.Cost) >= 0 {
			r.res.Stats.Stale++
			continue
		}
		if i := r.index(e.pos); r.known[i] && r.model.Compare(e.actual, r.best[i]) > 0 {
			r.res.Stats.Stale++
			continue
		}

		// 3) Finalize.
		tile.Origin, tile.HasOrigin = e.origin, true
		tile.Cost, tile.HasCost = e.actual, true
		r.res.Stats.Finalized++
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(e.pos)
		}

		// 4) Stop at the destination.
		if r.dest != nil && e.pos == *r.dest {
			r.res.Outcome = PathFound
			r.res.Cost = e.actual
			return
		}

		// 5) Expand.
		r.relax(e)
	}
}

// relax evaluates every bounded neighbour of e.pos and pushes an entry for each
// one whose total cost strictly improves on the best known cost.
func (r *runner[T, C]) relax(e entry[C]) {
	from, _ := r.g.Get(e.pos.X, e.pos.Y)
	r.buf = r.nb.AppendPoints(r.buf[:0], e.pos, r.g.Width(), r.g.Height())

	for _, n := range r.buf {
		to, _ := r.g.Get(n.X, n.Y)
		step, ok := r.costFn(from, e.pos, to, n)
		if !ok {
			continue // no edge
		}
		step, ok = r.model.Normalize(step)
		if !ok {
			continue // invalid cost is the same as no edge
		}

		actual := r.model.Add(e.actual, step)
		i := r.index(n)
		if r.known[i] && r.model.Compare(actual, r.best[i]) >= 0 {
			continue
		}
		r.best[i], r.known[i] = actual, true

		r.push(entry[C]{
			estimated: r.estimate(actual, n),
			actual:    actual,
			pos:       n,
			origin:    e.pos,
		})
	}
}

// estimate returns actual plus the normalized heuristic towards dest.
func (r *runner[T, C]) estimate(actual C, p grid.Point) C {
	if r.dest == nil || r.h == nil {
		return actual
	}
	h, ok := r.model.Normalize(r.h(p, *r.dest))
	if !ok {
		return actual
	}

	return r.model.Add(actual, h)
}

func (r *runner[T, C]) push(e entry[C]) {
	heap.Push(&r.pq, e)
	r.res.Stats.Pushed++
}

// markPath follows origins backwards from dest, flagging every cell up to and
// including the start.
func (r *runner[T, C]) markPath() {
	p := *r.dest
	for steps := 0; steps < r.res.Tiles.Len(); steps++ {
		tile := r.res.Tiles.Ptr(p)
		tile.InShortestPath = true
		if p == r.res.start || !tile.HasOrigin {
			return
		}
		p = tile.Origin
	}
}

func (r *runner[T, C]) index(p grid.Point) int {
	return p.Y*r.g.Width() + p.X
}

// entry is a frontier record. Entries are immutable once pushed.
type entry[C any] struct {
	estimated C          // actual + heuristic; the priority key
	actual    C          // accumulated cost from the start
	pos       grid.Point // the cell this entry reaches
	origin    grid.Point // the cell it was reached from
}

// frontier is a min-heap of entries ordered by estimated cost ascending.
// We use the lazy-deletion approach: when a cheaper route to a cell is found we
// push a new entry; the outdated one stays in the heap and is discarded on pop.
type frontier[C any] struct {
	items []entry[C]
	model cost.Model[C]
}

// Len returns the number of items in the heap.
func (f frontier[C]) Len() int { return len(f.items) }

// Less orders by estimated cost; model.Compare panics on unordered values.
func (f frontier[C]) Less(i, j int) bool {
	return f.model.Compare(f.items[i].estimated, f.items[j].estimated) < 0
}

// Swap swaps two elements in the heap.
func (f frontier[C]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (f *frontier[C]) Push(x any) { f.items = append(f.items, x.(entry[C])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[C]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}
