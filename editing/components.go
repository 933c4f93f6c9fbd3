package editing

import "github.com/katalvlaran/gridwalk/grid"

// Components partitions g into maximal regions: two neighbouring cells belong to
// the same region when same(a, b) holds for their values. same should be
// symmetric.
//
// Regions are returned in row-major order of their first cell; cells within a
// region are in breadth-first order from that cell. Every cell of g appears in
// exactly one region.
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for seen flags and output.
func Components[T any](g grid.View[T], nb grid.Neighbors, same func(a, b T) bool) [][]grid.Point {
	w, h := g.Width(), g.Height()
	seen := make([]bool, w*h)
	buf := nb.Prealloc()
	var comps [][]grid.Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[y*w+x] {
				continue
			}
			// BFS to collect component
			seen[y*w+x] = true
			comp := []grid.Point{grid.Pt(x, y)}
			for qi := 0; qi < len(comp); qi++ {
				u := comp[qi]
				uv, _ := g.Get(u.X, u.Y)
				buf = nb.AppendPoints(buf[:0], u, w, h)
				for _, v := range buf {
					vi := v.Y*w + v.X
					if seen[vi] {
						continue
					}
					if vv, _ := g.Get(v.X, v.Y); same(uv, vv) {
						seen[vi] = true
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
