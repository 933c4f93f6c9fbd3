package editing

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Copy copies the from rectangle of src into dst with its top-left corner at to.
// See Blend for clipping and errors.
func Copy[T any](src grid.View[T], dst grid.MutableView[T], from grid.Rect, to grid.Point) error {
	return Blend(src, dst, from, to, func(s T, d *T) { *d = s })
}

// Blend combines each cell of the from rectangle of src with the matching cell
// of dst, placed with its top-left corner at to. blender receives the source
// value and a pointer to the destination cell.
//
// The rectangle is clipped to both grids. Returns grid.ErrOutOfBounds if the
// origin of from lies outside src or to lies outside dst.
func Blend[S, D any](
	src grid.View[S],
	dst grid.MutableView[D],
	from grid.Rect,
	to grid.Point,
	blender func(s S, d *D),
) error {
	if !grid.InBounds(src, grid.Pt(from.X, from.Y)) {
		return fmt.Errorf("%w: source origin %v", grid.ErrOutOfBounds, grid.Pt(from.X, from.Y))
	}
	if err := grid.CheckBounds[D](dst, to); err != nil {
		return err
	}

	w := min(from.Width, src.Width()-from.X, dst.Width()-to.X)
	h := min(from.Height, src.Height()-from.Y, dst.Height()-to.Y)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s, _ := src.Get(from.X+dx, from.Y+dy)
			d, ok := dst.GetMut(to.X+dx, to.Y+dy)
			if !ok {
				continue
			}
			blender(s, d)
		}
	}

	return nil
}
