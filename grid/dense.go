package grid

import "fmt"

// Dense is a row-major W×H container. Cell (x,y) lives at cells[y*width+x].
// A Dense built by Wrap borrows the caller's slice; writes are visible to the caller.
type Dense[T any] struct {
	width, height int
	cells         []T
}

// NewDense allocates a width×height grid with every cell set to the zero value.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H).
func NewDense[T any](width, height int) (*Dense[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Dense[T]{width: width, height: height, cells: make([]T, width*height)}, nil
}

// Filled allocates a width×height grid with every cell set to v.
// Complexity: O(W×H).
func Filled[T any](v T, width, height int) (*Dense[T], error) {
	d, err := NewDense[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range d.cells {
		d.cells[i] = v
	}

	return d, nil
}

// FromRows builds a Dense from a non-empty, rectangular 2D slice.
// It deep-copies the input; later changes to values do not affect the grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func FromRows[T any](values [][]T) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]T, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Dense[T]{width: w, height: h, cells: cells}, nil
}

// Wrap borrows data as a grid of the given width; height is len(data)/width.
// Returns ErrIncompatibleSize if width is not positive or len(data) is not a
// positive multiple of width.
// Complexity: O(1).
func Wrap[T any](data []T, width int) (*Dense[T], error) {
	if width <= 0 || len(data) == 0 || len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not form rows of width %d", ErrIncompatibleSize, len(data), width)
	}

	return &Dense[T]{width: width, height: len(data) / width, cells: data}, nil
}

// Width returns the number of columns.
func (d *Dense[T]) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense[T]) Height() int { return d.height }

// Len returns the number of cells, Width()×Height().
func (d *Dense[T]) Len() int { return len(d.cells) }

// Get returns the value at (x,y), or false when out of range.
// Complexity: O(1).
func (d *Dense[T]) Get(x, y int) (T, bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		var zero T
		return zero, false
	}

	return d.cells[d.index(x, y)], true
}

// GetMut returns a pointer to the cell at (x,y), or false when out of range.
// Complexity: O(1).
func (d *Dense[T]) GetMut(x, y int) (*T, bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return nil, false
	}

	return &d.cells[d.index(x, y)], true
}

// At returns the value at p and panics when p is out of range.
func (d *Dense[T]) At(p Point) T {
	return *d.mustPtr(p)
}

// Ptr returns a pointer to the cell at p and panics when p is out of range.
func (d *Dense[T]) Ptr(p Point) *T {
	return d.mustPtr(p)
}

// Set stores v at p and panics when p is out of range.
func (d *Dense[T]) Set(p Point, v T) {
	*d.mustPtr(p) = v
}

// Cells exposes the row-major backing slice.
func (d *Dense[T]) Cells() []T { return d.cells }

// Row returns the y-th row as a sub-slice of the backing storage.
// Panics when y is out of range.
func (d *Dense[T]) Row(y int) []T {
	if y < 0 || y >= d.height {
		panic(fmt.Sprintf("%v: row %d of %d", ErrOutOfBounds, y, d.height))
	}

	return d.cells[y*d.width : (y+1)*d.width]
}

// Each calls fn for every cell in row-major order.
func (d *Dense[T]) Each(fn func(p Point, v T)) {
	for i, v := range d.cells {
		fn(d.Coordinate(i), v)
	}
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (d *Dense[T]) Coordinate(idx int) Point {
	return Point{X: idx % d.width, Y: idx / d.width}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (d *Dense[T]) index(x, y int) int {
	return y*d.width + x
}

func (d *Dense[T]) mustPtr(p Point) *T {
	ptr, ok := d.GetMut(p.X, p.Y)
	if !ok {
		panic(fmt.Sprintf("%v: %v in %dx%d grid", ErrOutOfBounds, p, d.width, d.height))
	}

	return ptr
}
