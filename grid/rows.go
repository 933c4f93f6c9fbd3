package grid

// Rows adapts a caller-owned [][]T to MutableView without copying.
// The slice must be rectangular and non-empty; use FromRows to validate and copy.
type Rows[T any] [][]T

// Width returns the length of the first row, or 0 for an empty grid.
func (r Rows[T]) Width() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}

// Height returns the number of rows.
func (r Rows[T]) Height() int { return len(r) }

// Get returns r[y][x], or false when out of range.
func (r Rows[T]) Get(x, y int) (T, bool) {
	if y < 0 || y >= len(r) || x < 0 || x >= len(r[y]) {
		var zero T
		return zero, false
	}

	return r[y][x], true
}

// GetMut returns &r[y][x], or false when out of range.
func (r Rows[T]) GetMut(x, y int) (*T, bool) {
	if y < 0 || y >= len(r) || x < 0 || x >= len(r[y]) {
		return nil, false
	}

	return &r[y][x], true
}
