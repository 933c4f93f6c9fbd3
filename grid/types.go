package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrIncompatibleSize indicates a backing slice whose length does not fit the requested shape.
	ErrIncompatibleSize = errors.New("grid: incompatible argument size")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Point addresses a single cell.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle of cells with its top-left corner at (X,Y).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x,y) lies inside r.
// Complexity: O(1).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// View is the read-only contract consumed by the search algorithms.
//
// Get must return false for any coordinate outside [0,Width)×[0,Height).
type View[T any] interface {
	Width() int
	Height() int
	Get(x, y int) (T, bool)
}

// MutableView adds in-place access. Each (x,y) must address exactly one
// memory location: distinct coordinates never alias.
type MutableView[T any] interface {
	View[T]
	GetMut(x, y int) (*T, bool)
}

// Bounds returns the rectangle covering the whole of v.
func Bounds[T any](v View[T]) Rect {
	return Rect{Width: v.Width(), Height: v.Height()}
}

// InBounds reports whether p addresses a cell of v.
// Complexity: O(1).
func InBounds[T any](v View[T], p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < v.Width() && p.Y < v.Height()
}

// CheckBounds returns ErrOutOfBounds, annotated with p and the grid extents,
// when p does not address a cell of v.
func CheckBounds[T any](v View[T], p Point) error {
	if !InBounds(v, p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, v.Width(), v.Height())
	}

	return nil
}
