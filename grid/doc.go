// Package grid defines the rectangular, bounds-checked cell containers that the
// gridwalk traversal algorithms operate on.
//
// What:
//
//   - View[T]:        read-only contract (Width, Height, Get) consumed by pathfind.
//   - MutableView[T]: View plus GetMut, consumed by editing.FloodFill.
//   - Dense[T]:       row-major container (owned or borrowed backing slice).
//   - Rows[T]:        zero-copy adapter over a caller-owned [][]T.
//   - Neighbors:      the neighbour policy, Adjacent (4) or Bordering (8).
//
// Why:
//
//   - Algorithms never care how cells are stored; any type satisfying View
//     (or MutableView) can be searched or filled.
//   - Neighbour generation is bounds-clipped once, here, so algorithms never
//     touch out-of-range coordinates.
//
// Coordinates:
//
//	(0,0) is the top-left cell, X grows to the right and Y grows downwards.
//	A cell (x,y) is valid iff 0 ≤ x < Width() and 0 ≤ y < Height().
//
// Complexity:
//
//   - Get / GetMut / At / Set:  O(1).
//   - FromRows / ParseLines:    O(W×H) time and memory (deep copy).
//   - Wrap:                     O(1), the slice is borrowed, not copied.
//   - Neighbors.AppendPoints:   O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrOutOfBounds:      a coordinate lies outside the grid.
//   - ErrIncompatibleSize: a backing slice does not match the requested shape.
//   - ErrEmptyGrid:        input has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
package grid
