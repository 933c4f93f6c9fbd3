// Package editing alters the contents of grids: region growing by flood fill,
// region labelling, and rectangle copy / blend between views.
//
// What:
//
//   - FloodFill discovers the region connected to a seed cell under a caller
//     comparer and then paints every accepted cell.
//   - Discover runs only the discovery phase on a read-only view and returns the
//     tri-state table (Unvisited / Border / Paint).
//   - Components partitions a whole grid into maximal regions.
//   - Copy and Blend transfer a rectangle of cells from one view to another.
//
// Flood fill runs in two phases. Discovery is a breadth-first traversal from the
// seed using a FIFO queue and a tri-state table; a cell rejected by the
// comparer is marked Border and never examined again. Painting happens only
// after discovery is complete, so the comparer always observes pre-paint values.
//
// Complexity:
//
//   - FloodFill, Discover, Components: O(W×H×d) time, O(W×H) memory, d = 4 or 8.
//   - Copy, Blend: O(area of the clipped rectangle).
//
// Errors:
//
//   - grid.ErrOutOfBounds for a seed or rectangle origin outside its grid.
package editing
