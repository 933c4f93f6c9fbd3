// Package islands analyses "land" regions on a grid and computes minimum
// bridges between them.
//
// A cell is land when the caller's isLand predicate holds for its value; any
// other cell is water. Neighbouring land cells with equal values form one
// island, so distinct island IDs stay apart even when they touch.
//
// Bridge finds the fewest water cells that must be converted to connect two
// islands. It is a shortest-path search with 0/1 step costs: entering land
// is free, entering water costs one conversion.
//
// Complexity:
//
//   - Components: O(W×H×d), d = 4 or 8.
//   - Bridge:     O(W×H×d × log(W×H)).
package islands
