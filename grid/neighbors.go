package grid

import (
	"fmt"
	"strings"
)

// Neighbors selects which cells count as adjacent to a given cell.
type Neighbors int

const (
	// Adjacent uses the 4 orthogonally touching cells: W, S, E, N.
	Adjacent Neighbors = iota
	// Bordering uses all 8 surrounding cells, including the corner-touching ones.
	Bordering
)

// Precomputed offsets per policy. Enumeration order is an implementation
// detail and must not be relied upon.
var (
	adjacentOffsets  = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	borderingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}}
)

// Count returns the maximum number of neighbours: 4 or 8.
func (n Neighbors) Count() int {
	if n == Bordering {
		return 8
	}

	return 4
}

// Prealloc returns an empty slice with capacity Count(), to be reused across
// AppendPoints calls.
func (n Neighbors) Prealloc() []Point {
	return make([]Point, 0, n.Count())
}

// offsets returns the precomputed offset table for n.
// Should be used in all adjacency traversals to avoid branching.
func (n Neighbors) offsets() [][2]int {
	if n == Bordering {
		return borderingOffsets[:]
	}

	return adjacentOffsets[:]
}

// AppendPoints appends to dst every neighbour of p that lies inside
// [0,width)×[0,height) and returns the extended slice.
// Pass dst[:0] to reuse a buffer without reallocation.
// Complexity: O(d), d = 4 or 8.
func (n Neighbors) AppendPoints(dst []Point, p Point, width, height int) []Point {
	for _, d := range n.offsets() {
		x, y := p.X+d[0], p.Y+d[1]
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		dst = append(dst, Point{X: x, Y: y})
	}

	return dst
}

// Points returns the bounded neighbours of p in a freshly allocated slice.
func (n Neighbors) Points(p Point, width, height int) []Point {
	return n.AppendPoints(n.Prealloc(), p, width, height)
}

// String returns "adjacent" or "bordering".
func (n Neighbors) String() string {
	switch n {
	case Adjacent:
		return "adjacent"
	case Bordering:
		return "bordering"
	default:
		return fmt.Sprintf("Neighbors(%d)", int(n))
	}
}

// ParseNeighbors accepts "adjacent"/"4" or "bordering"/"8" (case-insensitive).
func ParseNeighbors(s string) (Neighbors, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent", "4", "conn4":
		return Adjacent, nil
	case "bordering", "8", "conn8":
		return Bordering, nil
	default:
		return Adjacent, fmt.Errorf("grid: unknown neighbour policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Neighbors) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Neighbors) UnmarshalText(text []byte) error {
	v, err := ParseNeighbors(string(text))
	if err != nil {
		return err
	}
	*n = v

	return nil
}
