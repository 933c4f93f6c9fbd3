package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

// mazeLines is a 21×21 maze with start S at (3,1) and destination D at (19,19).
// Every one of its 199 open cells is reachable from S.
var mazeLines = []string{
	"#####################",
	"#..S#.............#.#",
	"#.###.#.#.#.#####.#.#",
	"#...#.#.#.#.....#.#.#",
	"#.###.#.#.#.#####.#.#",
	"#...#.#.#.#...#.#...#",
	"#.#####.#######.#.#.#",
	"#.#.....#.#.......#.#",
	"#.#####.#.#####.#####",
	"#.....#.......#.#.#.#",
	"#.###.#.#.#######.#.#",
	"#.#.....#.#.#.#...#.#",
	"#.#.#######.#.#.###.#",
	"#.#.......#.........#",
	"#.###.###.#.#######.#",
	"#.#...#...#...#.....#",
	"#.###.###.#######.###",
	"#.#.#...#...#.#.....#",
	"#.#.#####.#.#.###.#.#",
	"#...#.....#.......#D#",
	"#####################",
}

const (
	mazeAdjacentCost  = 46
	mazeBorderingCost = 33
	mazeOpenCells     = 199
)

// loadMaze parses mazeLines and locates S and D.
func loadMaze(t testing.TB) (m *grid.Dense[byte], start, dest grid.Point) {
	t.Helper()
	m, err := grid.ParseLines(mazeLines)
	require.NoError(t, err)
	start, ok := grid.Find[byte](m, 'S')
	require.True(t, ok)
	dest, ok = grid.Find[byte](m, 'D')
	require.True(t, ok)

	return m, start, dest
}

// unitCost prices every step into a non-wall cell at 1.
func unitCost(_ byte, _ grid.Point, to byte, _ grid.Point) (uint32, bool) {
	if to == '#' {
		return 0, false
	}
	return 1, true
}

// bfsDistances is an independent reference: unit-cost breadth-first distances
// from start, entering only non-wall cells.
func bfsDistances(m *grid.Dense[byte], start grid.Point, nb grid.Neighbors) map[grid.Point]int {
	dist := map[grid.Point]int{start: 0}
	queue := []grid.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range nb.Points(u, m.Width(), m.Height()) {
			if m.At(v) == '#' {
				continue
			}
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// randomMap builds a w×h map with roughly density walls, deterministic per rng.
func randomMap(t testing.TB, rng *rand.Rand, w, h int, density float64) *grid.Dense[byte] {
	t.Helper()
	m, err := grid.Filled[byte]('.', w, h)
	require.NoError(t, err)
	for i := range m.Cells() {
		if rng.Float64() < density {
			m.Cells()[i] = '#'
		}
	}
	return m
}

// isNeighbor reports whether b is one step from a under nb.
func isNeighbor(a, b grid.Point, nb grid.Neighbors) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > 1 || dy > 1 || dx+dy == 0 {
		return false
	}
	return nb == grid.Bordering || dx+dy == 1
}
