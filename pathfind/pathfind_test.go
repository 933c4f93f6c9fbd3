package pathfind_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/cost"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfind"
)

// ------------------------------------------------------------------------
// 1. Maze scenarios
// ------------------------------------------------------------------------

// MazeSuite runs every search mode over the 21×21 maze fixture.
type MazeSuite struct {
	suite.Suite
	maze        *grid.Dense[byte]
	start, dest grid.Point
}

func (s *MazeSuite) SetupTest() {
	s.maze, s.start, s.dest = loadMaze(s.T())
}

// TestResultStart checks the result remembers where the search began.
func (s *MazeSuite) TestResultStart() {
	res, err := pathfind.ToWhole(s.maze, s.start, grid.Bordering, unitCost)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.start, res.Start())
	require.Equal(s.T(), []grid.Point{s.start}, res.PathTo(res.Start()))
}

// TestDijkstraCost checks the unit-cost shortest route under Adjacent movement.
func (s *MazeSuite) TestDijkstraCost() {
	res, err := pathfind.ToDest(s.maze, s.start, s.dest, grid.Adjacent, unitCost)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pathfind.PathFound, res.Outcome)
	require.Equal(s.T(), uint32(mazeAdjacentCost), res.Cost)
}

// TestAStarMatchesDijkstra verifies that the admissible Manhattan heuristic keeps
// the optimal cost while finalizing no more cells than Dijkstra.
func (s *MazeSuite) TestAStarMatchesDijkstra() {
	dj, err := pathfind.ToDest(s.maze, s.start, s.dest, grid.Adjacent, unitCost)
	require.NoError(s.T(), err)
	as, err := pathfind.ToDestHeuristic(s.maze, s.start, s.dest, grid.Adjacent, unitCost, pathfind.Manhattan[uint32])
	require.NoError(s.T(), err)

	require.Equal(s.T(), pathfind.PathFound, as.Outcome)
	require.Equal(s.T(), dj.Cost, as.Cost)
	require.LessOrEqual(s.T(), as.Stats.Finalized, dj.Stats.Finalized)
	require.Equal(s.T(), as.Stats.Finalized, as.VisitedCount())

	// The zero heuristic reproduces Dijkstra exactly.
	zero, err := pathfind.ToDestHeuristic(s.maze, s.start, s.dest, grid.Adjacent, unitCost, pathfind.Zero[uint32])
	require.NoError(s.T(), err)
	require.Equal(s.T(), dj.Cost, zero.Cost)
	require.Equal(s.T(), dj.Stats, zero.Stats)
}

// TestBorderingCost checks diagonal movement and the Chebyshev heuristic.
func (s *MazeSuite) TestBorderingCost() {
	dj, err := pathfind.ToDest(s.maze, s.start, s.dest, grid.Bordering, unitCost)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint32(mazeBorderingCost), dj.Cost)

	as, err := pathfind.ToDestHeuristic(s.maze, s.start, s.dest, grid.Bordering, unitCost, pathfind.Chebyshev[uint32])
	require.NoError(s.T(), err)
	require.Equal(s.T(), dj.Cost, as.Cost)
}

// TestPathReconstruction walks the path and checks every structural property.
func (s *MazeSuite) TestPathReconstruction() {
	for _, nb := range []grid.Neighbors{grid.Adjacent, grid.Bordering} {
		res, err := pathfind.ToDest(s.maze, s.start, s.dest, nb, unitCost)
		require.NoError(s.T(), err)

		path := res.Path()
		require.NotEmpty(s.T(), path)
		require.Equal(s.T(), s.start, path[0])
		require.Equal(s.T(), s.dest, path[len(path)-1])

		var sum uint32
		for i := 1; i < len(path); i++ {
			require.True(s.T(), isNeighbor(path[i-1], path[i], nb), "%v→%v under %v", path[i-1], path[i], nb)
			step, ok := unitCost(s.maze.At(path[i-1]), path[i-1], s.maze.At(path[i]), path[i])
			require.True(s.T(), ok)
			sum += step
		}
		require.Equal(s.T(), res.Cost, sum)

		// Exactly the path cells carry the flag.
		flagged := 0
		res.Tiles.Each(func(p grid.Point, t pathfind.Tile[uint32]) {
			if t.InShortestPath {
				flagged++
			}
		})
		require.Equal(s.T(), len(path), flagged)
		for _, p := range path {
			tile, ok := res.Tile(p)
			require.True(s.T(), ok)
			require.True(s.T(), tile.InShortestPath)
		}
	}
}

// TestWholeMatchesBFS runs the exhaustive mode and compares every cell with BFS.
func (s *MazeSuite) TestWholeMatchesBFS() {
	res, err := pathfind.ToWhole(s.maze, s.start, grid.Adjacent, unitCost)
	require.NoError(s.T(), err)
	require.Equal(s.T(), pathfind.MultipleDestinations, res.Outcome)
	require.Equal(s.T(), mazeOpenCells, res.VisitedCount())

	ref := bfsDistances(s.maze, s.start, grid.Adjacent)
	res.Tiles.Each(func(p grid.Point, t pathfind.Tile[uint32]) {
		d, ok := ref[p]
		require.Equal(s.T(), ok, t.HasCost, "reachability of %v", p)
		if ok {
			require.Equal(s.T(), uint32(d), t.Cost, "cost of %v", p)
		}
		require.False(s.T(), t.InShortestPath)
	})

	// PathTo works for any reached cell after an exhaustive run.
	path := res.PathTo(s.dest)
	require.Len(s.T(), path, mazeAdjacentCost+1)
	require.Nil(s.T(), res.Path())
	require.Nil(s.T(), res.PathTo(grid.Pt(0, 0)))
}

func TestMazeSuite(t *testing.T) {
	suite.Run(t, new(MazeSuite))
}

// ------------------------------------------------------------------------
// 2. Validation
// ------------------------------------------------------------------------

// TestOutOfBounds ensures bad coordinates fail before any work is done.
func TestOutOfBounds(t *testing.T) {
	m, start, dest := loadMaze(t)
	calls := 0
	counting := func(a byte, ap grid.Point, b byte, bp grid.Point) (uint32, bool) {
		calls++
		return unitCost(a, ap, b, bp)
	}

	cases := []struct {
		name        string
		start, dest grid.Point
	}{
		{"StartNegative", grid.Pt(-1, 0), dest},
		{"StartTooWide", grid.Pt(21, 1), dest},
		{"DestTooTall", start, grid.Pt(1, 21)},
		{"DestNegative", start, grid.Pt(0, -3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pathfind.ToDest(m, tc.start, tc.dest, grid.Adjacent, counting)
			assert.ErrorIs(t, err, grid.ErrOutOfBounds)
			assert.Nil(t, res)
		})
	}

	res, err := pathfind.ToWhole(m, grid.Pt(5, 99), grid.Adjacent, counting)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Nil(t, res)
	assert.Zero(t, calls, "cost function must not run on invalid input")
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

// TestStartIsDest expects a zero-cost path made of the start alone.
func TestStartIsDest(t *testing.T) {
	m, start, _ := loadMaze(t)
	res, err := pathfind.ToDest(m, start, start, grid.Adjacent, unitCost)
	require.NoError(t, err)
	assert.Equal(t, pathfind.PathFound, res.Outcome)
	assert.Equal(t, uint32(0), res.Cost)
	assert.Equal(t, []grid.Point{start}, res.Path())

	tile, _ := res.Tile(start)
	assert.True(t, tile.InShortestPath)
	assert.Equal(t, start, tile.Origin, "the start is its own origin")
}

// TestUnreachable walls the destination off completely.
func TestUnreachable(t *testing.T) {
	m, err := grid.ParseLines([]string{
		"S.#..",
		"..#.D",
		"..#..",
	})
	require.NoError(t, err)

	res, err := pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(4, 1), grid.Bordering, unitCost)
	require.NoError(t, err)
	assert.Equal(t, pathfind.PathNotFound, res.Outcome)
	assert.Nil(t, res.Path())
	assert.Equal(t, 6, res.VisitedCount())
	res.Tiles.Each(func(_ grid.Point, tile pathfind.Tile[uint32]) {
		assert.False(t, tile.InShortestPath)
	})
}

// TestSingleCell covers the smallest possible grid.
func TestSingleCell(t *testing.T) {
	m, err := grid.ParseLines([]string{"."})
	require.NoError(t, err)
	res, err := pathfind.ToWhole(m, grid.Pt(0, 0), grid.Bordering, unitCost)
	require.NoError(t, err)
	assert.Equal(t, 1, res.VisitedCount())
	assert.Equal(t, 1, res.Stats.Pushed)
}

// ------------------------------------------------------------------------
// 4. Properties on random grids
// ------------------------------------------------------------------------

// TestRandomGrids_MatchBFS compares Dijkstra and A* with a BFS reference on many
// deterministic random grids.
func TestRandomGrids_MatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		m := randomMap(t, rng, w, h, 0.3)
		start := grid.Pt(rng.Intn(w), rng.Intn(h))
		dest := grid.Pt(rng.Intn(w), rng.Intn(h))

		for _, nb := range []grid.Neighbors{grid.Adjacent, grid.Bordering} {
			heur := pathfind.Manhattan[uint32]
			if nb == grid.Bordering {
				heur = pathfind.Chebyshev[uint32]
			}
			ref := bfsDistances(m, start, nb)
			want, reachable := ref[dest]

			dj, err := pathfind.ToDest(m, start, dest, nb, unitCost)
			require.NoError(t, err)
			as, err := pathfind.ToDestHeuristic(m, start, dest, nb, unitCost, heur)
			require.NoError(t, err)

			if !reachable {
				require.Equal(t, pathfind.PathNotFound, dj.Outcome, "iter %d", iter)
				require.Equal(t, pathfind.PathNotFound, as.Outcome, "iter %d", iter)
				continue
			}
			require.Equal(t, pathfind.PathFound, dj.Outcome, "iter %d", iter)
			require.Equal(t, uint32(want), dj.Cost, "iter %d dijkstra", iter)
			require.Equal(t, uint32(want), as.Cost, "iter %d astar", iter)
			require.Len(t, as.Path(), want+1, "iter %d", iter)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Cost models
// ------------------------------------------------------------------------

// weighted reads a digit grid where entering a cell costs its digit.
func weighted(t *testing.T, lines ...string) *grid.Dense[byte] {
	t.Helper()
	m, err := grid.ParseLines(lines)
	require.NoError(t, err)
	return m
}

// TestFloatCosts_InvalidEdgesSkipped treats NaN, ±Inf and negative steps as walls.
func TestFloatCosts_InvalidEdgesSkipped(t *testing.T) {
	// Row 0 is the direct route; its middle cells are priced with invalid values.
	m := weighted(t,
		"0nip0",
		"11111",
	)
	price := func(_ byte, _ grid.Point, to byte, _ grid.Point) (float64, bool) {
		switch to {
		case 'n':
			return math.NaN(), true
		case 'i':
			return math.Inf(1), true
		case 'p':
			return -2, true
		default:
			return float64(to-'0') + 0.5, true
		}
	}

	res, err := pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(4, 0), grid.Adjacent, price)
	require.NoError(t, err)
	require.Equal(t, pathfind.PathFound, res.Outcome)
	// down (1.5) + 4 × right (1.5 each) + up (0.5)
	assert.InDelta(t, 8.0, res.Cost, 1e-9)
	for x := 1; x <= 3; x++ {
		assert.False(t, res.Reached(grid.Pt(x, 0)), "cell %d,0 must stay unreached", x)
	}
}

// TestFloatCosts_NegativeZeroIsZero accepts -0 steps as free moves.
func TestFloatCosts_NegativeZeroIsZero(t *testing.T) {
	m := weighted(t, "....")
	negZero := func(byte, grid.Point, byte, grid.Point) (float64, bool) {
		return math.Copysign(0, -1), true
	}
	res, err := pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(3, 0), grid.Adjacent, negZero)
	require.NoError(t, err)
	require.Equal(t, pathfind.PathFound, res.Outcome)
	assert.False(t, math.Signbit(res.Cost))
	assert.Equal(t, 0.0, res.Cost)
}

// TestWeighted_PrefersCheapDetour checks a weighted grid where the straight line is expensive.
func TestWeighted_PrefersCheapDetour(t *testing.T) {
	m := weighted(t,
		"19991",
		"11111",
	)
	price := func(_ byte, _ grid.Point, to byte, _ grid.Point) (int, bool) {
		return int(to - '0'), true
	}
	res, err := pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(4, 0), grid.Adjacent, price)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Cost)
	assert.Equal(t, []grid.Point{
		grid.Pt(0, 0), grid.Pt(0, 1), grid.Pt(1, 1), grid.Pt(2, 1),
		grid.Pt(3, 1), grid.Pt(4, 1), grid.Pt(4, 0),
	}, res.Path())

	// Negative signed steps are rejected like walls.
	neg := func(byte, grid.Point, byte, grid.Point) (int, bool) { return -1, true }
	res, err = pathfind.ToDest(m, grid.Pt(0, 0), grid.Pt(4, 0), grid.Adjacent, neg)
	require.NoError(t, err)
	assert.Equal(t, pathfind.PathNotFound, res.Outcome)
	assert.Equal(t, 1, res.VisitedCount())
}

// TestHeuristic_InvalidValuesAreZero treats a NaN heuristic as the zero heuristic.
func TestHeuristic_InvalidValuesAreZero(t *testing.T) {
	m, start, dest := loadMaze(t)
	price := func(_ byte, _ grid.Point, to byte, _ grid.Point) (float64, bool) {
		return 1, to != '#'
	}
	nan := func(grid.Point, grid.Point) float64 { return math.NaN() }

	res, err := pathfind.ToDestHeuristic(m, start, dest, grid.Adjacent, price, nan)
	require.NoError(t, err)
	assert.Equal(t, float64(mazeAdjacentCost), res.Cost)
}

// TestHeuristic_Overestimating still reaches the destination, possibly suboptimally.
func TestHeuristic_Overestimating(t *testing.T) {
	m, start, dest := loadMaze(t)
	res, err := pathfind.ToDestHeuristic(m, start, dest, grid.Adjacent, unitCost,
		pathfind.Scaled(pathfind.Manhattan[uint32], 10))
	require.NoError(t, err)
	require.Equal(t, pathfind.PathFound, res.Outcome)
	assert.GreaterOrEqual(t, res.Cost, uint32(mazeAdjacentCost))
	path := res.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, dest, path[len(path)-1])
	assert.LessOrEqual(t, len(path)-1, int(res.Cost))
}

// turns is a custom lexicographic cost: fewer walls crossed first, then distance.
type turns struct {
	walls, steps uint
}

type turnsModel struct{}

func (turnsModel) Compare(a, b turns) int {
	switch {
	case a.walls != b.walls:
		return cost.Unsigned[uint]{}.Compare(a.walls, b.walls)
	default:
		return cost.Unsigned[uint]{}.Compare(a.steps, b.steps)
	}
}
func (turnsModel) Zero() turns                     { return turns{} }
func (turnsModel) Add(a, b turns) turns            { return turns{a.walls + b.walls, a.steps + b.steps} }
func (turnsModel) Normalize(c turns) (turns, bool) { return c, true }

// TestSearch_CustomModel runs the general entry point with a non-numeric cost.
func TestSearch_CustomModel(t *testing.T) {
	m := weighted(t,
		"S#D",
		"...",
	)
	price := func(_ byte, _ grid.Point, to byte, _ grid.Point) (turns, bool) {
		if to == '#' {
			return turns{walls: 1, steps: 1}, true
		}
		return turns{steps: 1}, true
	}
	dest := grid.Pt(2, 0)
	res, err := pathfind.Search[byte, turns](m, turnsModel{}, grid.Pt(0, 0), &dest, grid.Adjacent, price, nil)
	require.NoError(t, err)
	require.Equal(t, pathfind.PathFound, res.Outcome)
	// Going around (4 steps, 0 walls) beats going through (2 steps, 1 wall).
	assert.Equal(t, turns{walls: 0, steps: 4}, res.Cost)
}

// brokenModel lets NaN through normalization, violating the cost contract.
type brokenModel struct{ cost.Float[float64] }

func (brokenModel) Normalize(c float64) (float64, bool) { return c, true }

// TestSearch_UnorderedPanics verifies the fail-fast contract on unordered costs.
func TestSearch_UnorderedPanics(t *testing.T) {
	m := weighted(t, "...")
	nan := func(byte, grid.Point, byte, grid.Point) (float64, bool) { return math.NaN(), true }
	err := panicError(t, func() {
		_, _ = pathfind.Search[byte, float64](m, brokenModel{}, grid.Pt(1, 0), nil, grid.Adjacent, nan, nil)
	})
	assert.ErrorIs(t, err, cost.ErrUnordered)
}

// TestNarrowCost_Overflow runs a uint8-priced corridor past the type's range:
// the search must fail fast instead of reporting a wrapped cost.
func TestNarrowCost_Overflow(t *testing.T) {
	step := func(byte, grid.Point, byte, grid.Point) (uint8, bool) { return 1, true }

	short, err := grid.NewDense[byte](200, 1)
	require.NoError(t, err)
	res, err := pathfind.ToDest(short, grid.Pt(0, 0), grid.Pt(199, 0), grid.Adjacent, step)
	require.NoError(t, err)
	require.Equal(t, pathfind.PathFound, res.Outcome)
	assert.Equal(t, uint8(199), res.Cost)
	assert.Len(t, res.Path(), 200)

	long, err := grid.NewDense[byte](300, 1)
	require.NoError(t, err)
	err = panicError(t, func() {
		_, _ = pathfind.ToDest(long, grid.Pt(0, 0), grid.Pt(299, 0), grid.Adjacent, step)
	})
	assert.ErrorIs(t, err, cost.ErrOverflow)
}

// panicError runs fn, requires it to panic with an error and returns that error.
func panicError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic payload %T is not an error", r)
	}()
	fn()

	return nil
}

// ------------------------------------------------------------------------
// 6. Options
// ------------------------------------------------------------------------

// TestOptions_LoggerAndHook checks the debug summary and the finalize hook.
func TestOptions_LoggerAndHook(t *testing.T) {
	m, start, dest := loadMaze(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var order []grid.Point
	res, err := pathfind.ToDest(m, start, dest, grid.Adjacent, unitCost,
		pathfind.WithLogger(logger),
		pathfind.WithOnFinalize(func(p grid.Point) { order = append(order, p) }),
	)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "pathfind finished")
	assert.Contains(t, buf.String(), "outcome=\"path found\"")
	require.Len(t, order, res.Stats.Finalized)
	assert.Equal(t, start, order[0])
	assert.Equal(t, dest, order[len(order)-1])
	assert.GreaterOrEqual(t, res.Stats.Pushed, res.Stats.Popped)
	assert.Equal(t, res.Stats.Popped, res.Stats.Finalized+res.Stats.Stale)
}

// TestOutcome_String covers the outcome names.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "multiple destinations", pathfind.MultipleDestinations.String())
	assert.Equal(t, "path found", pathfind.PathFound.String())
	assert.Equal(t, "path not found", pathfind.PathNotFound.String())
	assert.Equal(t, "unknown", pathfind.Outcome(9).String())
}
