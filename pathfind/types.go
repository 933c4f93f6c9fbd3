package pathfind

import (
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridwalk/grid"
)

// CostFunc returns the cost of stepping from fromPos to toPos, or false when no
// such step exists. The cell values are passed for convenience.
type CostFunc[T, C any] func(from T, fromPos grid.Point, to T, toPos grid.Point) (C, bool)

// Heuristic estimates the remaining cost from pos to dest.
type Heuristic[C any] func(pos, dest grid.Point) C

// Outcome summarizes a search run.
type Outcome int

const (
	// MultipleDestinations means the search ran to exhaustion with no single target.
	MultipleDestinations Outcome = iota
	// PathFound means the destination was reached; Result.Cost holds the path cost.
	PathFound
	// PathNotFound means a destination was given but cannot be reached.
	PathNotFound
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case MultipleDestinations:
		return "multiple destinations"
	case PathFound:
		return "path found"
	case PathNotFound:
		return "path not found"
	default:
		return "unknown"
	}
}

// Tile is the per-cell record of a search run.
type Tile[C any] struct {
	// Origin is the predecessor that produced Cost; valid iff HasOrigin.
	// The start cell is its own origin.
	Origin    grid.Point
	HasOrigin bool
	// Cost is the best cost found to reach this cell; valid iff HasCost.
	Cost    C
	HasCost bool
	// InShortestPath marks cells on the reconstructed start→destination path.
	// Only meaningful when the outcome is PathFound.
	InShortestPath bool
}

// Stats counts frontier activity during a run.
type Stats struct {
	Pushed    int // entries pushed onto the frontier, including the start
	Popped    int // entries popped from the frontier
	Stale     int // popped entries discarded by lazy deletion
	Finalized int // cells whose cost was recorded
}

// Options configures optional behavior of a search run.
//
// Logger     – if non-nil, receives a debug record summarizing each run.
// OnFinalize – if non-nil, called each time a cell's cost is recorded.
type Options struct {
	Logger     *slog.Logger
	OnFinalize func(p grid.Point)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an Options struct with no logger and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger routes a per-run debug summary to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnFinalize registers fn to be called whenever a cell's best cost is
// recorded, in the order cells leave the frontier.
func WithOnFinalize(fn func(p grid.Point)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}
