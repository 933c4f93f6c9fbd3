package pathfind

import (
	"github.com/katalvlaran/gridwalk/cost"
	"github.com/katalvlaran/gridwalk/grid"
)

// Manhattan is |dx| + |dy|: admissible for unit-cost Adjacent movement.
func Manhattan[C cost.Number](p, dest grid.Point) C {
	return C(abs(p.X-dest.X) + abs(p.Y-dest.Y))
}

// Chebyshev is max(|dx|, |dy|): admissible for unit-cost Bordering movement.
func Chebyshev[C cost.Number](p, dest grid.Point) C {
	return C(max(abs(p.X-dest.X), abs(p.Y-dest.Y)))
}

// Scaled multiplies h by factor. A factor above 1 usually overestimates,
// trading optimality for fewer expansions.
func Scaled[C cost.Number](h Heuristic[C], factor C) Heuristic[C] {
	return func(p, dest grid.Point) C {
		return h(p, dest) * factor
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Zero always returns 0; A* with Zero behaves exactly like Dijkstra.
func Zero[C cost.Number](grid.Point, grid.Point) C { return 0 }
