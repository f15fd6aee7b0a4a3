package layout

import (
	"math"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// =============================================================================
// Grid Snapping
// =============================================================================

// Snap rounds p to the nearest multiple of grid in both axes, so manual
// arrangements stay visually aligned. A grid of zero or less returns p
// unchanged.
func Snap(p graph.Position, grid float64) graph.Position {
	if grid <= 0 {
		return p
	}
	return graph.Position{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}

// SnapAll returns a copy of positions with every entry snapped to grid.
func SnapAll(positions map[string]graph.Position, grid float64) map[string]graph.Position {
	out := make(map[string]graph.Position, len(positions))
	for id, p := range positions {
		out[id] = Snap(p, grid)
	}
	return out
}
