package layout

import "github.com/pidcanvas/pidcanvas/pkg/graph"

// =============================================================================
// Viewport Fitting
// =============================================================================

// DefaultFitPadding is the margin kept around the content when fitting.
const DefaultFitPadding = 30

// Viewport is a pan/zoom transform mapping scene coordinates onto a frame.
type Viewport struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// Fit computes the viewport that centers the scene's positioned nodes in a
// frame of the given size, keeping padding units of margin and never
// scaling up past 1. An empty or unpositioned scene fits at scale 1,
// centered on the origin.
func Fit(s graph.Scene, frameW, frameH, padding float64) Viewport {
	minX, minY, maxX, maxY, ok := bounds(s.Nodes)
	if !ok {
		return Viewport{Scale: 1, OffsetX: frameW / 2, OffsetY: frameH / 2}
	}

	contentW := maxX - minX
	contentH := maxY - minY
	availW := frameW - 2*padding
	availH := frameH - 2*padding

	scale := 1.0
	if contentW > 0 && availW/contentW < scale {
		scale = availW / contentW
	}
	if contentH > 0 && availH/contentH < scale {
		scale = availH / contentH
	}
	if scale <= 0 {
		scale = 1
	}

	// Center the scaled content in the frame.
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	return Viewport{
		Scale:   scale,
		OffsetX: frameW/2 - cx*scale,
		OffsetY: frameH/2 - cy*scale,
	}
}

func bounds(nodes []graph.Node) (minX, minY, maxX, maxY float64, ok bool) {
	for _, n := range nodes {
		if n.Position == nil {
			continue
		}
		p := *n.Position
		if !ok {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			ok = true
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY, ok
}
