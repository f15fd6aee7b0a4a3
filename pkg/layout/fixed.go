package layout

import (
	"context"
	"time"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
	"github.com/pidcanvas/pidcanvas/pkg/observability"
)

// =============================================================================
// Fixed Engine
// =============================================================================

// Fixed builds a scene without moving any node. Position priority per node:
// an explicit position on the input node wins, then a stored position for
// its id, else the node is left unpositioned for the renderer to place at
// the origin.
func Fixed(g graph.Graph, stored map[string]graph.Position) graph.Scene {
	scene := graph.Scene{
		Engine: graph.EngineFixed,
		Nodes:  make([]graph.Node, len(g.Nodes)),
		Edges:  append([]graph.Edge(nil), g.Edges...),
	}

	for i, n := range g.Nodes {
		if n.Position == nil {
			if p, ok := stored[n.ID]; ok {
				n.Position = &p
			}
		}
		scene.Nodes[i] = n
	}

	scene.Width, scene.Height = extent(scene.Nodes)
	return scene
}

// Compose selects the layout engine for g. If any persisted position exists,
// the fixed engine is used even when only some nodes are covered: an
// automatic layout must never rearrange nodes the user already placed.
// With no persisted positions, the hierarchical engine produces an initial
// readable arrangement.
func Compose(g graph.Graph, stored map[string]graph.Position, opts Options) graph.Scene {
	engine := graph.EngineHierarchical
	if len(stored) > 0 {
		engine = graph.EngineFixed
	}

	ctx := context.Background()
	start := time.Now()
	observability.Scene().OnLayoutStart(ctx, engine, len(g.Nodes))

	var s graph.Scene
	if engine == graph.EngineFixed {
		s = Fixed(g, stored)
	} else {
		s = Hierarchical(g, opts)
	}

	observability.Scene().OnLayoutComplete(ctx, engine, time.Since(start), nil)
	return s
}

// extent returns the bounding width and height of the positioned nodes.
func extent(nodes []graph.Node) (w, h float64) {
	for _, n := range nodes {
		if n.Position == nil {
			continue
		}
		if n.Position.X > w {
			w = n.Position.X
		}
		if n.Position.Y > h {
			h = n.Position.Y
		}
	}
	return w, h
}
