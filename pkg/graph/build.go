package graph

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Graph Construction
// =============================================================================

// Build normalizes flexible input lists into a Graph.
//
// Malformed node entries (no resolvable id) are skipped with a warning.
// Duplicate node ids keep the first occurrence. Edges whose source or target
// does not reference a surviving node are dropped silently; edge ids are
// synthesized from the edge's input index. Build never fails: a best-effort
// graph is always returned.
func Build(nodes []NodeInput, edges []EdgeInput, logger *log.Logger) Graph {
	if logger == nil {
		logger = log.Default()
	}

	g := Graph{
		Nodes: make([]Node, 0, len(nodes)),
		Edges: make([]Edge, 0, len(edges)),
	}

	seen := make(map[string]struct{}, len(nodes))
	for i, in := range nodes {
		if in.ID == "" {
			logger.Warn("skipping node without id", "index", i)
			continue
		}
		if _, dup := seen[in.ID]; dup {
			logger.Warn("skipping duplicate node id", "id", in.ID)
			continue
		}
		seen[in.ID] = struct{}{}
		g.Nodes = append(g.Nodes, Node{
			ID:       in.ID,
			Label:    in.Label,
			ImageURL: in.ImageURL,
			SVGURL:   in.SVGURL,
			Position: in.Position,
		})
	}

	for i, in := range edges {
		if in.Source == "" || in.Target == "" {
			continue
		}
		if _, ok := seen[in.Source]; !ok {
			continue
		}
		if _, ok := seen[in.Target]; !ok {
			continue
		}
		g.Edges = append(g.Edges, Edge{
			ID:     fmt.Sprintf("e%d", i),
			Source: in.Source,
			Target: in.Target,
		})
	}

	return g
}
