package graph

import "slices"

// =============================================================================
// Graph - Node-Link Serialization
// =============================================================================

// Graph is the canonical serialization format for node-link diagrams.
// Used for API responses, storage, caching, and cross-tool compatibility.
//
// The format is human-readable and designed for round-trip fidelity:
// import → transform → export → re-import produces identical results.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool { return g.NodeByID(id) != nil }

// Sort orders nodes by ID and edges by (Source, Target) for deterministic
// output. Builder output keeps input order; call Sort before hashing.
func (g *Graph) Sort() {
	slices.SortFunc(g.Nodes, func(a, b Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	slices.SortFunc(g.Edges, func(a, b Edge) int {
		if a.Source != b.Source {
			if a.Source < b.Source {
				return -1
			}
			return 1
		}
		switch {
		case a.Target < b.Target:
			return -1
		case a.Target > b.Target:
			return 1
		default:
			return 0
		}
	})
}

// =============================================================================
// Node - Unified Node Type
// =============================================================================

// Node is the unified node type for all serialization contexts.
type Node struct {
	ID       string    `json:"id" bson:"id"`
	Label    string    `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	ImageURL string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	SVGURL   string    `json:"svg_url,omitempty" bson:"svg_url,omitempty"`
	Symbol   string    `json:"symbol,omitempty" bson:"symbol,omitempty"` // Matched catalog name
	Position *Position `json:"position,omitempty" bson:"position,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Directed Connection
// =============================================================================

// Edge represents a directed edge between two node ids.
// ID is synthesized from the edge's input index when built from raw input.
type Edge struct {
	ID     string `json:"id,omitempty" bson:"id,omitempty"`
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
}

// =============================================================================
// Position - Canvas Coordinates
// =============================================================================

// Position is a node's canvas coordinate pair. X and Y are always read and
// written together; there is no partially-positioned node.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}
