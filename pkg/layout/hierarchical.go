package layout

import (
	"sort"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// =============================================================================
// Options
// =============================================================================

// Default spacing constants for the hierarchical engine, in canvas units.
const (
	DefaultSpacingX = 220 // horizontal distance between ranks
	DefaultSpacingY = 120 // vertical distance between slots in a rank
)

// Options configures the hierarchical engine. Zero values use defaults.
type Options struct {
	SpacingX float64
	SpacingY float64
}

func (o Options) withDefaults() Options {
	if o.SpacingX == 0 {
		o.SpacingX = DefaultSpacingX
	}
	if o.SpacingY == 0 {
		o.SpacingY = DefaultSpacingY
	}
	return o
}

// =============================================================================
// Hierarchical Engine
// =============================================================================

// Hierarchical lays out g left to right by rank: each node is placed one
// rank past its deepest parent, source nodes at rank 0. Within a rank,
// nodes keep their input order top to bottom.
//
// Ranks are assigned with a topological traversal (Kahn's algorithm). The
// traversal assumes the edge set is acyclic; nodes on a cycle never reach
// zero in-degree and stay at their default rank 0, which keeps the render
// best-effort instead of failing. Explicit positions on input nodes are
// overwritten: callers wanting to preserve them should use Compose.
func Hierarchical(g graph.Graph, opts Options) graph.Scene {
	opts = opts.withDefaults()

	ranks := assignRanks(g)

	byRank := make(map[int][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		r := ranks[n.ID]
		byRank[r] = append(byRank[r], n.ID)
	}

	slot := make(map[string]int, len(g.Nodes))
	maxSlots := 0
	for _, ids := range byRank {
		for i, id := range ids {
			slot[id] = i
		}
		if len(ids) > maxSlots {
			maxSlots = len(ids)
		}
	}

	scene := graph.Scene{
		Engine: graph.EngineHierarchical,
		Nodes:  make([]graph.Node, len(g.Nodes)),
		Edges:  append([]graph.Edge(nil), g.Edges...),
		Ranks:  byRank,
	}

	maxRank := 0
	for _, n := range g.Nodes {
		if ranks[n.ID] > maxRank {
			maxRank = ranks[n.ID]
		}
	}

	for i, n := range g.Nodes {
		n.Position = &graph.Position{
			X: float64(ranks[n.ID]) * opts.SpacingX,
			Y: float64(slot[n.ID]) * opts.SpacingY,
		}
		scene.Nodes[i] = n
	}

	if len(g.Nodes) > 0 {
		scene.Width = float64(maxRank)*opts.SpacingX + opts.SpacingX
		scene.Height = float64(maxSlots-1)*opts.SpacingY + opts.SpacingY
	}

	return scene
}

// assignRanks computes the longest-path rank of every node via Kahn's
// algorithm: sources at rank 0, every other node one past its deepest
// parent.
func assignRanks(g graph.Graph) map[string]int {
	inDegree := make(map[string]int, len(g.Nodes))
	children := make(map[string][]string, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range g.Edges {
		children[e.Source] = append(children[e.Source], e.Target)
		inDegree[e.Target]++
	}

	ranks := make(map[string]int, len(g.Nodes))
	queue := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range children[curr] {
			if r := ranks[curr] + 1; r > ranks[child] {
				ranks[child] = r
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return ranks
}
