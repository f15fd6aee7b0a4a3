package layout

import (
	"testing"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

func chainGraph(ids ...string) graph.Graph {
	var g graph.Graph
	for _, id := range ids {
		g.Nodes = append(g.Nodes, graph.Node{ID: id})
	}
	for i := 1; i < len(ids); i++ {
		g.Edges = append(g.Edges, graph.Edge{Source: ids[i-1], Target: ids[i]})
	}
	return g
}

func positionOf(t *testing.T, s graph.Scene, id string) graph.Position {
	t.Helper()
	for _, n := range s.Nodes {
		if n.ID == id {
			if n.Position == nil {
				t.Fatalf("node %s has no position", id)
			}
			return *n.Position
		}
	}
	t.Fatalf("node %s not in scene", id)
	return graph.Position{}
}

func TestHierarchicalChain(t *testing.T) {
	s := Hierarchical(chainGraph("a", "b", "c"), Options{})

	if !s.IsHierarchical() {
		t.Fatalf("engine = %q", s.Engine)
	}

	// Left-to-right: one rank per chain position, fixed spacing.
	for i, id := range []string{"a", "b", "c"} {
		p := positionOf(t, s, id)
		want := float64(i) * DefaultSpacingX
		if p.X != want || p.Y != 0 {
			t.Errorf("%s at (%v,%v), want (%v,0)", id, p.X, p.Y, want)
		}
	}

	if len(s.Ranks) != 3 || s.Ranks[2][0] != "c" {
		t.Errorf("ranks = %+v", s.Ranks)
	}
}

func TestHierarchicalDiamond(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "src"}, {ID: "left"}, {ID: "right"}, {ID: "sink"}},
		Edges: []graph.Edge{
			{Source: "src", Target: "left"},
			{Source: "src", Target: "right"},
			{Source: "left", Target: "sink"},
			{Source: "right", Target: "sink"},
		},
	}
	s := Hierarchical(g, Options{})

	if p := positionOf(t, s, "sink"); p.X != 2*DefaultSpacingX {
		t.Errorf("sink X = %v, want rank 2", p.X)
	}

	// Siblings share a rank and stack vertically in input order.
	left := positionOf(t, s, "left")
	right := positionOf(t, s, "right")
	if left.X != right.X {
		t.Errorf("siblings on different ranks: %v vs %v", left.X, right.X)
	}
	if left.Y != 0 || right.Y != DefaultSpacingY {
		t.Errorf("sibling slots = %v, %v", left.Y, right.Y)
	}
}

func TestHierarchicalLongestPath(t *testing.T) {
	// sink has parents at ranks 0 and 2: it must land one past the deepest.
	g := chainGraph("a", "b", "c")
	g.Nodes = append(g.Nodes, graph.Node{ID: "sink"})
	g.Edges = append(g.Edges,
		graph.Edge{Source: "a", Target: "sink"},
		graph.Edge{Source: "c", Target: "sink"},
	)

	s := Hierarchical(g, Options{})
	if p := positionOf(t, s, "sink"); p.X != 3*DefaultSpacingX {
		t.Errorf("sink X = %v, want rank 3", p.X)
	}
}

func TestHierarchicalCustomSpacing(t *testing.T) {
	s := Hierarchical(chainGraph("a", "b"), Options{SpacingX: 100, SpacingY: 50})
	if p := positionOf(t, s, "b"); p.X != 100 {
		t.Errorf("b X = %v, want 100", p.X)
	}
}

func TestHierarchicalCycleStaysBestEffort(t *testing.T) {
	g := chainGraph("a", "b")
	g.Edges = append(g.Edges, graph.Edge{Source: "b", Target: "a"})

	s := Hierarchical(g, Options{})
	if len(s.Nodes) != 2 {
		t.Fatalf("got %d nodes", len(s.Nodes))
	}
	for _, n := range s.Nodes {
		if n.Position == nil {
			t.Errorf("cycle node %s left unpositioned", n.ID)
		}
	}
}

func TestHierarchicalEmpty(t *testing.T) {
	s := Hierarchical(graph.Graph{}, Options{})
	if len(s.Nodes) != 0 || s.Width != 0 || s.Height != 0 {
		t.Errorf("empty scene = %+v", s)
	}
}
