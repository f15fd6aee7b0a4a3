package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: "pump", Label: "Feed Pump"},
			{ID: "tank", Position: &Position{X: 120, Y: 80}},
		},
		Edges: []Edge{
			{ID: "e0", Source: "pump", Target: "tank"},
		},
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	g := testGraph()

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("round-trip = %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0].Label != "Feed Pump" {
		t.Errorf("label lost in round-trip: %+v", got.Nodes[0])
	}
	tank := got.NodeByID("tank")
	if tank == nil || tank.Position == nil || tank.Position.X != 120 || tank.Position.Y != 80 {
		t.Errorf("position lost in round-trip: %+v", tank)
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pid.json")

	if err := WriteFile(testGraph(), path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Errorf("file round-trip = %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("output should be indented")
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader(`{"nodes": [`)); err == nil {
		t.Error("malformed JSON should error")
	}
}

func TestGraphSort(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "z"}, {ID: "a"}, {ID: "m"}},
		Edges: []Edge{
			{Source: "z", Target: "a"},
			{Source: "a", Target: "z"},
			{Source: "a", Target: "m"},
		},
	}
	g.Sort()

	if g.Nodes[0].ID != "a" || g.Nodes[2].ID != "z" {
		t.Errorf("nodes not sorted: %+v", g.Nodes)
	}
	if g.Edges[0].Target != "m" || g.Edges[2].Source != "z" {
		t.Errorf("edges not sorted: %+v", g.Edges)
	}
}

func TestNodeDisplayLabel(t *testing.T) {
	n := Node{ID: "pump"}
	if n.DisplayLabel() != "pump" {
		t.Errorf("DisplayLabel = %q, want id fallback", n.DisplayLabel())
	}
	n.Label = "Feed Pump"
	if n.DisplayLabel() != "Feed Pump" {
		t.Errorf("DisplayLabel = %q, want label", n.DisplayLabel())
	}
}
