package graph

import (
	"path/filepath"
	"testing"
)

func testScene() Scene {
	return Scene{
		Engine: EngineHierarchical,
		Width:  800,
		Height: 600,
		Nodes: []Node{
			{ID: "pump", Position: &Position{X: 0, Y: 0}},
			{ID: "tank", Position: &Position{X: 220, Y: 0}},
			{ID: "floating"},
		},
		Edges: []Edge{{ID: "e0", Source: "pump", Target: "tank"}},
		Ranks: map[int][]string{0: {"pump"}, 1: {"tank"}},
	}
}

func TestSceneRoundTrip(t *testing.T) {
	data, err := MarshalScene(testScene())
	if err != nil {
		t.Fatalf("MarshalScene: %v", err)
	}

	got, err := UnmarshalScene(data)
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if !got.IsHierarchical() || got.Width != 800 {
		t.Errorf("round-trip scene = %+v", got)
	}
	if len(got.Ranks[1]) != 1 || got.Ranks[1][0] != "tank" {
		t.Errorf("ranks lost: %+v", got.Ranks)
	}
}

func TestUnmarshalSceneEngine(t *testing.T) {
	// Missing engine defaults to hierarchical.
	s, err := UnmarshalScene([]byte(`{"width": 10, "height": 10}`))
	if err != nil {
		t.Fatalf("UnmarshalScene: %v", err)
	}
	if !s.IsHierarchical() {
		t.Errorf("default engine = %q, want hierarchical", s.Engine)
	}

	if _, err := UnmarshalScene([]byte(`{"engine": "orbital"}`)); err == nil {
		t.Error("unknown engine should error")
	}
}

func TestScenePositions(t *testing.T) {
	s := testScene()
	pos := s.Positions()
	if len(pos) != 2 {
		t.Fatalf("got %d positions, want 2 (unpositioned node omitted)", len(pos))
	}
	if pos["tank"].X != 220 {
		t.Errorf("tank position = %+v", pos["tank"])
	}
}

func TestSceneFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	s := testScene()
	s.Engine = EngineFixed

	if err := WriteSceneFile(s, path); err != nil {
		t.Fatalf("WriteSceneFile: %v", err)
	}
	got, err := ReadSceneFile(path)
	if err != nil {
		t.Fatalf("ReadSceneFile: %v", err)
	}
	if !got.IsFixed() {
		t.Errorf("engine = %q, want fixed", got.Engine)
	}
}
