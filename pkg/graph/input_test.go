package graph

import (
	"encoding/json"
	"testing"
)

func TestNodeInputShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want NodeInput
	}{
		{"bare string", `"pump"`, NodeInput{ID: "pump"}},
		{"object with id", `{"id": "tank", "label": "Feed Tank"}`,
			NodeInput{ID: "tank", Label: "Feed Tank"}},
		{"name alias", `{"name": "valve"}`, NodeInput{ID: "valve"}},
		{"snake_case image", `{"id": "hx", "image_url": "/img/hx.png"}`,
			NodeInput{ID: "hx", ImageURL: "/img/hx.png"}},
		{"camelCase image", `{"id": "hx", "imageUrl": "/img/hx.png"}`,
			NodeInput{ID: "hx", ImageURL: "/img/hx.png"}},
		{"camelCase svg", `{"id": "hx", "svgUrl": "/img/hx.svg"}`,
			NodeInput{ID: "hx", SVGURL: "/img/hx.svg"}},
		{"invalid shape", `42`, NodeInput{}},
		{"object without id", `{"label": "orphan"}`, NodeInput{Label: "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got NodeInput
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNodeInputPosition(t *testing.T) {
	var got NodeInput
	if err := json.Unmarshal([]byte(`{"id": "pump", "position": {"x": 120, "y": 80}}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Position == nil || got.Position.X != 120 || got.Position.Y != 80 {
		t.Errorf("position = %+v", got.Position)
	}
}

func TestEdgeInputShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want EdgeInput
	}{
		{"pair", `["a", "b"]`, EdgeInput{Source: "a", Target: "b"}},
		{"source/target", `{"source": "a", "target": "b"}`, EdgeInput{Source: "a", Target: "b"}},
		{"from/to", `{"from": "a", "to": "b"}`, EdgeInput{Source: "a", Target: "b"}},
		{"src/dst", `{"src": "a", "dst": "b"}`, EdgeInput{Source: "a", Target: "b"}},
		{"a/b", `{"a": "x", "b": "y"}`, EdgeInput{Source: "x", Target: "y"}},
		{"mixed spellings", `{"from": "a", "dst": "b"}`, EdgeInput{Source: "a", Target: "b"}},
		{"short pair", `["a"]`, EdgeInput{}},
		{"no endpoints", `{"weight": 3}`, EdgeInput{}},
		{"invalid shape", `42`, EdgeInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EdgeInput
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEdgeInputAliasPriority(t *testing.T) {
	// "source" outranks "from" when both are present.
	var got EdgeInput
	doc := `{"source": "canonical", "from": "legacy", "target": "t"}`
	if err := json.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Source != "canonical" {
		t.Errorf("source = %q, want canonical (highest-priority key)", got.Source)
	}
}

func TestParseInput(t *testing.T) {
	doc := `{
		"nodes": ["pump", {"id": "tank"}],
		"edges": [["pump", "tank"], {"from": "tank", "to": "pump"}]
	}`

	nodes, edges, err := ParseInput([]byte(doc))
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if len(nodes) != 2 || len(edges) != 2 {
		t.Fatalf("got %d nodes, %d edges", len(nodes), len(edges))
	}
	if nodes[0].ID != "pump" || nodes[1].ID != "tank" {
		t.Errorf("nodes = %+v", nodes)
	}
	if edges[1].Source != "tank" || edges[1].Target != "pump" {
		t.Errorf("edges = %+v", edges)
	}
}

func TestParseInputMalformed(t *testing.T) {
	if _, _, err := ParseInput([]byte(`{"nodes": `)); err == nil {
		t.Error("malformed document should error")
	}
}
