package graph

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Flexible Input Shapes
// =============================================================================
//
// Upstream tools emit node/edge lists in several shapes: nodes as bare id
// strings or descriptor objects, edges as two-element arrays or objects with
// a handful of historical key spellings. The input types here normalize all
// of them at the boundary so the rest of the package only sees Graph.

// NodeInput is a node descriptor in flexible input form: either a bare id
// string or an object carrying at least an id. Entries that are neither
// decode to a zero NodeInput and are skipped (with a warning) by Build.
type NodeInput struct {
	ID       string
	Label    string
	ImageURL string
	SVGURL   string
	Position *Position
}

// UnmarshalJSON accepts a JSON string (the id) or a descriptor object.
// Object fields accept both snake_case and camelCase spellings.
func (n *NodeInput) UnmarshalJSON(data []byte) error {
	*n = NodeInput{}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		n.ID = id
		return nil
	}

	var obj struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Label      string    `json:"label"`
		ImageURL   string    `json:"image_url"`
		ImageURLJS string    `json:"imageUrl"`
		SVGURL     string    `json:"svg_url"`
		SVGURLJS   string    `json:"svgUrl"`
		Position   *Position `json:"position"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Not a string, not an object: leave the zero value for Build to
		// skip instead of failing the whole document.
		return nil
	}

	n.ID = firstNonEmpty(obj.ID, obj.Name)
	n.Label = obj.Label
	n.ImageURL = firstNonEmpty(obj.ImageURL, obj.ImageURLJS)
	n.SVGURL = firstNonEmpty(obj.SVGURL, obj.SVGURLJS)
	n.Position = obj.Position
	return nil
}

// EdgeInput is an edge in flexible input form: a two-element array of node
// ids, or an object whose endpoint keys are checked in priority order
// (source, from, src, a) and (target, to, dst, b).
type EdgeInput struct {
	Source string
	Target string
}

// edgeSourceKeys and edgeTargetKeys are the accepted endpoint spellings,
// highest priority first.
var (
	edgeSourceKeys = []string{"source", "from", "src", "a"}
	edgeTargetKeys = []string{"target", "to", "dst", "b"}
)

// UnmarshalJSON accepts ["a", "b"] pairs or endpoint objects.
func (e *EdgeInput) UnmarshalJSON(data []byte) error {
	*e = EdgeInput{}

	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) >= 2 {
			e.Source, e.Target = pair[0], pair[1]
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	e.Source = firstStringKey(obj, edgeSourceKeys)
	e.Target = firstStringKey(obj, edgeTargetKeys)
	return nil
}

// ParseInput decodes a flexible-shape JSON document of the form
// {"nodes": [...], "edges": [...]} into input lists ready for Build.
func ParseInput(data []byte) ([]NodeInput, []EdgeInput, error) {
	var doc struct {
		Nodes []NodeInput `json:"nodes"`
		Edges []EdgeInput `json:"edges"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode graph input: %w", err)
	}
	return doc.Nodes, doc.Edges, nil
}

// =============================================================================
// Internal Helpers
// =============================================================================

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstStringKey returns the first key from keys present in obj that holds a
// non-empty JSON string.
func firstStringKey(obj map[string]json.RawMessage, keys []string) string {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
