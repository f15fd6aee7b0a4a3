package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout engines.
const (
	EngineHierarchical = "hierarchical"
	EngineFixed        = "fixed"
)

// DefaultGridSize is the snap grid used when persisting dragged positions.
const DefaultGridSize = 40

// =============================================================================
// Scene - Laid-Out Graph Serialization
// =============================================================================

// Scene is the serialization format for a laid-out graph: the structure plus
// everything a renderer needs to draw it without re-running layout.
//
// Check Engine to determine how node positions were produced:
//
//	Hierarchical ("hierarchical"):
//	  - positions computed by rank layering, left to right
//	  - Ranks: rank → node IDs
//
//	Fixed ("fixed"):
//	  - positions restored from a position store or explicit input;
//	    layout did not move any node
//
// Shared fields:
//   - Width, Height: frame dimensions
//   - Nodes: nodes with resolved icons and final positions
//   - Edges: directed connections
//   - DOT: Graphviz DOT source for SVG export (optional)
type Scene struct {
	// Discriminator
	Engine string `json:"engine" bson:"engine"`

	// Common dimensions
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Graph structure
	Nodes []Node `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Edges []Edge `json:"edges,omitempty" bson:"edges,omitempty"`

	// Hierarchical-specific
	Ranks map[int][]string `json:"ranks,omitempty" bson:"ranks,omitempty"`

	// SVG export
	DOT string `json:"dot,omitempty" bson:"dot,omitempty"`
}

// IsHierarchical returns true if positions were computed by rank layering.
func (s *Scene) IsHierarchical() bool { return s.Engine == EngineHierarchical }

// IsFixed returns true if positions were restored, not computed.
func (s *Scene) IsFixed() bool { return s.Engine == EngineFixed }

// Positions returns the scene's node positions as an id → Position map.
// Nodes without a position are omitted.
func (s *Scene) Positions() map[string]Position {
	out := make(map[string]Position, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.Position != nil {
			out[n.ID] = *n.Position
		}
	}
	return out
}

// =============================================================================
// Scene Serialization API
// =============================================================================

// MarshalScene serializes a Scene to pretty-printed JSON bytes.
func MarshalScene(s Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalScene deserializes JSON bytes into a Scene.
// Validates the engine discriminator.
func UnmarshalScene(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("unmarshal scene: %w", err)
	}

	switch s.Engine {
	case EngineHierarchical, EngineFixed:
	case "":
		s.Engine = EngineHierarchical
	default:
		return Scene{}, fmt.Errorf("unknown layout engine %q", s.Engine)
	}

	return s, nil
}

// WriteSceneFile writes a Scene to a JSON file.
func WriteSceneFile(s Scene, path string) error {
	data, err := MarshalScene(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSceneFile reads a Scene from a JSON file.
func ReadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalScene(data)
}
