// Package graph provides serialization types for node-link diagrams and
// laid-out scenes.
//
// This package defines the canonical wire format for pidcanvas's graph data,
// used for JSON files, API responses, caching, and storage.
//
// # Core Types
//
//   - [Graph]: Node-link format for diagrams
//   - [Scene]: Laid-out graph ready for rendering (positions, ranks, DOT)
//   - [Node], [Edge], [Position]: Shared structural types
//   - [NodeInput], [EdgeInput]: Flexible input shapes at the decode boundary
//
// # Constants
//
// This package is the single source of truth for layout constants:
//
//	graph.EngineHierarchical  // "hierarchical"
//	graph.EngineFixed         // "fixed"
//	graph.DefaultGridSize     // 40
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "pump"}, {"id": "tank"}],
//	  "edges": [{"source": "pump", "target": "tank"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("pid.json")    // File → Graph
//	graph.WriteFile(g, "output.json")     // Graph → File
//	data, _ := graph.Marshal(g)           // Graph → []byte
//
// # Flexible Input
//
// Upstream exports are messier than the canonical format: nodes may be bare
// id strings, edges may be two-element arrays or objects spelling their
// endpoints source/from/src/a and target/to/dst/b. [ParseInput] plus [Build]
// normalize any of these shapes:
//
//	nodes, edges, _ := graph.ParseInput(data)
//	g := graph.Build(nodes, edges, logger)
//
// Build is lenient: malformed node entries are skipped with a warning and
// edges with missing endpoints are dropped, never an error.
//
// # Scene Serialization
//
// Scenes are discriminated by Engine:
//
//	scene, _ := graph.UnmarshalScene(data)
//	if scene.IsFixed() {
//	    // Positions were restored; layout did not move nodes
//	}
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
