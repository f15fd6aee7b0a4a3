// Package pkg provides the core libraries for pidcanvas diagram rendering.
//
// # Overview
//
// pidcanvas turns loosely-structured node/link descriptions of process
// diagrams (P&ID style) into laid-out, icon-annotated scenes. The pkg
// directory is organized into a small set of focused packages:
//
//  1. [graph] - Graph model, flexible input parsing, and scene serialization
//  2. [symbols] - Symbol catalog, fuzzy label matching, and icon resolution
//  3. [layout] - Hierarchical and fixed layout engines, grid snapping, viewport fit
//  4. [positions] - Persisted node arrangements (memory, file, Redis)
//  5. [graphstore] - Saved diagrams (memory, MongoDB)
//  6. [render] - DOT generation and SVG/PDF/PNG export via Graphviz
//
// # Architecture
//
// The typical data flow through pidcanvas:
//
//	Flexible node/edge input (strings, objects, pairs)
//	         ↓
//	    [graph] package (parse + build canonical graph)
//	         ↓
//	    [symbols] package (match labels to catalog icons)
//	         ↓
//	    [layout] package (hierarchical ranks or saved positions)
//	         ↓
//	    [render/nodelink] package (DOT → SVG/PDF/PNG)
//
// # Quick Start
//
// Parse input, lay it out, and render an SVG:
//
//	import (
//	    "github.com/pidcanvas/pidcanvas/pkg/graph"
//	    "github.com/pidcanvas/pidcanvas/pkg/layout"
//	    "github.com/pidcanvas/pidcanvas/pkg/render/nodelink"
//	)
//
//	// 1. Normalize the lenient wire format
//	nodes, edges, _ := graph.ParseInput(data)
//	g := graph.Build(nodes, edges, nil)
//
//	// 2. Compute a scene (saved positions win when present)
//	scene := layout.Compose(g, stored, layout.Options{})
//
//	// 3. Render it
//	dot := nodelink.ToDOT(scene, nodelink.Options{})
//	svg, _ := nodelink.RenderSVG(dot)
//
// # Main Packages
//
// [graph] - Canonical node/edge/position model plus the lenient input
// format: nodes as bare strings or objects with id/name aliases, edges as
// [source, target] pairs or objects with several accepted key pairs.
//
// [symbols] - The symbol catalog (HTTP listing or local icon directory),
// normalization, Levenshtein/token fuzzy matching, and the resolver that
// maps node labels to icon URLs.
//
// [layout] - The hierarchical engine assigns left-to-right ranks via
// longest path; the fixed engine restores saved arrangements. Snapping and
// viewport fitting live here too.
//
// [positions] - Whole-map position stores keyed by diagram: memory, file
// (atomic rename writes), and Redis backends.
//
// [graphstore] - Saved diagram documents with memory and MongoDB backends.
//
// [render] - SVG post-processing and rsvg-convert wrappers; [render/nodelink]
// generates Graphviz DOT and renders it, pinning coordinates for fixed scenes.
//
// ## Supporting Packages
//
// [cache] - TTL cache with memory, file, Redis, and null backends.
//
// [httputil] - Small HTTP fetch helpers with transient-failure retry.
//
// [errors] - Coded errors with user-safe messages, shared by the CLI and
// the HTTP API's status mapping.
//
// [observability] - Pluggable hooks for catalog loads, matches, and cache
// activity.
//
// [graph]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/graph
// [symbols]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/symbols
// [layout]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/layout
// [positions]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/positions
// [graphstore]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/graphstore
// [render]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pidcanvas/pidcanvas/pkg/observability
package pkg
