// Package nodelink renders diagram scenes as node-link graphs.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// nodes appear as boxes connected by arrows. It is the export path for
// scenes shown on the interactive canvas: the same structure, rendered to a
// portable SVG/PDF/PNG.
//
// # Usage
//
// Convert a scene to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(scene, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the matched symbol and
//     coordinates
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR), matching the
// hierarchical canvas layout. Fixed scenes emit pinned pos attributes;
// render those with [RenderPinnedSVG] (neato) so saved arrangements are
// reproduced exactly.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
