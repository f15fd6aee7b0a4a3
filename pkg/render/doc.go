// Package render provides visualization rendering for diagram scenes.
//
// # Overview
//
// This package contains the rendering pipeline that turns laid-out scenes
// into visual outputs:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders scenes as directed graph diagrams using
// Graphviz, left to right to match the on-screen layout:
//
//	dot := nodelink.ToDOT(scene, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// Fixed scenes carry pinned positions; render those with
// [nodelink.RenderPinnedSVG] so Graphviz keeps them in place.
//
// [nodelink]: github.com/pidcanvas/pidcanvas/pkg/render/nodelink
package render
