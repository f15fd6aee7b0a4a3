package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
	"github.com/pidcanvas/pidcanvas/pkg/graphstore"
	"github.com/pidcanvas/pidcanvas/pkg/layout"
	"github.com/pidcanvas/pidcanvas/pkg/render/nodelink"
	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// maxRequestBody bounds request payloads (8 MiB covers large plant graphs).
const maxRequestBody = 8 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSymbols serves the symbol listing in the catalog wire format, so a
// pidcanvas server can act as its own catalog source. A failed load
// degrades to success=false instead of an error status.
func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Catalog.Load(r.Context()); err != nil {
		s.logger.Warn("symbol listing without catalog", "err", err)
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"symbols": []symbols.SymbolEntry{},
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"symbols": s.cfg.Catalog.Entries(),
	})
}

type matchResponse struct {
	Label      string              `json:"label"`
	Symbol     string              `json:"symbol,omitempty"`
	Matched    bool                `json:"matched"`
	Icon       string              `json:"icon,omitempty"`
	Candidates []symbols.Candidate `json:"candidates,omitempty"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if err := errors.ValidateLabel(label); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.cfg.Catalog.Load(r.Context()); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeCatalogUnavailable, err, "symbol catalog unavailable"))
		return
	}

	resp := matchResponse{Label: label}
	if name, ok := s.cfg.Matcher.FindBest(label); ok {
		resp.Symbol = name
		resp.Matched = true
		resp.Icon = s.cfg.Resolver.Resolve(r.Context(), label).URL
	}
	if r.URL.Query().Get("explain") == "1" {
		resp.Candidates = s.cfg.Matcher.Explain(label)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// sceneRequest is the flexible-input payload for scene construction.
type sceneRequest struct {
	Key   string     `json:"key,omitempty"`
	Frame *frameSpec `json:"frame,omitempty"`
}

// frameSpec is the caller's canvas size, used to fit the viewport.
type frameSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// sceneResponse is a scene plus the pan/zoom transform that centers it in
// the requested frame. Viewport is omitted when the request names no frame.
type sceneResponse struct {
	graph.Scene
	Viewport *layout.Viewport `json:"viewport,omitempty"`
}

// handleBuildScene builds a laid-out scene from flexible node/edge input.
// Icons are resolved per node (explicit image_url wins), positions are
// restored from the store when the request names a key, and the layout
// engine is selected by the persisted-positions policy. A request carrying
// a frame size additionally gets the viewport fitting the scene to it.
func (s *Server) handleBuildScene(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	nodes, edges, err := graph.ParseInput(body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid graph input"))
		return
	}
	g := graph.Build(nodes, edges, s.logger)

	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.ImageURL != "" {
			continue
		}
		icon := s.cfg.Resolver.Resolve(r.Context(), n.DisplayLabel())
		n.ImageURL = icon.URL
		n.Symbol = icon.Symbol
	}
	s.inlineVectorAssets(r.Context(), &g)

	var stored map[string]graph.Position
	var req sceneRequest
	if key := keyFromBody(body, &req); key != "" {
		stored, err = s.cfg.Positions.Get(r.Context(), key)
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	resp := sceneResponse{Scene: layout.Compose(g, stored, layout.Options{})}
	if f := req.Frame; f != nil && f.Width > 0 && f.Height > 0 {
		vp := layout.Fit(resp.Scene, f.Width, f.Height, layout.DefaultFitPadding)
		resp.Viewport = &vp
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleExportSVG renders a scene payload to SVG. Fixed scenes render with
// pinned positions so the export matches the canvas exactly.
func (s *Server) handleExportSVG(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	scene, err := graph.UnmarshalScene(body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid scene"))
		return
	}

	dot := nodelink.ToDOT(scene, nodelink.Options{})
	var svg []byte
	if scene.IsFixed() {
		svg, err = nodelink.RenderPinnedSVG(dot)
	} else {
		svg, err = nodelink.RenderSVG(dot)
	}
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render SVG"))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// =============================================================================
// Positions
// =============================================================================

func (s *Server) handleGetPositions(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	pos, err := s.cfg.Positions.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if pos == nil {
		pos = map[string]graph.Position{}
	}
	s.writeJSON(w, http.StatusOK, pos)
}

// handlePutPositions replaces the whole arrangement for a key. Coordinates
// are snapped to the grid before persisting.
func (s *Server) handlePutPositions(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var pos map[string]graph.Position
	if err := decodeJSON(r, &pos); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidPosition, err, "invalid position map"))
		return
	}

	if err := s.cfg.Positions.Set(r.Context(), key, layout.SnapAll(pos, s.gridSize())); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePositions(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Positions.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Saved Diagrams
// =============================================================================

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	infos, err := s.cfg.Diagrams.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if infos == nil {
		infos = []graphstore.Info{}
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleSaveDiagram(w http.ResponseWriter, r *http.Request) {
	var d graphstore.Diagram
	if err := decodeJSON(r, &d); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid diagram"))
		return
	}

	saved, err := s.cfg.Diagrams.Save(r.Context(), d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.cfg.Diagrams.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	if err := s.cfg.Diagrams.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// keyFromBody extracts the optional position-store key (and the frame,
// into req) from the raw scene request without disturbing the flexible
// node/edge decoding.
func keyFromBody(body []byte, req *sceneRequest) string {
	if err := json.Unmarshal(body, req); err != nil {
		return ""
	}
	return req.Key
}
