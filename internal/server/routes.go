package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// routes assembles the chi router: API under /api, symbol assets under
// /static/symbols, and the embedded front-end at the root.
func (s *Server) routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.logRequests,
		middleware.Recoverer,
		middleware.Compress(5),
		allowCORS,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/symbols", s.handleSymbols)
		r.Get("/match", s.handleMatch)

		r.Post("/scenes", s.handleBuildScene)
		r.Post("/export/svg", s.handleExportSVG)

		r.Route("/positions/{key}", func(r chi.Router) {
			r.Get("/", s.handleGetPositions)
			r.Put("/", s.handlePutPositions)
			r.Delete("/", s.handleDeletePositions)
		})

		if s.cfg.Diagrams != nil {
			r.Route("/diagrams", func(r chi.Router) {
				r.Get("/", s.handleListDiagrams)
				r.Post("/", s.handleSaveDiagram)
				r.Get("/{id}", s.handleGetDiagram)
				r.Delete("/{id}", s.handleDeleteDiagram)
			})
		}
	})

	if s.cfg.IconsDir != "" {
		fileServer := http.FileServer(http.Dir(s.cfg.IconsDir))
		r.Handle("/static/symbols/*", http.StripPrefix("/static/symbols/", fileServer))
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embed is part of the binary; a missing subtree is a build
		// defect, not a runtime condition.
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}

// logRequests logs one line per request through the server's logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
		)
	})
}

// allowCORS mirrors the permissive policy of the front-end dev setup: the
// canvas is an embeddable visualization aid, not an authenticated API.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
