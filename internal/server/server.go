// Package server exposes the pidcanvas HTTP API and static front-end.
//
// The server wires the symbol catalog, matcher, layout engines, and stores
// behind a chi router. All failure signaling follows the best-effort
// philosophy of the canvas: malformed entries degrade, they do not 500.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pidcanvas/pidcanvas/pkg/graphstore"
	"github.com/pidcanvas/pidcanvas/pkg/positions"
	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port to listen on.
	Port int

	// Catalog is the loaded (or lazily loading) symbol catalog.
	Catalog *symbols.Catalog
	// Matcher resolves labels against Catalog.
	Matcher *symbols.Matcher
	// Resolver maps labels to icon URLs.
	Resolver *symbols.Resolver

	// Positions stores per-session arrangements.
	Positions positions.Store
	// Diagrams stores saved graphs. Optional; nil disables the
	// /api/diagrams routes.
	Diagrams graphstore.Store

	// IconsDir serves raster/vector symbol assets under /static/symbols/.
	// Empty disables the asset route.
	IconsDir string

	// GridSize snaps incoming position writes. Zero uses the default.
	GridSize float64

	Logger *log.Logger
}

// Server is the pidcanvas HTTP server.
type Server struct {
	cfg    Config
	logger *log.Logger
}

// New creates a server from cfg. If cfg.Logger is nil, the default logger
// is used.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Server{cfg: cfg, logger: cfg.Logger}
}

// Serve starts the HTTP server and blocks until the context is cancelled.
// The symbol catalog is warmed in the background so the first /api/match
// does not pay the fetch latency.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("starting server", "addr", fmt.Sprintf("http://localhost:%d", s.cfg.Port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Warm the catalog; a failure is logged and retried on first use.
	eg.Go(func() error {
		if err := s.cfg.Catalog.Load(egctx); err != nil {
			s.logger.Warn("catalog warm-up failed", "err", err)
		}
		return nil
	})

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) gridSize() float64 {
	if s.cfg.GridSize > 0 {
		return s.cfg.GridSize
	}
	return 40
}
