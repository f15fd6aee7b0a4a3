package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/internal/server"
	"github.com/pidcanvas/pidcanvas/pkg/graphstore"
	"github.com/pidcanvas/pidcanvas/pkg/positions"
	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// serveCommand creates the serve command running the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		port       int
		catalogURL string
		iconsDir   string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the pidcanvas HTTP server",
		Long: `Run the pidcanvas HTTP server with the embedded canvas front-end.

Configuration comes from a TOML file (--config, default
~/.config/pidcanvas/config.toml) with command-line flags taking
precedence. The server needs a symbol catalog: either a listing URL
(--catalog-url) or a local icons directory (--icons-dir).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if catalogURL != "" {
				cfg.Catalog.URL = catalogURL
			}
			if iconsDir != "" {
				cfg.Catalog.IconsDir = iconsDir
			}
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/pidcanvas/config.toml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	cmd.Flags().StringVar(&catalogURL, "catalog-url", "", "symbol listing endpoint")
	cmd.Flags().StringVar(&iconsDir, "icons-dir", "", "local icons directory serving as catalog and assets")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the catalog response cache")

	return cmd
}

// runServe wires the stores and matcher and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg Config, noCache bool) error {
	if cfg.Catalog.URL == "" && cfg.Catalog.IconsDir == "" {
		return fmt.Errorf("no symbol catalog configured: set --catalog-url or --icons-dir")
	}

	catalog, matcher := c.newMatcher(cfg, noCache)
	resolver := symbols.NewResolver(matcher, cfg.Catalog.BaseURL, cfg.Catalog.Ext, c.Logger)

	posStore, err := c.newPositionsStore(ctx, cfg.Positions)
	if err != nil {
		return err
	}
	defer posStore.Close()

	diagrams, err := c.newDiagramStore(ctx, cfg.Diagrams)
	if err != nil {
		return err
	}
	if diagrams != nil {
		defer diagrams.Close(context.Background())
	}

	printInfo("Serving on %s", StyleLink.Render(fmt.Sprintf("http://localhost:%d", cfg.Server.Port)))

	srv := server.New(server.Config{
		Port:      cfg.Server.Port,
		Catalog:   catalog,
		Matcher:   matcher,
		Resolver:  resolver,
		Positions: posStore,
		Diagrams:  diagrams,
		IconsDir:  cfg.Catalog.IconsDir,
		GridSize:  cfg.Server.GridSize,
		Logger:    c.Logger,
	})
	return srv.Serve(ctx)
}

// newPositionsStore builds the configured position store backend.
func (c *CLI) newPositionsStore(ctx context.Context, cfg PositionsConfig) (positions.Store, error) {
	switch cfg.Backend {
	case "", "file":
		return positions.NewFileStore(cfg.Dir)
	case "memory":
		return positions.NewMemoryStore(), nil
	case "redis":
		return positions.NewRedisStore(ctx, positions.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return nil, fmt.Errorf("unknown positions backend %q", cfg.Backend)
	}
}

// newDiagramStore builds the configured diagram store, or nil when the
// feature is disabled.
func (c *CLI) newDiagramStore(ctx context.Context, cfg DiagramsConfig) (graphstore.Store, error) {
	switch cfg.Backend {
	case "":
		return nil, nil
	case "memory":
		return graphstore.NewMemoryStore(), nil
	case "mongo":
		return graphstore.NewMongoStore(ctx, graphstore.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	default:
		return nil, fmt.Errorf("unknown diagrams backend %q", cfg.Backend)
	}
}
