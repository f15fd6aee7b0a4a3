// Package cli implements the pidcanvas command-line interface.
//
// This package provides commands for serving the canvas web UI, matching
// labels against the symbol catalog, normalizing graph input, computing
// layouts, and rendering scenes. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the HTTP server with the embedded front-end
//   - match: Resolve free-text labels to catalog symbols
//   - catalog: Inspect the symbol catalog
//   - parse: Normalize flexible node/edge input into canonical graph JSON
//   - layout: Compute a laid-out scene from a graph
//   - render: Generate SVG, PDF, or PNG from a scene
//   - positions: Inspect or clear saved arrangements
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/buildinfo"
	"github.com/pidcanvas/pidcanvas/pkg/cache"
	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pidcanvas"

	// catalogCacheTTL bounds how long a fetched symbol listing is reused.
	catalogCacheTTL = 15 * time.Minute

	// redisDialTimeout bounds the startup ping of the redis listing cache.
	redisDialTimeout = 5 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pidcanvas",
		Short:        "pidcanvas renders P&ID node-link diagrams with symbol matching",
		Long:         `pidcanvas is a viewer for Piping & Instrumentation Diagram style graphs: it matches free-text node labels to catalog symbols, lays the graph out, and serves an interactive canvas that remembers your arrangements.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.positionsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Catalog Factory
// =============================================================================

// newCatalogSource builds a symbol source from a catalog URL or a local
// icons directory. HTTP listing responses go through the configured
// listing cache; a cache that fails to come up degrades to uncached.
func newCatalogSource(cfg CatalogConfig, noCache bool) symbols.Source {
	if cfg.IconsDir != "" {
		return symbols.NewDirSource(cfg.IconsDir)
	}

	var opts []symbols.HTTPSourceOption
	if listingCache, err := newCatalogCache(cfg, noCache); err == nil {
		opts = append(opts, symbols.WithCache(listingCache, catalogCacheTTL))
	}
	return symbols.NewHTTPSource(cfg.URL, opts...)
}

// newMatcher assembles a catalog and matcher from resolved config.
func (c *CLI) newMatcher(cfg Config, noCache bool) (*symbols.Catalog, *symbols.Matcher) {
	source := newCatalogSource(cfg.Catalog, noCache)
	catalog := symbols.NewCatalog(source, c.Logger)
	mcfg := symbols.DefaultConfig()
	if cfg.Matcher.Threshold > 0 {
		mcfg.Threshold = cfg.Matcher.Threshold
	}
	return catalog, symbols.NewMatcher(catalog, mcfg)
}

// newCatalogCache selects the listing-cache backend from config.
// --no-cache overrides any configured backend.
func newCatalogCache(cfg CatalogConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache {
	case "null":
		return cache.NewNullCache(), nil
	case "", "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown catalog cache backend %q", cfg.Cache)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pidcanvas/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
