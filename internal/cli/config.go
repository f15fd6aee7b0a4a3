package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Configuration
// =============================================================================

// Config is the TOML configuration for the serve command. Every field has a
// usable default so `pidcanvas serve` works with no config file at all.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Matcher   MatcherConfig   `toml:"matcher"`
	Positions PositionsConfig `toml:"positions"`
	Diagrams  DiagramsConfig  `toml:"diagrams"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int     `toml:"port"`
	GridSize float64 `toml:"grid_size"`
}

// CatalogConfig holds symbol catalog settings. URL and IconsDir are
// mutually exclusive; IconsDir wins when both are set.
type CatalogConfig struct {
	// URL of a symbol listing endpoint.
	URL string `toml:"url"`
	// IconsDir scans a local directory of icon images instead.
	IconsDir string `toml:"icons_dir"`
	// BaseURL is the public icons root used in resolved image URLs.
	BaseURL string `toml:"base_url"`
	// Ext is the raster extension for resolved icons.
	Ext string `toml:"ext"`

	// Cache selects the listing-cache backend: "file" (default),
	// "redis" to share one fetch across instances, or "null" to disable.
	Cache string `toml:"cache"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// MatcherConfig tunes the fuzzy matcher.
type MatcherConfig struct {
	// Threshold overrides the default acceptance threshold when > 0.
	Threshold float64 `toml:"threshold"`
}

// PositionsConfig selects the position store backend.
type PositionsConfig struct {
	// Backend: "memory", "file" (default), or "redis".
	Backend string `toml:"backend"`
	// Dir is the file backend's directory (default ~/.config/pidcanvas/positions).
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// DiagramsConfig selects the saved-diagram backend.
type DiagramsConfig struct {
	// Backend: "" (disabled), "memory", or "mongo".
	Backend string `toml:"backend"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     8080,
			GridSize: 40,
		},
		Catalog: CatalogConfig{
			BaseURL: "/static/symbols",
			Ext:     "png",
			Cache:   "file",
		},
		Positions: PositionsConfig{
			Backend: "file",
		},
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// An empty path tries the default location and silently falls back to the
// defaults when no file exists there.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.config/pidcanvas/config.toml.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
