package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GridSize != 40 {
		t.Errorf("GridSize = %v, want 40", cfg.Server.GridSize)
	}
	if cfg.Catalog.BaseURL != "/static/symbols" || cfg.Catalog.Ext != "png" {
		t.Errorf("catalog defaults = %+v", cfg.Catalog)
	}
	if cfg.Catalog.Cache != "file" {
		t.Errorf("catalog cache = %q, want file", cfg.Catalog.Cache)
	}
	if cfg.Positions.Backend != "file" {
		t.Errorf("positions backend = %q, want file", cfg.Positions.Backend)
	}
	if cfg.Diagrams.Backend != "" {
		t.Errorf("diagrams backend = %q, want disabled", cfg.Diagrams.Backend)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9000

[catalog]
icons_dir = "/srv/icons"
cache = "redis"
redis_addr = "localhost:6379"

[matcher]
threshold = 0.6

[positions]
backend = "redis"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Server.GridSize != 40 {
		t.Errorf("GridSize = %v, want default 40", cfg.Server.GridSize)
	}
	if cfg.Catalog.IconsDir != "/srv/icons" || cfg.Catalog.BaseURL != "/static/symbols" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Catalog.Cache != "redis" || cfg.Catalog.RedisAddr != "localhost:6379" {
		t.Errorf("catalog cache = %+v", cfg.Catalog)
	}
	if cfg.Matcher.Threshold != 0.6 {
		t.Errorf("threshold = %v", cfg.Matcher.Threshold)
	}
	if cfg.Positions.Backend != "redis" || cfg.Positions.RedisAddr != "localhost:6379" {
		t.Errorf("positions = %+v", cfg.Positions)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() with an explicit missing file should error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with malformed TOML should error")
	}
}
