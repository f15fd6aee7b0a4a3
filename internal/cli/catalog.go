package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// catalogCommand creates the catalog command for inspecting the symbol set.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		configPath string
		catalogURL string
		iconsDir   string
		asJSON     bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the symbol catalog",
		Long: `Fetch and list the symbol catalog.

Shows every known symbol name (canonicalized) with its category. Use
--json for machine-readable output in the listing wire format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if catalogURL != "" {
				cfg.Catalog.URL = catalogURL
			}
			if iconsDir != "" {
				cfg.Catalog.IconsDir = iconsDir
			}
			if cfg.Catalog.URL == "" && cfg.Catalog.IconsDir == "" {
				return fmt.Errorf("no symbol catalog configured: set --catalog-url or --icons-dir")
			}
			return c.runCatalog(withLogger(cmd.Context(), c.Logger), cfg, asJSON, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/pidcanvas/config.toml)")
	cmd.Flags().StringVar(&catalogURL, "catalog-url", "", "symbol listing endpoint")
	cmd.Flags().StringVar(&iconsDir, "icons-dir", "", "local icons directory serving as catalog")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the listing as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the catalog response cache")

	return cmd
}

func (c *CLI) runCatalog(ctx context.Context, cfg Config, asJSON, noCache bool) error {
	catalog, _ := c.newMatcher(cfg, noCache)
	if err := loadCatalog(ctx, catalog); err != nil {
		return err
	}

	entries := catalog.Entries()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"success": true, "symbols": entries})
	}

	source := cfg.Catalog.URL
	if cfg.Catalog.IconsDir != "" {
		source = cfg.Catalog.IconsDir
	}
	printKeyValue("Source", source)
	printSuccess("%d symbols", catalog.Len())
	for _, name := range catalog.Names() {
		printDetail("%s", name)
	}
	return nil
}
