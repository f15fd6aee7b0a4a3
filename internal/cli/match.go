package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/symbols"
)

// matchCommand creates the match command resolving labels to symbols.
func (c *CLI) matchCommand() *cobra.Command {
	var (
		configPath  string
		catalogURL  string
		iconsDir    string
		threshold   float64
		explain     bool
		interactive bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "match [label...]",
		Short: "Resolve free-text labels to catalog symbols",
		Long: `Resolve free-text node labels to their closest catalog symbol.

Each label is normalized, checked for exact and synonym matches, and
otherwise scored against every catalog name with a blended token-overlap /
edit-distance metric. Use --explain to see the per-candidate scores and -i
for an interactive explorer.`,
		Args: cobra.ArbitraryArgs,
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
			if threshold > 0 {
				cfg.Matcher.Threshold = threshold
			}
			if cfg.Catalog.URL == "" && cfg.Catalog.IconsDir == "" {
				return fmt.Errorf("no symbol catalog configured: set --catalog-url or --icons-dir")
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			if interactive {
				return c.runMatchInteractive(ctx, cfg, noCache)
			}
			if len(args) == 0 {
				return fmt.Errorf("provide at least one label, or use -i")
			}
			return c.runMatch(ctx, cfg, args, explain, noCache)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/pidcanvas/config.toml)")
	cmd.Flags().StringVar(&catalogURL, "catalog-url", "", "symbol listing endpoint")
	cmd.Flags().StringVar(&iconsDir, "icons-dir", "", "local icons directory serving as catalog")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "acceptance threshold (0 uses the default)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show per-candidate scores")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "interactive match explorer")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the catalog response cache")

	return cmd
}

// runMatch resolves each label and prints the outcome.
func (c *CLI) runMatch(ctx context.Context, cfg Config, labels []string, explain bool, noCache bool) error {
	catalog, matcher := c.newMatcher(cfg, noCache)
	if err := loadCatalog(ctx, catalog); err != nil {
		return err
	}

	for _, label := range labels {
		if name, ok := matcher.FindBest(label); ok {
			printSuccess("%s %s %s", label, iconArrow, StyleHighlight.Render(name))
		} else {
			printWarning("%s: no confident match", label)
		}
		if explain {
			printCandidates(matcher.Explain(label))
			printNewline()
		}
	}
	return nil
}

// printCandidates renders the top scored candidates as detail lines.
func printCandidates(cands []symbols.Candidate) {
	const maxShown = 5
	for i, cand := range cands {
		if i == maxShown {
			printDetail("… %d more", len(cands)-maxShown)
			break
		}
		printDetail("%-24s blended=%.3f  token=%.2f  edit=%.2f",
			cand.Name, cand.Blended, cand.Token, cand.Edit)
	}
}

// runMatchInteractive starts the bubbletea match explorer.
func (c *CLI) runMatchInteractive(ctx context.Context, cfg Config, noCache bool) error {
	catalog, matcher := c.newMatcher(cfg, noCache)
	if err := loadCatalog(ctx, catalog); err != nil {
		return err
	}

	model := NewMatchExplorerModel(matcher)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}

	if m, ok := final.(MatchExplorerModel); ok && m.Accepted != "" {
		fmt.Println(m.Accepted)
	}
	return nil
}

// loadCatalog fetches the catalog with a spinner and logs the load time.
func loadCatalog(ctx context.Context, catalog *symbols.Catalog) error {
	prog := newProgress(loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, "Loading symbol catalog...")
	spinner.Start()
	err := catalog.Load(ctx)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	prog.done(fmt.Sprintf("Loaded %d symbols", catalog.Len()))
	return nil
}
