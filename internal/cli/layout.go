package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
	"github.com/pidcanvas/pidcanvas/pkg/layout"
	"github.com/pidcanvas/pidcanvas/pkg/positions"
)

// layoutCommand creates the layout command computing a scene from a graph.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		key      string
		spacingX float64
		spacingY float64
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a laid-out scene from a canonical graph",
		Long: `Compute a laid-out scene from a canonical graph.

By default the hierarchical engine assigns left-to-right ranks via longest
path and spaces nodes on a fixed grid. With --key, saved arrangements from
the local position store are applied instead and the fixed engine is
selected when any stored position exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, key, layout.Options{
				SpacingX: spacingX,
				SpacingY: spacingY,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>.scene.json)")
	cmd.Flags().StringVar(&key, "key", "", "position-store key with saved arrangements")
	cmd.Flags().Float64Var(&spacingX, "spacing-x", 0, "horizontal rank spacing (0 uses the default)")
	cmd.Flags().Float64Var(&spacingY, "spacing-y", 0, "vertical slot spacing (0 uses the default)")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, path, output, key string, opts layout.Options) error {
	g, err := graph.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read graph: %w", err)
	}

	var stored map[string]graph.Position
	if key != "" {
		store, err := positions.NewFileStore("")
		if err != nil {
			return fmt.Errorf("open position store: %w", err)
		}
		defer store.Close()
		if stored, err = store.Get(ctx, key); err != nil {
			return fmt.Errorf("load positions: %w", err)
		}
	}

	scene := layout.Compose(g, stored, opts)

	if output == "" {
		output = sceneOutputPath(path)
	}
	if err := graph.WriteSceneFile(scene, output); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	printSuccess("Laid out %s (%s engine)", filepath.Base(path), scene.Engine)
	printGraphStats(len(scene.Nodes), len(scene.Edges), layoutNote(stored != nil))
	printFile(output)
	printNextStep("Render it", fmt.Sprintf("%s render %s", appName, output))
	return nil
}

// sceneOutputPath derives the scene file name from the graph file name.
func sceneOutputPath(path string) string {
	base := path[:len(path)-len(filepath.Ext(path))]
	if filepath.Ext(base) == ".graph" {
		base = base[:len(base)-len(".graph")]
	}
	return base + ".scene.json"
}
