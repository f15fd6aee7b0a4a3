package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

// parseCommand creates the parse command normalizing flexible graph input.
func (c *CLI) parseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Normalize flexible node/edge input into canonical graph JSON",
		Long: `Normalize flexible node/edge input into canonical graph JSON.

Accepts the lenient wire format: nodes as bare strings or objects (with
id/name and image URL aliases), edges as [source, target] pairs or objects
using any of the source/from/src/a and target/to/dst/b key pairs. Entries
without a usable identity are skipped with a warning, edges referencing
unknown nodes are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>.graph.json)")

	return cmd
}

func (c *CLI) runParse(path, output string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	nodes, edges, err := graph.ParseInput(data)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	g := graph.Build(nodes, edges, c.Logger)

	if output == "" {
		base := path[:len(path)-len(filepath.Ext(path))]
		output = base + ".graph.json"
	}
	if err := graph.WriteFile(g, output); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	printSuccess("Parsed %s", filepath.Base(path))
	printGraphStats(len(g.Nodes), len(g.Edges))
	printFile(output)
	printNextStep("Compute a layout", fmt.Sprintf("%s layout %s", appName, output))
	return nil
}
