package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/positions"
)

// positionsCommand creates the positions command for inspecting or clearing
// saved arrangements in the local file store.
func (c *CLI) positionsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Inspect or clear saved node arrangements",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "position store directory (default ~/.config/pidcanvas/positions)")

	show := &cobra.Command{
		Use:   "show [key]",
		Short: "Print the saved arrangement for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := positions.NewFileStore(dir)
			if err != nil {
				return err
			}
			defer store.Close()

			pos, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if pos == nil {
				printWarning("no saved arrangement for %q", args[0])
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(pos)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear [key]",
		Short: "Delete the saved arrangement for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := positions.NewFileStore(dir)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("cleared %q", args[0])
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the position store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := positions.NewFileStore(dir)
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Println(store.Path())
			return nil
		},
	}

	cmd.AddCommand(show, clearCmd, path)
	return cmd
}
