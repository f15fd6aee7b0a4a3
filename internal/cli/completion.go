package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts via cobra's
// generators.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Print a shell completion script",
		Long: `Print a completion script for bash, zsh, fish, or powershell.

The script goes to stdout. Install it into your shell's completion
directory:

  pidcanvas completion bash > /etc/bash_completion.d/pidcanvas
  pidcanvas completion zsh  > "${fpath[1]}/_pidcanvas"
  pidcanvas completion fish > ~/.config/fish/completions/pidcanvas.fish

or load it for the current session only:

  source <(pidcanvas completion bash)

Zsh needs compinit enabled (autoload -U compinit; compinit in ~/.zshrc);
powershell users can pipe the script through Invoke-Expression from
their profile.`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}
