package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/config"
)

var rankdirs = []string{"TB", "BT", "LR", "RL"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for modgraph.

Bash:
  $ source <(modgraph completion bash)

Zsh:
  $ modgraph completion zsh > "${fpath[1]}/_modgraph"

Fish:
  $ modgraph completion fish > ~/.config/fish/completions/modgraph.fish

PowerShell:
  PS> modgraph completion powershell | Out-String | Invoke-Expression

Format, rank direction and config file arguments complete as well.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unknown shell %q", args[0])
		},
	}
}

// registerDrawCompletions adds value completion for the draw flags on cmd.
func registerDrawCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("rankdir", cobra.FixedCompletions(rankdirs, cobra.ShellCompDirectiveNoFileComp))
}

// registerConfigCompletion limits --config to TOML files.
func registerConfigCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("config", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})
}

// completeFormats completes the last entry of a comma separated format
// list, leaving out formats already given.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	given, prefix := splitLast(toComplete)
	var out []string
	for _, f := range config.ValidFormats {
		if slices.Contains(given, f) {
			continue
		}
		out = append(out, prefix+f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// splitLast splits "svg,dot,p" into the complete entries [svg dot] and
// the prefix "svg,dot," that completions are appended to.
func splitLast(s string) (given []string, prefix string) {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			given = append(given, s[start:i])
			start = i + 1
		}
	}
	return given, s[:start]
}
