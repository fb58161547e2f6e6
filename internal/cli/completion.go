package cli

import (
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// shellCompletions maps each supported shell to its script generator and
// a one-line loading hint shown in the command help.
var shellCompletions = map[string]struct {
	gen  func(root *cobra.Command, w io.Writer) error
	hint string
}{
	"bash": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		hint: "source <(mffmt completion bash)",
	},
	"zsh": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		hint: `mffmt completion zsh > "${fpath[1]}/_mffmt"`,
	},
	"fish": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		hint: "mffmt completion fish > ~/.config/fish/completions/mffmt.fish",
	},
	"powershell": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
		hint: "mffmt completion powershell | Out-String | Invoke-Expression",
	},
}

func completionShells() []string {
	shells := make([]string, 0, len(shellCompletions))
	for name := range shellCompletions {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// completionCommand creates the command that prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	shells := completionShells()

	var long strings.Builder
	long.WriteString("Print a shell completion script for mffmt.\n\nTo load completions:\n")
	for _, name := range shells {
		long.WriteString("\n  " + name + ":\n    $ " + shellCompletions[name].hint + "\n")
	}

	return &cobra.Command{
		Use:                   "completion [" + strings.Join(shells, "|") + "]",
		Short:                 "Generate shell completion scripts",
		Long:                  long.String(),
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shellCompletions[args[0]].gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeFormatTargets completes positional arguments with directories and
// the file types mffmt formats by default.
func completeFormatTargets(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "mfapp"}, cobra.ShellCompDirectiveFilterFileExt
}
