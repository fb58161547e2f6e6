// Package cli implements the mffmt command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mffmt/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mffmt"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out *printer // per-file result lines
	err *printer // result lines in --stdout mode, where out carries file contents
}

// New creates a new CLI instance. Result lines go to stdout; the logger
// writes to stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		out:    newPrinter(stdout),
		err:    newPrinter(stderr),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	opts := formatOpts{}

	root := &cobra.Command{
		Use:   appName + " [path...]",
		Short: "mffmt formats MathFlow JSON graphs and app manifests",
		Long: `mffmt rewrites JSON files and .mfapp manifests in place in the MathFlow layout.

Top-level keys are indented four spaces. The "nodes" and "links" arrays are
written one compact element per line; everything else is pretty-printed.

With no arguments the current directory is searched recursively for *.json
and *.mfapp files, skipping build/, out/, vcpkg and .git/ paths. Directories
given as arguments are searched the same way; files are formatted directly.
A single "-" formats standard input to standard output.

Examples:
  mffmt                       # format everything under the current directory
  mffmt graphs/ app.mfapp     # format a directory tree and one file
  mffmt --check               # list files that are not formatted
  mffmt --stdout graph.json   # print the formatted file
  mffmt - < graph.json        # format standard input to standard output
  mffmt --watch graphs/       # reformat files under graphs/ as they change`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: completeFormatTargets,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFormat(cmd.Context(), cmd.InOrStdin(), args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().BoolVar(&opts.check, "check", false, "report files that would change without writing them")
	root.Flags().BoolVar(&opts.stdout, "stdout", false, "print formatted output instead of rewriting files")
	root.Flags().StringVar(&opts.configPath, "config", "", "discovery config file (default: ./"+configFileName+" if present)")
	root.Flags().BoolVar(&opts.includeHidden, "include-hidden", false, "also search dot-prefixed files and directories")
	root.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep running and reformat files when they change")
	root.MarkFlagsMutuallyExclusive("check", "stdout", "watch")
	_ = root.MarkFlagFilename("config", "toml")

	root.AddCommand(c.completionCommand())

	return root
}
