// Package cli provides the Cobra command structure for taglint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/taglint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root taglint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "taglint",
		Short: "A fast, self-fixing whitespace linter for markup tags",
		Long: `taglint checks the whitespace around tag delimiters in markup files:
HTML, XML, SVG, and JSX-like component templates.

Four boundaries are checked independently: the gap inside closing and
self-closing delimiters, the gap after the opening bracket, the gap before
a self-closing slash, and the gap before the closing bracket. Each boundary
has its own policy, and most violations can be fixed automatically with
conflict detection and dry-run support.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
