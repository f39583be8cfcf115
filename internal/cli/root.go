// Package cli provides the Cobra command structure for gocut.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocut/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gocut command with all subcommands.
// The root command itself performs the cut; version and init are the only
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	flags := &cutFlags{}

	rootCmd := &cobra.Command{
		Use:   "gocut [flags] [FILE...]",
		Short: "Extract selected bytes, characters, or fields from lines",
		Long: `gocut cuts out selected portions of each line of its input files,
in the manner of the Unix cut utility.

Exactly one of --bytes, --chars, or --fields chooses the selection mode.
Positions are 1-based and comma-separated; "3-5" selects an inclusive
range. A FILE of "-" reads standard input, as does giving no FILE at all.

Examples:
  gocut -f 1,3 -d , users.csv       # fields 1 and 3 of a CSV
  gocut -c 1-8 access.log           # first eight characters per line
  gocut -b 1-4 - < data.bin         # first four bytes per line of stdin`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	addCutFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newVersionCommand(info))
	rootCmd.AddCommand(newInitCommand())

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
