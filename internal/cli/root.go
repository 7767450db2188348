// Package cli provides the Cobra command structure for talign.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/talign/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root talign command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "talign",
		Short: "Wrap and align plain text to a fixed line width",
		Long: `talign reformats plain text: it wraps words into lines of a bounded
maximum width and aligns each line to the left, to the right, or fully
justified.

Words are never split, reordered, or dropped. A word longer than the
maximum width stands on its own line, unpadded. talign reads stdin or
formats files and whole directory trees, optionally rewriting sources
in place with atomic writes and backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
