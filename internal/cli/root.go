// Package cli provides the Cobra command structure for slidefmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root slidefmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "slidefmt",
		Short: "An opinionated formatter for Slidev markdown decks",
		Long: `slidefmt is an opinionated formatter for Slidev markdown decks.

It parses a deck into its global header and slides, applies an ordered
chain of idempotent rewrite rules (transition normalization, title
cleanup, spacing), and writes the result back. Formatting is safe by
default: atomic writes, concurrent-modification detection, dry-run
mode, and optional backups.`,
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

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newRuleSetsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
