// Package main is the entry point for the slidefmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/slidefmt/internal/cli"
	"github.com/yaklabco/slidefmt/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/slidefmt/pkg/rewrite/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrChangesPending - it's just a signal for exit code.
		if !errors.Is(err, cli.ErrChangesPending) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return 0
}
