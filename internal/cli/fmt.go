package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefmt/internal/logging"
	"github.com/yaklabco/slidefmt/internal/ui/pretty"
	"github.com/yaklabco/slidefmt/pkg/config"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
	_ "github.com/yaklabco/slidefmt/pkg/rewrite/rules" // Register built-in rules
	"github.com/yaklabco/slidefmt/pkg/runner"
)

type fmtFlags struct {
	ruleSet  string
	rules    []string
	patterns []string
	ignore   []string
	tag      string
	dryRun   bool
	check    bool
	backup   bool
	jobs     int
	summary  bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Slidev deck files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	addFmtFlags(cmd, flags)

	return cmd
}

const fmtLongDescription = `Format Slidev deck files by applying an ordered chain of rewrite rules.

By default, formats all .md and .markdown files in the current directory
and subdirectories using the basic_formatting rule set. Specify paths to
format specific files or directories.

Examples:
  slidefmt fmt                              # Format current directory
  slidefmt fmt slides/                      # Format a directory
  slidefmt fmt deck.md                      # Format a single file
  slidefmt fmt --rule-set advanced_formatting
  slidefmt fmt --rules default_transition,clean_transitions
  slidefmt fmt --pattern '2[0-9]-*.md'      # Only matching files
  slidefmt fmt --dry-run                    # Show diffs without writing
  slidefmt fmt --check                      # Exit 1 if changes needed
  slidefmt fmt --backup                     # Keep .slidefmt.bak sidecars`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, loadedFrom, err := config.Discover(workDir, configPath)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	if loadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldPath, loadedFrom)
	}

	// Overlay CLI flags onto file configuration.
	overlay := &config.Config{
		RuleSet:    flags.ruleSet,
		Rules:      flags.rules,
		SpacingTag: flags.tag,
		Ignore:     flags.ignore,
		Jobs:       flags.jobs,
	}
	overlay.Backups.Enabled = flags.backup
	cfg.Merge(overlay)

	selection := cfg.RuleSelection()

	logger.Debug("configuration resolved",
		logging.FieldRules, selection,
		logging.FieldDryRun, flags.dryRun,
		logging.FieldCheck, flags.check,
		logging.FieldJobs, cfg.Jobs,
	)

	// Resolve the selection up front so bad names fail before any file
	// is touched.
	if _, err := rewrite.DefaultCatalog.Resolve(selection); err != nil {
		return err
	}

	engine := rewrite.NewEngine(rewrite.DefaultCatalog, rewrite.Options{
		SpacingTag: cfg.SpacingTag,
	})
	pipeline := rewrite.NewPipeline(engine, selection)
	fmtRunner := runner.New(pipeline)

	pipelineOpts := rewrite.DefaultPipelineOptions()
	pipelineOpts.DryRun = flags.dryRun
	pipelineOpts.Check = flags.check
	pipelineOpts.Backup.Enabled = cfg.Backups.Enabled

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		IncludeGlobs: flags.patterns,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Pipeline:     pipelineOpts,
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := fmtRunner.Run(logging.WithLogger(ctx, logger), runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	// Report results.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	reportResult(cmd, result, flags, colorMode)

	// Determine exit code based on result.
	if result.HasErrors() {
		return ErrChangesPending
	}
	if (flags.check || flags.dryRun) && result.ChangesPending() {
		return ErrChangesPending
	}

	return nil
}

// reportResult writes per-file statuses, dry-run diffs, and the summary.
func reportResult(cmd *cobra.Command, result *runner.Result, flags *fmtFlags, colorMode string) {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	for _, outcome := range result.Files {
		if outcome.Error != nil || outcome.Result == nil {
			fmt.Fprint(out, styles.FormatFileStatus(outcome))
			continue
		}
		if outcome.Result.Changed || outcome.Result.Skipped {
			fmt.Fprint(out, styles.FormatFileStatus(outcome))
		}
	}

	if flags.dryRun {
		writeDiffs(out, result, styles)
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats, pretty.TerminalWidth(out)))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}
}

func writeDiffs(out io.Writer, result *runner.Result, styles *pretty.Styles) {
	writer := pretty.NewDiffWriter(styles, out)

	var files, additions, deletions int
	for _, outcome := range result.Files {
		if outcome.Result == nil || outcome.Result.Diff == nil || !outcome.Result.Diff.HasChanges() {
			continue
		}
		files++
		additions += outcome.Result.Diff.Additions
		deletions += outcome.Result.Diff.Deletions
		writer.Write(outcome.Result.Diff)
	}
	if files > 0 {
		writer.WriteSummary(files, additions, deletions)
	}
}

func addFmtFlags(cmd *cobra.Command, flags *fmtFlags) {
	cmd.Flags().StringVar(&flags.ruleSet, "rule-set", "",
		"named rule set to apply: basic_formatting, advanced_formatting")
	cmd.Flags().StringSliceVar(&flags.rules, "rules", nil,
		"explicit ordered rule list (overrides --rule-set)")
	cmd.Flags().StringSliceVar(&flags.patterns, "pattern", nil,
		"glob patterns restricting which files are formatted")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.tag, "tag", "",
		"HTML marker inserted after titles (overrides config)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show diffs without writing")
	cmd.Flags().BoolVar(&flags.check, "check", false,
		"exit non-zero when files need formatting, without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false,
		"create sidecar backups before rewriting")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a full summary block")
}
