package rewrite

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/slidefmt/pkg/diff"
	"github.com/yaklabco/slidefmt/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineOptions controls how formatted files reach disk.
type PipelineOptions struct {
	// DryRun computes diffs without writing anything.
	DryRun bool

	// Check reports whether a rewrite is needed without writing, and
	// without computing diffs.
	Check bool

	// Backup configures sidecar backups before the first rewrite.
	Backup fsutil.BackupConfig

	// StrictRaceDetection re-hashes content when checking for concurrent
	// modification. When false only mod time and size are compared.
	StrictRaceDetection bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{StrictRaceDetection: true}
}

// PipelineResult is the outcome of processing one file.
type PipelineResult struct {
	// Path is the file that was processed.
	Path string

	// Changed is true when the rule chain rewrote anything.
	Changed bool

	// Applied lists rules that changed the file, in application order.
	Applied []string

	// Diff is the unified diff for dry-run mode (nil otherwise).
	Diff *diff.Diff

	// Skipped is true when the file was left alone despite pending
	// changes (e.g., it was modified while being processed).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true when a sidecar backup was written.
	BackupCreated bool

	// Written is true when the file was rewritten on disk.
	Written bool
}

// Summary returns a short human-readable outcome tag.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "rewrote (backup created)"
	case pr.Written:
		return "rewrote"
	case pr.Changed:
		return "changes pending"
	default:
		return "unchanged"
	}
}

// Pipeline runs the engine against files with read/write safety: hashed
// reads, concurrent-modification detection, optional backups, and atomic
// writes.
type Pipeline struct {
	// Engine applies the rule chain.
	Engine *Engine

	// RuleNames is the ordered rule and rule-set selection for this run.
	RuleNames []string
}

// NewPipeline creates a Pipeline over the given engine and selection.
func NewPipeline(engine *Engine, ruleNames []string) *Pipeline {
	return &Pipeline{Engine: engine, RuleNames: ruleNames}
}

// ProcessFile reads path, runs the rule chain, and persists the result
// according to opts.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	return p.process(ctx, path, string(content), info, opts)
}

// ProcessContent runs the rule chain over in-memory content. Used by
// tests and by callers that already hold the file content; never writes.
func (p *Pipeline) ProcessContent(ctx context.Context, path, content string, opts PipelineOptions) (*PipelineResult, error) {
	return p.process(ctx, path, content, nil, opts)
}

func (p *Pipeline) process(
	ctx context.Context,
	path, content string,
	info *fsutil.FileInfo,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	run, err := p.Engine.Run(ctx, content, p.RuleNames)
	if err != nil {
		return nil, err
	}

	result.Changed = run.Changed
	result.Applied = run.Applied
	if !run.Changed {
		return result, nil
	}

	if opts.Check {
		return result, nil
	}
	if opts.DryRun || info == nil {
		result.Diff = diff.Generate(path, content, run.Output)
		return result, nil
	}

	// Refuse to clobber edits made while we were processing.
	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, path, []byte(run.Output), info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error
	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}
	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the matching pipeline error type,
// using errors.Is rather than string matching.
func categorizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
