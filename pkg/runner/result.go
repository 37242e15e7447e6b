package runner

import "github.com/yaklabco/slidefmt/pkg/rewrite"

// FileOutcome pairs a pipeline result with the path it belongs to.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline result, nil when processing failed.
	Result *rewrite.PipelineResult

	// Error is set when the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files run through the pipeline.
	FilesProcessed int

	// FilesChanged is the number of files the rule chain would rewrite.
	FilesChanged int

	// FilesRewritten is the number of files actually written to disk.
	FilesRewritten int

	// FilesSkipped counts files left alone despite pending changes.
	FilesSkipped int

	// FilesErrored counts files that failed to process.
	FilesErrored int

	// RuleChanges counts, per rule name, how many files it changed.
	RuleChanges map[string]int
}

// Result is the overall runner result, with files in path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// ChangesPending reports whether any file still needs a rewrite (used by
// --check and --dry-run exit codes).
func (r *Result) ChangesPending() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > r.Stats.FilesRewritten
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{RuleChanges: make(map[string]int)}
}

// accumulate folds one file outcome into the aggregate stats.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Result.Written {
		r.Stats.FilesRewritten++
	}
	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	for _, rule := range outcome.Result.Applied {
		r.Stats.RuleChanges[rule]++
	}
}
