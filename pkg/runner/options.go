// Package runner provides multi-file formatting orchestration: discovery
// of deck files and a worker pool over the rewrite pipeline.
package runner

import "github.com/yaklabco/slidefmt/pkg/rewrite"

// Options controls a multi-file formatting run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// Empty uses the process working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered deck files. Defaults via DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching files (--pattern).
	// Empty includes everything that matches Extensions.
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means one worker per CPU.
	Jobs int

	// Pipeline holds the per-file write behavior.
	Pipeline rewrite.PipelineOptions
}

// DefaultExtensions returns the default deck file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
