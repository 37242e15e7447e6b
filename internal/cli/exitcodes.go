package cli

import (
	"errors"

	"github.com/yaklabco/slidefmt/pkg/rewrite"
)

// Exit codes for slidefmt.
const (
	// ExitSuccess indicates successful execution with nothing left to do.
	ExitSuccess = 0

	// ExitChangesPending indicates --check or --dry-run found files that
	// still need formatting, or files failed to process.
	ExitChangesPending = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to carry exit codes out of RunE.
var (
	// ErrChangesPending signals files need formatting (check/dry-run) or
	// failed to process.
	ErrChangesPending = errors.New("formatting changes pending")

	// ErrInvalidUsage signals bad flag or argument combinations.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesPending):
		return ExitChangesPending
	case errors.Is(err, ErrInvalidUsage), errors.Is(err, rewrite.ErrUnknownSelection):
		return ExitInvalidUsage
	case errors.Is(err, rewrite.ErrFileNotFound),
		errors.Is(err, rewrite.ErrPermissionDenied),
		errors.Is(err, rewrite.ErrWriteFailure):
		return ExitIOError
	default:
		return ExitChangesPending
	}
}
