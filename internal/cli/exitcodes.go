package cli

import (
	"errors"

	"github.com/yaklabco/gocut/pkg/extract"
	"github.com/yaklabco/gocut/pkg/position"
	"github.com/yaklabco/gocut/pkg/runner"
)

// Exit codes for gocut.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
// Per-file open and read failures map to an I/O error exit.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}

	return ExitSuccess
}

// ExitCodeForError maps a command error to an exit code. Selection and
// position errors are usage mistakes; file failures are I/O errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrFileFailures) {
		return ExitIOError
	}

	var (
		illegal  *position.IllegalValueError
		inverted *position.InvertedRangeError
	)
	if errors.Is(err, extract.ErrNoSelection) ||
		errors.Is(err, position.ErrEmptyList) ||
		errors.As(err, &illegal) ||
		errors.As(err, &inverted) {
		return ExitInvalidUsage
	}

	return ExitFailure
}
