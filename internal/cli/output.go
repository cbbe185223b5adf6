package cli

import (
	"errors"
	"fmt"

	"harnesspair/internal/domain"
)

// Exit codes for CLI commands
const (
	ExitSuccess      = 0 // Command completed
	ExitFailure      = 1 // Generation ran but could not produce a result
	ExitCommandError = 2 // Command error (bad flags, config, database not found, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// generationExit maps a generation error onto an exit code: storage
// problems are command errors, everything else is a failed run
func generationExit(err error) *ExitError {
	if errors.Is(err, domain.ErrStorage) {
		return WrapExitError(ExitCommandError, "storage error", err)
	}
	return WrapExitError(ExitFailure, "generation failed", err)
}
