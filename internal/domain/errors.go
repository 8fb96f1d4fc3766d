package domain

import (
	"errors"
	"fmt"
	"os/exec"
)

var (
	// ErrMissingName is returned when a listed test case carries no name attribute
	ErrMissingName = errors.New("test case has no name")
	// ErrMalformedName is returned when a test name has fewer than two components
	ErrMalformedName = errors.New("test name must have at least two components")
	// ErrRepositoryRootNotFound is returned when no version control marker is found above the start directory
	ErrRepositoryRootNotFound = errors.New("not within a git repository")
	// ErrMissingOutput is returned when a test variant did not write its image
	ErrMissingOutput = errors.New("test did not produce its output image")
)

// Modes the test executable is invoked in
const (
	ModeList = "list"
	ModeRun  = "run"
)

// ExecutableError reports a failed invocation of the test executable
type ExecutableError struct {
	Mode string // ModeList or ModeRun
	Test string // Qualified test name, empty in list mode
	Err  error
}

func (e *ExecutableError) Error() string {
	if e.Test != "" {
		return fmt.Sprintf("test executable failed in %s mode for %s: %v", e.Mode, e.Test, e.Err)
	}
	return fmt.Sprintf("test executable failed in %s mode: %v", e.Mode, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExecutableError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the test executable, or -1 if it never exited
func (e *ExecutableError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// NewExecutableError wraps the error of one invocation of the test executable.
// Only an executable that ran and exited non-zero yields an ExecutableError;
// a failure to start it is returned as a plain wrapped error.
func NewExecutableError(mode, test string, err error) error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("start test executable: %w", err)
	}
	return &ExecutableError{Mode: mode, Test: test, Err: err}
}

// IsExecutableError checks if the error is or wraps an ExecutableError
func IsExecutableError(err error) bool {
	var execErr *ExecutableError
	return err != nil && errors.As(err, &execErr)
}
