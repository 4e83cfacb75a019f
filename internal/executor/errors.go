package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUTF8 is returned when git produced output that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("git output is not valid UTF-8")

// CommandError reports a git query that ran and exited unsuccessfully.
// Stderr holds the trimmed error output.
type CommandError struct {
	Args     []string
	Dir      string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// LaunchError reports that git could not be started at all.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsCommandFailure reports whether err is a git query that ran and failed,
// as opposed to a fault in running it.
func IsCommandFailure(err error) bool {
	var target *CommandError
	return errors.As(err, &target)
}

func IsLaunchError(err error) bool {
	var target *LaunchError
	return errors.As(err, &target)
}

// commandFailure builds a CommandError for backends that do not shell out.
func commandFailure(args []string, format string, a ...any) *CommandError {
	return &CommandError{
		Args:     args,
		Stderr:   fmt.Sprintf(format, a...),
		ExitCode: 1,
	}
}
