package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/git-view/internal/view"
)

// CLIError carries a user facing message and the exit code it maps to.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

func (e *CLIError) ExitCode() int {
	return e.Code
}

func newConfigError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitConfigError, Message: message, Cause: cause}
}

func newValidationError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitValidationError, Message: message, Cause: cause}
}

func newBrowserError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitBrowserError, Message: message, Cause: cause}
}

// newResolveError maps a resolution failure onto its exit code. The view
// error message is already user facing so it is shown on its own.
func newResolveError(err error) *CLIError {
	var viewErr *view.Error
	if !errors.As(err, &viewErr) {
		return &CLIError{Code: ExitGenericError, Message: err.Error(), Cause: err}
	}

	code := ExitGenericError
	switch viewErr.Kind {
	case view.MissingGitRepository:
		code = ExitRepositoryError
	case view.MissingGitRemote, view.InvalidGitUrl:
		code = ExitRemoteError
	case view.CommandFailed, view.IOError, view.InvalidUtf8:
		code = ExitGitError
	}
	return &CLIError{Code: code, Message: viewErr.Error(), Cause: err}
}

// asCLIError classifies an error returned by cobra. Everything the commands
// return is already a *CLIError, so anything else came from cobra's own
// parsing and flag group checks.
func asCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return newValidationError(err.Error(), nil)
}

// printError renders err on w as "git-view: <message>", with the cause on a
// second line when it adds information.
func printError(w io.Writer, err *CLIError) {
	r := lipgloss.NewRenderer(w)
	prefix := r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Render("git-view:")
	fmt.Fprintf(w, "%s %s\n", prefix, err.Message)

	if err.Cause != nil && err.Cause.Error() != err.Message {
		cause := r.NewStyle().Foreground(lipgloss.Color("245")).Render("  Cause: " + err.Cause.Error())
		fmt.Fprintln(w, cause)
	}
}
