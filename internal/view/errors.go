package view

import (
	"errors"
	"fmt"

	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/pkg/gitutil"
)

// ErrorKind classifies why a URL could not be produced.
type ErrorKind int

const (
	MissingGitRepository ErrorKind = iota + 1
	MissingGitRemote
	CommandFailed
	InvalidGitUrl
	InvalidUtf8
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case MissingGitRepository:
		return "missing git repository"
	case MissingGitRemote:
		return "missing git remote"
	case CommandFailed:
		return "command failed"
	case InvalidGitUrl:
		return "invalid git url"
	case InvalidUtf8:
		return "invalid utf-8"
	case IOError:
		return "io error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every resolution step. Message is user facing.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind == kind
	}
	return false
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// fromExecutor maps an executor fault onto an Error. Command failures keep
// git's stderr as the message.
func fromExecutor(err error) *Error {
	var cmdErr *executor.CommandError
	switch {
	case errors.Is(err, executor.ErrInvalidUTF8):
		return &Error{Kind: InvalidUtf8, Message: err.Error(), Err: err}
	case executor.IsLaunchError(err):
		return &Error{Kind: IOError, Message: err.Error(), Err: err}
	case errors.As(err, &cmdErr):
		return &Error{Kind: CommandFailed, Message: cmdErr.Error(), Err: err}
	default:
		return &Error{Kind: IOError, Message: err.Error(), Err: err}
	}
}

// fromParse maps a URL parse failure onto an InvalidGitUrl error.
func fromParse(err error) *Error {
	var urlErr *gitutil.InvalidURLError
	if errors.As(err, &urlErr) {
		return &Error{Kind: InvalidGitUrl, Message: urlErr.Error(), Err: err}
	}
	return &Error{Kind: InvalidGitUrl, Message: err.Error(), Err: err}
}

// absent reports whether err means git answered "not set" and a fallback
// applies. Any other fault is returned so the caller can propagate it.
func absent(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if executor.IsCommandFailure(err) {
		return true, nil
	}
	return false, fromExecutor(err)
}
