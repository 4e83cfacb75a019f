package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// DefaultGitBinary is the git executable looked up on PATH.
const DefaultGitBinary = "git"

// defaultGitCommandRunner implements GitCommandRunner using os/exec.
type defaultGitCommandRunner struct {
	binary string
}

// NewDefaultGitCommandRunner creates a new GitCommandRunner that shells out to git.
// An empty binary selects DefaultGitBinary.
func NewDefaultGitCommandRunner(binary string) GitCommandRunner {
	if binary == "" {
		binary = DefaultGitBinary
	}
	return &defaultGitCommandRunner{binary: binary}
}

// Run executes a git command in the specified directory and returns trimmed stdout.
func (r *defaultGitCommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &LaunchError{Binary: r.binary, Err: err}
		}

		msg, decodeErr := trimOutput(stderr.Bytes())
		if decodeErr != nil {
			return "", decodeErr
		}
		return "", &CommandError{
			Args:     args,
			Dir:      dir,
			Stderr:   msg,
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}

	return trimOutput(stdout.Bytes())
}

// trimOutput decodes command output and strips surrounding whitespace,
// including a trailing CRLF.
func trimOutput(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return strings.TrimSpace(string(b)), nil
}
