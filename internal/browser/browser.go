package browser

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
)

// Opener hands a URL to something that can display it.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// OpenError reports a URL that could not be opened.
type OpenError struct {
	URL     string
	Command string
	Err     error
}

func (e *OpenError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("failed to open %s with %q: %v", e.URL, e.Command, e.Err)
	}
	return fmt.Sprintf("failed to open %s in the default browser: %v", e.URL, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// New returns an Opener. An empty command uses the system default browser;
// otherwise the command is split on whitespace and started with the URL appended.
func New(command string) Opener {
	if fields := strings.Fields(command); len(fields) > 0 {
		return &commandOpener{name: fields[0], args: fields[1:]}
	}
	return &systemOpener{open: browser.OpenURL}
}

type systemOpener struct {
	open func(string) error
}

func (o *systemOpener) Open(ctx context.Context, url string) error {
	// not interested in browser output
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	if err := o.open(url); err != nil {
		return &OpenError{URL: url, Err: err}
	}
	return nil
}

type commandOpener struct {
	name string
	args []string
}

// Open starts the command and returns without waiting for it; a browser
// may stay open long after git-view exits.
func (o *commandOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return &OpenError{URL: url, Command: o.String(), Err: err}
	}

	args := append(append([]string{}, o.args...), url)
	cmd := exec.Command(o.name, args...)
	if err := cmd.Start(); err != nil {
		return &OpenError{URL: url, Command: o.String(), Err: err}
	}
	return cmd.Process.Release()
}

func (o *commandOpener) String() string {
	return strings.Join(append([]string{o.name}, o.args...), " ")
}
