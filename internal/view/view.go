package view

import (
	"context"

	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/pkg/gitutil"
)

// Logger captures the structured logging surface the viewer relies on.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Viewer.
type Option func(*Viewer)

// WithLogger sets the logger used for resolution decisions.
func WithLogger(logger Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Viewer resolves the browse URL for the repository its executor points at.
type Viewer struct {
	exec   executor.Executor
	logger Logger
}

// New creates a Viewer backed by exec.
func New(exec executor.Executor, opts ...Option) *Viewer {
	v := &Viewer{exec: exec, logger: nopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Resolve runs the full chain: repository check, local ref, remote, remote
// ref, fetch URL, parse and generate. The first failing step ends it.
func (v *Viewer) Resolve(ctx context.Context, opts Options) (string, error) {
	if err := v.exec.IsValidRepository(ctx); err != nil {
		if executor.IsCommandFailure(err) {
			return "", newError(MissingGitRepository, err, "Looks like you're not in a valid git repository!")
		}
		return "", fromExecutor(err)
	}

	local, err := ResolveLocal(ctx, opts.Branch, v.exec)
	if err != nil {
		return "", err
	}
	v.logger.Debug("resolved local ref", "ref", local.String(), "branch", local.IsBranch)

	remote, err := ResolveRemote(ctx, opts.Remote, local, v.exec)
	if err != nil {
		return "", err
	}
	v.logger.Debug("resolved remote", "remote", remote)

	remoteRef, err := ResolveRemoteRef(ctx, local, remote, v.exec)
	if err != nil {
		return "", err
	}
	v.logger.Debug("resolved remote ref", "ref", remoteRef)

	raw, err := FetchURL(ctx, remote, v.exec)
	if err != nil {
		return "", err
	}

	parsed, err := gitutil.ParseRemoteURL(raw)
	if err != nil {
		return "", fromParse(err)
	}
	v.logger.Debug("parsed remote url", "protocol", parsed.Protocol, "host", parsed.Domain.Host, "path", parsed.Path)

	url, err := GenerateURL(ctx, remoteRef, parsed, opts, v.exec)
	if err != nil {
		return "", err
	}
	v.logger.Debug("generated url", "url", url)
	return url, nil
}
