package executor

import "context"

// Executor answers the git queries needed to work out what to view.
// Every method returns trimmed output. A query git answers with a non-zero
// exit is reported as a *CommandError; callers treat that as "not set" where
// a fallback exists.
type Executor interface {
	// IsValidRepository confirms the working directory is inside a work tree.
	IsValidRepository(ctx context.Context) error

	// LocalBranch returns the short symbolic name of HEAD. Fails when detached.
	LocalBranch(ctx context.Context) (string, error)

	// DefaultRemote returns the repository-level open.default.remote setting.
	DefaultRemote(ctx context.Context) (string, error)

	// TrackedRemote returns branch.<branch>.remote.
	TrackedRemote(ctx context.Context, branch string) (string, error)

	// UpstreamBranch returns branch.<branch>.merge, e.g. refs/heads/main.
	UpstreamBranch(ctx context.Context, branch string) (string, error)

	// DefaultBranch returns the remote's default branch as <remote>/<branch>.
	DefaultBranch(ctx context.Context, remote string) (string, error)

	// RemoteURL returns the remote's fetch URL. Like ls-remote --get-url it
	// echoes the remote name back when no URL is configured.
	RemoteURL(ctx context.Context, remote string) (string, error)

	// CurrentTag returns the tag pointing exactly at HEAD.
	CurrentTag(ctx context.Context) (string, error)

	// CurrentCommit returns the full commit hash of HEAD.
	CurrentCommit(ctx context.Context) (string, error)

	// CurrentWorkingDirectory returns the working directory relative to the
	// repository root, with a trailing slash, or "" at the root.
	CurrentWorkingDirectory(ctx context.Context) (string, error)
}

// GitCommandRunner defines the interface for executing git commands.
type GitCommandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// Implementation names accepted by New.
const (
	ImplementationExec  = "exec"
	ImplementationGoGit = "go-git"
)
