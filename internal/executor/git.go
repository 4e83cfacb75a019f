package executor

import (
	"context"
	"fmt"
)

// gitExecutor implements Executor by running git through a GitCommandRunner.
type gitExecutor struct {
	runner GitCommandRunner
	dir    string
}

// NewGitExecutor creates an Executor that shells out to the given git binary
// from dir. An empty dir uses the process working directory.
func NewGitExecutor(binary, dir string) Executor {
	return NewGitExecutorWithRunner(NewDefaultGitCommandRunner(binary), dir)
}

// NewGitExecutorWithRunner creates an Executor with a custom command runner.
func NewGitExecutorWithRunner(runner GitCommandRunner, dir string) Executor {
	return &gitExecutor{runner: runner, dir: dir}
}

func (g *gitExecutor) run(ctx context.Context, args ...string) (string, error) {
	return g.runner.Run(ctx, g.dir, args...)
}

func (g *gitExecutor) IsValidRepository(ctx context.Context) error {
	_, err := g.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err
}

func (g *gitExecutor) LocalBranch(ctx context.Context) (string, error) {
	return g.run(ctx, "symbolic-ref", "-q", "--short", "HEAD")
}

func (g *gitExecutor) DefaultRemote(ctx context.Context) (string, error) {
	return g.run(ctx, "config", "open.default.remote")
}

func (g *gitExecutor) TrackedRemote(ctx context.Context, branch string) (string, error) {
	return g.run(ctx, "config", fmt.Sprintf("branch.%s.remote", branch))
}

func (g *gitExecutor) UpstreamBranch(ctx context.Context, branch string) (string, error) {
	return g.run(ctx, "config", fmt.Sprintf("branch.%s.merge", branch))
}

func (g *gitExecutor) DefaultBranch(ctx context.Context, remote string) (string, error) {
	return g.run(ctx, "rev-parse", "--abbrev-ref", remote+"/HEAD")
}

func (g *gitExecutor) RemoteURL(ctx context.Context, remote string) (string, error) {
	return g.run(ctx, "ls-remote", "--get-url", remote)
}

func (g *gitExecutor) CurrentTag(ctx context.Context) (string, error) {
	return g.run(ctx, "describe", "--tags", "--exact-match")
}

func (g *gitExecutor) CurrentCommit(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "HEAD")
}

func (g *gitExecutor) CurrentWorkingDirectory(ctx context.Context) (string, error) {
	return g.run(ctx, "rev-parse", "--show-prefix")
}
