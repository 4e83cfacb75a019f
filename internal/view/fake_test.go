package view

import (
	"context"

	"github.com/goliatone/git-view/internal/executor"
)

// reply is a scripted executor answer. A nil reply means git exited non-zero.
type reply struct {
	out string
	err error
}

func says(out string) *reply { return &reply{out: out} }

func errs(err error) *reply { return &reply{err: err} }

// fakeExecutor answers queries from a script keyed by query name, optionally
// suffixed with ":<arg>". Unscripted queries fail like a non-zero git exit.
type fakeExecutor struct {
	replies map[string]*reply
	calls   []string
}

func newFakeExecutor(replies map[string]*reply) *fakeExecutor {
	if replies == nil {
		replies = map[string]*reply{}
	}
	return &fakeExecutor{replies: replies}
}

func (f *fakeExecutor) answer(key string) (string, error) {
	f.calls = append(f.calls, key)
	r, ok := f.replies[key]
	if !ok || r == nil {
		return "", &executor.CommandError{Args: []string{key}, ExitCode: 1}
	}
	return r.out, r.err
}

func (f *fakeExecutor) IsValidRepository(ctx context.Context) error {
	_, err := f.answer("valid")
	return err
}

func (f *fakeExecutor) LocalBranch(ctx context.Context) (string, error) {
	return f.answer("local-branch")
}

func (f *fakeExecutor) DefaultRemote(ctx context.Context) (string, error) {
	return f.answer("default-remote")
}

func (f *fakeExecutor) TrackedRemote(ctx context.Context, branch string) (string, error) {
	return f.answer("tracked-remote:" + branch)
}

func (f *fakeExecutor) UpstreamBranch(ctx context.Context, branch string) (string, error) {
	return f.answer("upstream-branch:" + branch)
}

func (f *fakeExecutor) DefaultBranch(ctx context.Context, remote string) (string, error) {
	return f.answer("default-branch:" + remote)
}

func (f *fakeExecutor) RemoteURL(ctx context.Context, remote string) (string, error) {
	return f.answer("remote-url:" + remote)
}

func (f *fakeExecutor) CurrentTag(ctx context.Context) (string, error) {
	return f.answer("current-tag")
}

func (f *fakeExecutor) CurrentCommit(ctx context.Context) (string, error) {
	return f.answer("current-commit")
}

func (f *fakeExecutor) CurrentWorkingDirectory(ctx context.Context) (string, error) {
	return f.answer("cwd")
}
