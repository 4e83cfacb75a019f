package view

import (
	"context"

	"github.com/goliatone/git-view/internal/executor"
)

// FetchURL returns the raw fetch URL configured for remote. git echoes the
// remote name back when it has no URL, which is reported as MissingGitRemote.
func FetchURL(ctx context.Context, remote string, exec executor.Executor) (string, error) {
	raw, err := exec.RemoteURL(ctx, remote)
	if err != nil {
		return "", fromExecutor(err)
	}
	if raw == remote {
		return "", newError(MissingGitRemote, nil, "Looks like your git remote isn't set for '%s'", remote)
	}
	return raw, nil
}
