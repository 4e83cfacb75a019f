package view

import (
	"context"

	"github.com/goliatone/git-view/internal/executor"
)

// DefaultRemote is used whenever nothing more specific is configured.
const DefaultRemote = "origin"

// ResolveRemote picks the remote to browse, in order: the override,
// "origin" when not on a branch, open.default.remote, the branch's tracked
// remote, and finally "origin".
func ResolveRemote(ctx context.Context, remoteOverride string, local LocalRef, exec executor.Executor) (string, error) {
	if remoteOverride != "" {
		return remoteOverride, nil
	}
	if !local.IsBranch {
		return DefaultRemote, nil
	}

	remote, err := exec.DefaultRemote(ctx)
	if missing, fault := absent(err); fault != nil {
		return "", fault
	} else if !missing && remote != "" {
		return remote, nil
	}

	remote, err = exec.TrackedRemote(ctx, local.Branch)
	if missing, fault := absent(err); fault != nil {
		return "", fault
	} else if !missing && remote != "" {
		return remote, nil
	}

	return DefaultRemote, nil
}
