package view

import (
	"context"
	"strings"

	"github.com/goliatone/git-view/internal/executor"
)

const branchRefPrefix = "refs/heads/"

// ResolveRemoteRef picks the branch, tag or commit to browse on the remote.
//
// On a branch it prefers the upstream merge ref, then the remote's default
// branch, then the local branch name. When detached it uses the exact tag at
// HEAD, then the commit hash; failing both is a CommandFailed error.
func ResolveRemoteRef(ctx context.Context, local LocalRef, remote string, exec executor.Executor) (string, error) {
	if local.IsBranch {
		return resolveBranchRef(ctx, local.Branch, remote, exec)
	}
	return resolveDetachedRef(ctx, exec)
}

func resolveBranchRef(ctx context.Context, branch, remote string, exec executor.Executor) (string, error) {
	upstream, err := exec.UpstreamBranch(ctx, branch)
	if missing, fault := absent(err); fault != nil {
		return "", fault
	} else if !missing {
		return strings.TrimPrefix(upstream, branchRefPrefix), nil
	}

	// <remote>/<branch>, keep everything after the first slash
	def, err := exec.DefaultBranch(ctx, remote)
	if missing, fault := absent(err); fault != nil {
		return "", fault
	} else if !missing {
		if _, name, ok := strings.Cut(def, "/"); ok {
			return name, nil
		}
		return def, nil
	}

	return branch, nil
}

func resolveDetachedRef(ctx context.Context, exec executor.Executor) (string, error) {
	tag, err := exec.CurrentTag(ctx)
	if missing, fault := absent(err); fault != nil {
		return "", fault
	} else if !missing {
		return tag, nil
	}

	commit, err := exec.CurrentCommit(ctx)
	if err != nil {
		return "", fromExecutor(err)
	}
	return commit, nil
}
