package view

import (
	"context"

	"github.com/goliatone/git-view/internal/executor"
)

// LocalRef is the state of HEAD: either a named branch or not on a branch
// (detached, or an unborn HEAD git refused to name).
type LocalRef struct {
	Branch   string
	IsBranch bool
}

// BranchRef returns a LocalRef on the named branch.
func BranchRef(name string) LocalRef {
	return LocalRef{Branch: name, IsBranch: true}
}

// DetachedRef returns a LocalRef that is not on any branch.
func DetachedRef() LocalRef {
	return LocalRef{}
}

func (l LocalRef) String() string {
	if l.IsBranch {
		return l.Branch
	}
	return "(detached)"
}

// ResolveLocal determines the local branch. An override wins without
// querying git; a failed symbolic-ref lookup means HEAD is detached.
func ResolveLocal(ctx context.Context, branchOverride string, exec executor.Executor) (LocalRef, error) {
	if branchOverride != "" {
		return BranchRef(branchOverride), nil
	}

	branch, err := exec.LocalBranch(ctx)
	if missing, fault := absent(err); fault != nil {
		return LocalRef{}, fault
	} else if missing || branch == "" {
		return DetachedRef(), nil
	}
	return BranchRef(branch), nil
}
