package executor

import "fmt"

// New creates an Executor for the named implementation rooted at dir.
// An empty implementation selects the exec backend; binary is ignored by go-git.
func New(implementation, binary, dir string) (Executor, error) {
	switch implementation {
	case "", ImplementationExec:
		return NewGitExecutor(binary, dir), nil
	case ImplementationGoGit:
		return NewGoGitExecutor(dir), nil
	default:
		return nil, fmt.Errorf("unknown git implementation %q (expected %q or %q)",
			implementation, ImplementationExec, ImplementationGoGit)
	}
}
