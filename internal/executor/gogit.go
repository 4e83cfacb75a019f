package executor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// goGitExecutor implements Executor by reading the repository with go-git
// instead of spawning git. Failures are reported as *CommandError so callers
// handle both backends the same way.
type goGitExecutor struct {
	dir  string
	repo *git.Repository
}

// NewGoGitExecutor creates an Executor backed by go-git, opening the
// repository that contains dir. An empty dir uses the process working directory.
func NewGoGitExecutor(dir string) Executor {
	return &goGitExecutor{dir: dir}
}

func (g *goGitExecutor) workDir() (string, error) {
	dir := g.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &LaunchError{Binary: ImplementationGoGit, Err: err}
		}
		dir = wd
	}
	return dir, nil
}

func (g *goGitExecutor) open() (*git.Repository, error) {
	if g.repo != nil {
		return g.repo, nil
	}

	dir, err := g.workDir()
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		failure := commandFailure([]string{"rev-parse", "--is-inside-work-tree"},
			"fatal: not a git repository (or any of the parent directories): %v", err)
		failure.Dir = dir
		failure.Err = err
		return nil, failure
	}

	g.repo = repo
	return repo, nil
}

func (g *goGitExecutor) config(args []string) (*config.Config, error) {
	repo, err := g.open()
	if err != nil {
		return nil, err
	}
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		failure := commandFailure(args, "failed to read git config: %v", err)
		failure.Err = err
		return nil, failure
	}
	return cfg, nil
}

func (g *goGitExecutor) IsValidRepository(ctx context.Context) error {
	repo, err := g.open()
	if err != nil {
		return err
	}
	if _, err := repo.Worktree(); err != nil {
		failure := commandFailure([]string{"rev-parse", "--is-inside-work-tree"}, "fatal: %v", err)
		failure.Err = err
		return failure
	}
	return nil
}

func (g *goGitExecutor) LocalBranch(ctx context.Context) (string, error) {
	args := []string{"symbolic-ref", "-q", "--short", "HEAD"}
	repo, err := g.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", commandFailure(args, "fatal: %v", err)
	}
	// a detached HEAD is stored as a hash reference
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", commandFailure(args, "")
	}
	return head.Target().Short(), nil
}

func (g *goGitExecutor) DefaultRemote(ctx context.Context) (string, error) {
	args := []string{"config", "open.default.remote"}
	cfg, err := g.config(args)
	if err != nil {
		return "", err
	}

	remote := cfg.Raw.Section("open").Subsection("default").Option("remote")
	if remote == "" {
		return "", commandFailure(args, "")
	}
	return remote, nil
}

func (g *goGitExecutor) TrackedRemote(ctx context.Context, branch string) (string, error) {
	args := []string{"config", "branch." + branch + ".remote"}
	cfg, err := g.config(args)
	if err != nil {
		return "", err
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" {
		return "", commandFailure(args, "")
	}
	return b.Remote, nil
}

func (g *goGitExecutor) UpstreamBranch(ctx context.Context, branch string) (string, error) {
	args := []string{"config", "branch." + branch + ".merge"}
	cfg, err := g.config(args)
	if err != nil {
		return "", err
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Merge == "" {
		return "", commandFailure(args, "")
	}
	return b.Merge.String(), nil
}

func (g *goGitExecutor) DefaultBranch(ctx context.Context, remote string) (string, error) {
	args := []string{"rev-parse", "--abbrev-ref", remote + "/HEAD"}
	repo, err := g.open()
	if err != nil {
		return "", err
	}

	ref, err := repo.Reference(plumbing.NewRemoteHEADReferenceName(remote), false)
	if err != nil || ref.Type() != plumbing.SymbolicReference {
		return "", commandFailure(args, "fatal: ambiguous argument '%s/HEAD': unknown revision or path not in the working tree.", remote)
	}
	// refs/remotes/origin/main -> origin/main
	return ref.Target().Short(), nil
}

func (g *goGitExecutor) RemoteURL(ctx context.Context, remote string) (string, error) {
	cfg, err := g.config([]string{"ls-remote", "--get-url", remote})
	if err != nil {
		return "", err
	}

	r, ok := cfg.Remotes[remote]
	if !ok || len(r.URLs) == 0 {
		return remote, nil
	}
	return r.URLs[0], nil
}

func (g *goGitExecutor) CurrentTag(ctx context.Context) (string, error) {
	args := []string{"describe", "--tags", "--exact-match"}
	repo, err := g.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", commandFailure(args, "fatal: %v", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", commandFailure(args, "fatal: %v", err)
	}

	var annotated, lightweight []string
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		// annotated tags point at a tag object, peel it to the commit
		if tag, err := repo.TagObject(target); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				return nil
			}
			if commit.Hash == head.Hash() {
				annotated = append(annotated, ref.Name().Short())
			}
			return nil
		}
		if target == head.Hash() {
			lightweight = append(lightweight, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return "", commandFailure(args, "fatal: %v", err)
	}

	// git describe prefers annotated tags
	matches := annotated
	if len(matches) == 0 {
		matches = lightweight
	}
	if len(matches) == 0 {
		return "", commandFailure(args, "fatal: no tag exactly matches '%s'", head.Hash())
	}
	sort.Strings(matches)
	return matches[0], nil
}

func (g *goGitExecutor) CurrentCommit(ctx context.Context) (string, error) {
	repo, err := g.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", commandFailure([]string{"rev-parse", "HEAD"}, "fatal: %v", err)
	}
	return head.Hash().String(), nil
}

func (g *goGitExecutor) CurrentWorkingDirectory(ctx context.Context) (string, error) {
	args := []string{"rev-parse", "--show-prefix"}
	repo, err := g.open()
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", commandFailure(args, "fatal: %v", err)
	}

	dir, err := g.workDir()
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(resolvePath(wt.Filesystem.Root()), resolvePath(dir))
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", commandFailure(args, "fatal: %s is outside repository", dir)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel) + "/", nil
}

// resolvePath makes p absolute and resolves symlinks so that paths under
// e.g. /tmp and /private/tmp compare equal.
func resolvePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p
}
