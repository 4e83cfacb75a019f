package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type testRepo struct {
	dir    string
	repo   *git.Repository
	commit plumbing.Hash
}

// setupGoGitRepo creates a repository on branch main with one commit and an
// origin remote pointing at GitHub.
func setupGoGitRepo(t *testing.T) *testRepo {
	t.Helper()

	// keep the user's global git config out of the results
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName("main")},
	})
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# git-view\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("failed to stage file: %v", err)
	}
	hash, err := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:sgoudham/git-view.git"},
	}); err != nil {
		t.Fatalf("failed to create remote: %v", err)
	}

	return &testRepo{dir: dir, repo: repo, commit: hash}
}

func TestGoGitExecutor_BranchState(t *testing.T) {
	r := setupGoGitRepo(t)
	ctx := context.Background()

	if err := r.repo.CreateBranch(&config.Branch{
		Name:   "main",
		Remote: "fork",
		Merge:  plumbing.NewBranchReferenceName("trunk"),
	}); err != nil {
		t.Fatalf("failed to configure branch: %v", err)
	}

	exec := NewGoGitExecutor(r.dir)

	if err := exec.IsValidRepository(ctx); err != nil {
		t.Fatalf("IsValidRepository: %v", err)
	}

	tests := []struct {
		name string
		call func() (string, error)
		want string
	}{
		{name: "local branch", call: func() (string, error) { return exec.LocalBranch(ctx) }, want: "main"},
		{name: "tracked remote", call: func() (string, error) { return exec.TrackedRemote(ctx, "main") }, want: "fork"},
		{name: "upstream branch", call: func() (string, error) { return exec.UpstreamBranch(ctx, "main") }, want: "refs/heads/trunk"},
		{name: "remote url", call: func() (string, error) { return exec.RemoteURL(ctx, "origin") }, want: "git@github.com:sgoudham/git-view.git"},
		{name: "unknown remote echoes name", call: func() (string, error) { return exec.RemoteURL(ctx, "nope") }, want: "nope"},
		{name: "current commit", call: func() (string, error) { return exec.CurrentCommit(ctx) }, want: r.commit.String()},
		{name: "working directory at root", call: func() (string, error) { return exec.CurrentWorkingDirectory(ctx) }, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGoGitExecutor_MissingConfig(t *testing.T) {
	r := setupGoGitRepo(t)
	ctx := context.Background()
	exec := NewGoGitExecutor(r.dir)

	if _, err := exec.DefaultRemote(ctx); !IsCommandFailure(err) {
		t.Errorf("DefaultRemote: expected command failure, got %v", err)
	}
	if _, err := exec.TrackedRemote(ctx, "main"); !IsCommandFailure(err) {
		t.Errorf("TrackedRemote: expected command failure, got %v", err)
	}
	if _, err := exec.UpstreamBranch(ctx, "main"); !IsCommandFailure(err) {
		t.Errorf("UpstreamBranch: expected command failure, got %v", err)
	}
	if _, err := exec.DefaultBranch(ctx, "origin"); !IsCommandFailure(err) {
		t.Errorf("DefaultBranch: expected command failure, got %v", err)
	}
	if _, err := exec.CurrentTag(ctx); !IsCommandFailure(err) {
		t.Errorf("CurrentTag: expected command failure, got %v", err)
	}
}

func TestGoGitExecutor_DefaultRemote(t *testing.T) {
	r := setupGoGitRepo(t)

	cfg, err := r.repo.Config()
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	cfg.Raw.Section("open").Subsection("default").SetOption("remote", "upstream")
	if err := r.repo.SetConfig(cfg); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := NewGoGitExecutor(r.dir).DefaultRemote(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "upstream" {
		t.Errorf("got %q, want %q", got, "upstream")
	}
}

func TestGoGitExecutor_DefaultBranch(t *testing.T) {
	r := setupGoGitRepo(t)

	head := plumbing.NewSymbolicReference(
		plumbing.NewRemoteHEADReferenceName("origin"),
		plumbing.NewRemoteReferenceName("origin", "develop"),
	)
	if err := r.repo.Storer.SetReference(head); err != nil {
		t.Fatalf("failed to set remote HEAD: %v", err)
	}

	got, err := NewGoGitExecutor(r.dir).DefaultBranch(context.Background(), "origin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "origin/develop" {
		t.Errorf("got %q, want %q", got, "origin/develop")
	}
}

func TestGoGitExecutor_DetachedWithTags(t *testing.T) {
	r := setupGoGitRepo(t)
	ctx := context.Background()

	sig := &object.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()}
	if _, err := r.repo.CreateTag("v1.1.0", r.commit, &git.CreateTagOptions{Tagger: sig, Message: "release"}); err != nil {
		t.Fatalf("failed to create annotated tag: %v", err)
	}
	if _, err := r.repo.CreateTag("v1.0.0", r.commit, nil); err != nil {
		t.Fatalf("failed to create lightweight tag: %v", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Hash: r.commit}); err != nil {
		t.Fatalf("failed to detach HEAD: %v", err)
	}

	exec := NewGoGitExecutor(r.dir)

	if _, err := exec.LocalBranch(ctx); !IsCommandFailure(err) {
		t.Fatalf("LocalBranch on detached HEAD: expected command failure, got %v", err)
	}

	tag, err := exec.CurrentTag(ctx)
	if err != nil {
		t.Fatalf("CurrentTag: %v", err)
	}
	if tag != "v1.1.0" {
		t.Errorf("CurrentTag = %q, want %q", tag, "v1.1.0")
	}
}

func TestGoGitExecutor_WorkingDirectory(t *testing.T) {
	r := setupGoGitRepo(t)

	sub := filepath.Join(r.dir, "src", "pkg")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	got, err := NewGoGitExecutor(sub).CurrentWorkingDirectory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "src/pkg/" {
		t.Errorf("got %q, want %q", got, "src/pkg/")
	}
}

func TestGoGitExecutor_NotARepository(t *testing.T) {
	err := NewGoGitExecutor(t.TempDir()).IsValidRepository(context.Background())
	if !IsCommandFailure(err) {
		t.Fatalf("expected command failure, got %v", err)
	}
}
