package di_test

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/internal/view"
	"github.com/goliatone/git-view/pkg/config"
	"github.com/goliatone/git-view/pkg/di"
)

type fakeLogger struct {
	messages []string
}

func (l *fakeLogger) Debug(msg string, args ...any) { l.messages = append(l.messages, msg) }
func (l *fakeLogger) Info(msg string, args ...any)  { l.messages = append(l.messages, msg) }
func (l *fakeLogger) Warn(msg string, args ...any)  { l.messages = append(l.messages, msg) }
func (l *fakeLogger) Error(msg string, args ...any) { l.messages = append(l.messages, msg) }

type fakeOpener struct {
	urls []string
}

func (o *fakeOpener) Open(ctx context.Context, url string) error {
	o.urls = append(o.urls, url)
	return nil
}

// stubExecutor answers as a repository on main whose origin is on GitHub.
type stubExecutor struct {
	executor.Executor
}

func (stubExecutor) IsValidRepository(context.Context) error { return nil }
func (stubExecutor) LocalBranch(context.Context) (string, error) {
	return "main", nil
}
func (stubExecutor) DefaultRemote(context.Context) (string, error) {
	return "", &executor.CommandError{ExitCode: 1}
}
func (stubExecutor) TrackedRemote(context.Context, string) (string, error) {
	return "origin", nil
}
func (stubExecutor) UpstreamBranch(context.Context, string) (string, error) {
	return "refs/heads/main", nil
}
func (stubExecutor) RemoteURL(context.Context, string) (string, error) {
	return "git@github.com:sgoudham/git-view.git", nil
}

func TestNew_Defaults(t *testing.T) {
	c, err := di.New()
	if err != nil {
		t.Fatalf("di.New() error = %v", err)
	}
	defer c.Close()

	if c.Config() == nil || c.Logger() == nil || c.Executor() == nil || c.Opener() == nil || c.Viewer() == nil {
		t.Fatal("expected every service to be provided")
	}
	if c.Config().Git.Implementation != config.GitImplementationExec {
		t.Errorf("implementation = %q, want exec", c.Config().Git.Implementation)
	}
}

func TestNew_WithOverrides(t *testing.T) {
	logger := &fakeLogger{}
	opener := &fakeOpener{}

	c, err := di.New(
		di.WithConfig(config.NewWithDefaults()),
		di.WithLogger(logger),
		di.WithExecutor(stubExecutor{}),
		di.WithOpener(opener),
		di.WithInstrumentation(),
	)
	if err != nil {
		t.Fatalf("di.New() error = %v", err)
	}

	if c.Opener() != opener {
		t.Error("expected injected opener")
	}

	url, err := c.Viewer().Resolve(context.Background(), view.Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if url != "https://github.com/sgoudham/git-view/tree/main" {
		t.Errorf("Resolve() = %q", url)
	}

	if !slices.Contains(logger.messages, "DI container created") {
		t.Errorf("expected instrumentation log, got %v", logger.messages)
	}
	if !slices.Contains(logger.messages, "resolved remote") {
		t.Errorf("expected viewer to log through the container logger, got %v", logger.messages)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  di.Option
	}{
		{name: "nil config", opt: di.WithConfig(nil)},
		{name: "nil logger", opt: di.WithLogger(nil)},
		{name: "nil executor", opt: di.WithExecutor(nil)},
		{name: "nil opener", opt: di.WithOpener(nil)},
		{name: "nil log output", opt: di.WithLogOutput(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := di.New(tt.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNew_UnknownImplementation(t *testing.T) {
	cfg := config.NewWithDefaults()
	cfg.Git.Implementation = "libgit2"

	_, err := di.New(di.WithConfig(cfg), di.WithLogger(&fakeLogger{}))
	if err == nil || !strings.Contains(err.Error(), "libgit2") {
		t.Fatalf("expected unknown implementation error, got %v", err)
	}
}

func TestNew_LogOutput(t *testing.T) {
	cfg := config.NewWithDefaults()
	cfg.Logging.Format = "json"
	cfg.Logging.Verbose = true

	var buf bytes.Buffer
	c, err := di.New(di.WithConfig(cfg), di.WithLogOutput(&buf), di.WithExecutor(stubExecutor{}))
	if err != nil {
		t.Fatalf("di.New() error = %v", err)
	}

	c.Logger().Debug("hello", "key", "value")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected json debug output, got %q", buf.String())
	}
}
