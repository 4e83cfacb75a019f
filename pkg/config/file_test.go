package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/git-view/pkg/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeConfigFile(t, `
git:
  implementation: go-git
  binary: /opt/git/bin/git
browser:
  command: firefox
logging:
  level: info
  format: json
  verbose: false
  quiet: true
`)

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	want := config.Config{
		Git:     config.GitConfig{Implementation: "go-git", Binary: "/opt/git/bin/git"},
		Browser: config.BrowserConfig{Command: "firefox"},
		Logging: config.LoggingConfig{Level: "info", Format: "json", Quiet: true},
	}
	if diff := cmp.Diff(want, *cfg, ignoreFlags); diff != "" {
		t.Errorf("LoadFromFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	cfg, err := config.LoadFromFile(writeConfigFile(t, ""))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if diff := cmp.Diff(config.Config{}, *cfg, ignoreFlags); diff != "" {
		t.Errorf("expected empty config (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
		var fileErr *config.FileError
		if !errors.As(err, &fileErr) {
			t.Fatalf("expected *FileError, got %T", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.LoadFromFile(writeConfigFile(t, "git:\n  backend: exec\n"))
		if err == nil || !strings.Contains(err.Error(), "backend") {
			t.Fatalf("expected unknown field error, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.LoadFromFile(writeConfigFile(t, "logging: [unterminated\n"))
		if err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("xdg config home", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		want := filepath.Join(xdg, "git-view", "config.yaml")
		if got := config.DefaultConfigPath(); got != want {
			t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
		}
	})

	t.Run("home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		want := filepath.Join(home, ".config", "git-view", "config.yaml")
		if got := config.DefaultConfigPath(); got != want {
			t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
		}
	})
}

func writeAt(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}
