package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with pointer booleans so an explicit false in
// the file can be told apart from an absent key.
type fileConfig struct {
	Git     GitConfig     `yaml:"git"`
	Browser BrowserConfig `yaml:"browser"`
	Logging struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Verbose *bool  `yaml:"verbose"`
		Quiet   *bool  `yaml:"quiet"`
	} `yaml:"logging"`
}

// LoadFromFile reads a YAML configuration file. Unknown keys are rejected.
// An empty file yields an empty Config.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &FileError{Path: path, Err: err}
	}

	config := New()
	config.Git = fc.Git
	config.Browser = fc.Browser
	config.Logging.Level = fc.Logging.Level
	config.Logging.Format = fc.Logging.Format
	if fc.Logging.Verbose != nil {
		config.setLoggingVerbose(*fc.Logging.Verbose)
	}
	if fc.Logging.Quiet != nil {
		config.setLoggingQuiet(*fc.Logging.Quiet)
	}
	return config, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/git-view/config.yaml, falling
// back to ~/.config/git-view/config.yaml. It returns "" when neither
// location can be determined.
func DefaultConfigPath() string {
	return defaultConfigPath(os.Getenv, os.UserHomeDir)
}

func defaultConfigPath(getEnv func(string) string, home func() (string, error)) string {
	if xdg := getEnv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git-view", "config.yaml")
	}
	dir, err := home()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, ".config", "git-view", "config.yaml")
}
