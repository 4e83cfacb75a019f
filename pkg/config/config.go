package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

// Builder assembles a Config from its sources. Later sources override
// earlier ones field by field: defaults < file < environment < flags.
type Builder interface {
	FromFile(path string) Builder
	FromEnv() Builder
	FromFlags(cmd *cobra.Command) Builder
	Build() (*Config, error)
}

// NewBuilder returns a Builder that reads the real environment.
func NewBuilder() Builder {
	return &builder{
		env:         NewEnvParser(),
		defaultPath: DefaultConfigPath,
	}
}

// NewBuilderWithEnv returns a Builder reading variables through getEnv.
func NewBuilderWithEnv(getEnv func(string) string) Builder {
	return &builder{
		env:         NewEnvParserWithGetter(getEnv),
		defaultPath: func() string { return "" },
	}
}

type builder struct {
	env         *EnvParser
	defaultPath func() string
	layers      []*Config
	errs        []error
}

// FromFile layers a YAML file. An empty path looks for the default config
// file, which may be absent; an explicit path must exist.
func (b *builder) FromFile(path string) Builder {
	explicit := path != ""
	if !explicit {
		path = b.defaultPath()
		if path == "" {
			return b
		}
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return b
		}
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *builder) FromEnv() Builder {
	cfg, err := b.env.ParseEnv()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *builder) FromFlags(cmd *cobra.Command) Builder {
	cfg, err := LoadFromFlags(cmd)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// Build merges the layers, applies defaults and validates the result.
func (b *builder) Build() (*Config, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("failed to load configuration: %w", errors.Join(b.errs...))
	}

	cfg := New()
	for _, layer := range b.layers {
		merge(cfg, layer)
	}
	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every field set in src over dst.
func merge(dst, src *Config) {
	if src.Git.Implementation != "" {
		dst.Git.Implementation = src.Git.Implementation
	}
	if src.Git.Binary != "" {
		dst.Git.Binary = src.Git.Binary
	}
	if src.Browser.Command != "" {
		dst.Browser.Command = src.Browser.Command
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.loggingVerboseSet() {
		dst.setLoggingVerbose(src.Logging.Verbose)
	}
	if src.loggingQuietSet() {
		dst.setLoggingQuiet(src.Logging.Quiet)
	}

	// a higher layer choosing one of verbose or quiet overrides the other
	if src.loggingVerboseSet() && src.Logging.Verbose && !src.loggingQuietSet() {
		dst.Logging.Quiet = false
	}
	if src.loggingQuietSet() && src.Logging.Quiet && !src.loggingVerboseSet() {
		dst.Logging.Verbose = false
	}
}
