package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Environment variables read by EnvParser.
const (
	EnvGitImplementation = "GIT_VIEW_GIT_IMPLEMENTATION"
	EnvGitBinary         = "GIT_VIEW_GIT_BINARY"
	EnvBrowser           = "GIT_VIEW_BROWSER"
	EnvLogLevel          = "GIT_VIEW_LOG_LEVEL"
	EnvLogFormat         = "GIT_VIEW_LOG_FORMAT"
	EnvVerbose           = "GIT_VIEW_VERBOSE"
	EnvQuiet             = "GIT_VIEW_QUIET"
)

// EnvParser parses configuration from GIT_VIEW_* environment variables.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		getEnv: os.Getenv,
	}
}

// NewEnvParserWithGetter creates a new environment variable parser with custom getter.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{
		getEnv: getter,
	}
}

// ParseEnv returns a Config holding only the values present in the
// environment. Every invalid value is reported in a single error.
func (p *EnvParser) ParseEnv() (*Config, error) {
	var errs []string
	config := New()

	if err := p.parseGit(config); err != nil {
		errs = append(errs, err.Error())
	}

	if browser := strings.TrimSpace(p.getEnv(EnvBrowser)); browser != "" {
		config.Browser.Command = browser
	}

	if err := p.parseLogging(config); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("environment variable parsing errors: %s", strings.Join(errs, "; "))
	}

	return config, nil
}

func (p *EnvParser) parseGit(config *Config) error {
	if impl := p.getEnv(EnvGitImplementation); impl != "" {
		if !slices.Contains(validGitImplementations, impl) {
			return fmt.Errorf("invalid %s: must be one of [%s], got %q",
				EnvGitImplementation, strings.Join(validGitImplementations, ", "), impl)
		}
		config.Git.Implementation = impl
	}

	if binary := p.getEnv(EnvGitBinary); binary != "" {
		config.Git.Binary = binary
	}

	return nil
}

// parseLogging parses logging-related environment variables
func (p *EnvParser) parseLogging(config *Config) error {
	var errs []string

	if level := p.getEnv(EnvLogLevel); level != "" {
		if !slices.Contains(validLogLevels, level) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [debug, info, warn, error], got %q", EnvLogLevel, level))
		} else {
			config.Logging.Level = level
		}
	}

	if format := p.getEnv(EnvLogFormat); format != "" {
		if !slices.Contains(validLogFormats, format) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [text, json], got %q", EnvLogFormat, format))
		} else {
			config.Logging.Format = format
		}
	}

	if verboseStr := p.getEnv(EnvVerbose); verboseStr != "" {
		verbose, err := parseBool(verboseStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvVerbose, err))
		} else {
			config.setLoggingVerbose(verbose)
		}
	}

	if quietStr := p.getEnv(EnvQuiet); quietStr != "" {
		quiet, err := parseBool(quietStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvQuiet, err))
		} else {
			config.setLoggingQuiet(quiet)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// parseBool accepts strconv.ParseBool values plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("invalid boolean value %q", s)
	}
	return v, nil
}
