package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects a defaulted configuration and reports every problem at once.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	var errors ValidationErrors
	errors = append(errors, validateGit(&cfg.Git)...)
	errors = append(errors, validateBrowser(&cfg.Browser)...)
	errors = append(errors, validateLogging(&cfg.Logging)...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func validateGit(git *GitConfig) []ValidationError {
	var errors []ValidationError

	if !slices.Contains(validGitImplementations, git.Implementation) {
		errors = append(errors, ValidationError{
			Field:   "git.implementation",
			Value:   git.Implementation,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validGitImplementations, ", ")),
		})
	}
	if strings.TrimSpace(git.Binary) == "" {
		errors = append(errors, ValidationError{
			Field:   "git.binary",
			Value:   git.Binary,
			Message: "git binary cannot be empty",
		})
	}

	return errors
}

func validateBrowser(browser *BrowserConfig) []ValidationError {
	// a command made only of whitespace would exec an empty program
	if browser.Command != "" && strings.TrimSpace(browser.Command) == "" {
		return []ValidationError{{
			Field:   "browser.command",
			Value:   browser.Command,
			Message: "browser command cannot be blank",
		}}
	}
	return nil
}

func validateLogging(logging *LoggingConfig) []ValidationError {
	var errors []ValidationError

	if !slices.Contains(validLogLevels, logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		})
	}
	if !slices.Contains(validLogFormats, logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
		})
	}
	if logging.Verbose && logging.Quiet {
		errors = append(errors, ValidationError{
			Field:   "logging",
			Value:   nil,
			Message: "verbose and quiet are mutually exclusive",
		})
	}

	return errors
}
