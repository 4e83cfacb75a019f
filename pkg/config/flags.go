package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names registered by AddFlags.
const (
	FlagConfigFile        = "config"
	FlagLogLevel          = "log-level"
	FlagLogFormat         = "log-format"
	FlagVerbose           = "verbose"
	FlagQuiet             = "quiet"
	FlagGitImplementation = "git-implementation"
	FlagBrowser           = "browser"
)

// FlagConfig holds the configuration flags that were explicitly set.
type FlagConfig struct {
	ConfigFile        string
	LogLevel          string
	LogFormat         string
	Verbose           bool
	Quiet             bool
	GitImplementation string
	Browser           string

	verboseSet   bool
	quietSet     bool
	logLevelSet  bool
	logFormatSet bool
	gitImplSet   bool
}

// AddFlags registers the configuration flags on cmd as persistent flags so
// sub-commands inherit them. Values are read back with LoadFromFlags.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(FlagConfigFile, "",
		"Configuration file path (default: $XDG_CONFIG_HOME/git-view/config.yaml)")
	flags.String(FlagLogLevel, "",
		"Logging level (debug, info, warn, error)")
	flags.String(FlagLogFormat, "",
		"Log output format (text, json)")
	flags.BoolP(FlagVerbose, "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	flags.BoolP(FlagQuiet, "q", false,
		"Only log errors")
	flags.String(FlagGitImplementation, "",
		"Git backend (exec, go-git)")
	flags.String(FlagBrowser, "",
		"Command used to open the URL (default: system browser)")

	cmd.MarkFlagsMutuallyExclusive(FlagVerbose, FlagQuiet)
}

// ValidateFlags validates flag values.
func (fc *FlagConfig) ValidateFlags() error {
	var errors []string

	if fc.logLevelSet && !slices.Contains(validLogLevels, fc.LogLevel) {
		errors = append(errors, fmt.Sprintf("log-level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if fc.logFormatSet && !slices.Contains(validLogFormats, fc.LogFormat) {
		errors = append(errors, fmt.Sprintf("log-format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	if fc.gitImplSet && !slices.Contains(validGitImplementations, fc.GitImplementation) {
		errors = append(errors, fmt.Sprintf("git-implementation must be one of: %s", strings.Join(validGitImplementations, ", ")))
	}
	if fc.verboseSet && fc.quietSet && fc.Verbose && fc.Quiet {
		errors = append(errors, "verbose and quiet cannot both be set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("flag validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ToConfig converts the explicitly set flags to a Config. Callers merge the
// result with the other sources to honour precedence.
func (fc *FlagConfig) ToConfig() *Config {
	config := New()

	if fc.gitImplSet {
		config.Git.Implementation = fc.GitImplementation
	}
	if fc.Browser != "" {
		config.Browser.Command = fc.Browser
	}

	if fc.verboseSet {
		config.setLoggingVerbose(fc.Verbose)
		if fc.Verbose {
			config.Logging.Level = "debug"
		}
	}
	if fc.quietSet {
		config.setLoggingQuiet(fc.Quiet)
		if fc.Quiet {
			config.Logging.Level = "error"
		}
	}
	if fc.logLevelSet && fc.LogLevel != "" {
		config.Logging.Level = fc.LogLevel
	}
	if fc.logFormatSet && fc.LogFormat != "" {
		config.Logging.Format = fc.LogFormat
	}

	return config
}

// LoadFromFlags loads configuration from the flags set on cmd.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	fc := extractFlagConfig(cmd.Flags())

	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}

	return fc.ToConfig(), nil
}

// ConfigFileFlag returns the --config value when it was given.
func ConfigFileFlag(cmd *cobra.Command) string {
	if cmd == nil || !cmd.Flags().Changed(FlagConfigFile) {
		return ""
	}
	path, _ := cmd.Flags().GetString(FlagConfigFile)
	return path
}

// extractFlagConfig reads only the flags the user changed.
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed(FlagConfigFile) {
		fc.ConfigFile, _ = flags.GetString(FlagConfigFile)
	}
	if flags.Changed(FlagVerbose) {
		fc.Verbose, _ = flags.GetBool(FlagVerbose)
		fc.verboseSet = true
	}
	if flags.Changed(FlagQuiet) {
		fc.Quiet, _ = flags.GetBool(FlagQuiet)
		fc.quietSet = true
	}
	if flags.Changed(FlagLogLevel) {
		fc.LogLevel, _ = flags.GetString(FlagLogLevel)
		fc.logLevelSet = true
	}
	if flags.Changed(FlagLogFormat) {
		fc.LogFormat, _ = flags.GetString(FlagLogFormat)
		fc.logFormatSet = true
	}
	if flags.Changed(FlagGitImplementation) {
		fc.GitImplementation, _ = flags.GetString(FlagGitImplementation)
		fc.gitImplSet = true
	}
	if flags.Changed(FlagBrowser) {
		fc.Browser, _ = flags.GetString(FlagBrowser)
	}

	return fc
}
