package config

// Config represents the complete configuration for git-view.
// It covers which git backend answers queries, how URLs are opened and how
// diagnostics are logged.
type Config struct {
	// Git selects and configures the git backend
	Git GitConfig `json:"git" yaml:"git"`

	// Browser controls how the final URL is opened
	Browser BrowserConfig `json:"browser" yaml:"browser"`

	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	setFlags boolFlags `json:"-" yaml:"-"`
}

type boolFlags struct {
	loggingVerbose bool
	loggingQuiet   bool
}

// GitConfig selects the git backend.
type GitConfig struct {
	// Implementation is either "exec" (run the git binary) or "go-git".
	// Default: exec
	Implementation string `json:"implementation" yaml:"implementation"`

	// Binary is the git executable used by the exec backend.
	// Default: git
	Binary string `json:"binary" yaml:"binary"`
}

// BrowserConfig controls how URLs are opened.
type BrowserConfig struct {
	// Command is an optional program invoked with the URL as its only
	// argument. When empty the system default browser is used.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// LoggingConfig contains logging configuration.
// Logs are always written to stderr so that stdout only carries the URL.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	// Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose forces debug level
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet limits output to errors
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// Supported values.
const (
	GitImplementationExec  = "exec"
	GitImplementationGoGit = "go-git"

	DefaultGitBinary = "git"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

var (
	validGitImplementations = []string{GitImplementationExec, GitImplementationGoGit}
	validLogLevels          = []string{"debug", "info", "warn", "error"}
	validLogFormats         = []string{"text", "json"}
)

// New returns an empty configuration. Empty fields mean "not set" until
// ApplyDefaults runs.
func New() *Config {
	return &Config{}
}

// NewWithDefaults returns a configuration with every default applied.
func NewWithDefaults() *Config {
	cfg := New()
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field with its default value.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Git.Implementation == "" {
		cfg.Git.Implementation = GitImplementationExec
	}
	if cfg.Git.Binary == "" {
		cfg.Git.Binary = DefaultGitBinary
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// setLoggingVerbose records an explicit verbose value from a configuration source.
func (c *Config) setLoggingVerbose(value bool) {
	if c == nil {
		return
	}
	c.Logging.Verbose = value
	c.setFlags.loggingVerbose = true
}

func (c *Config) loggingVerboseSet() bool {
	return c != nil && c.setFlags.loggingVerbose
}

// setLoggingQuiet records an explicit quiet value from a configuration source.
func (c *Config) setLoggingQuiet(value bool) {
	if c == nil {
		return
	}
	c.Logging.Quiet = value
	c.setFlags.loggingQuiet = true
}

func (c *Config) loggingQuietSet() bool {
	return c != nil && c.setFlags.loggingQuiet
}
