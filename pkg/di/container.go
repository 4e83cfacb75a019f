package di

import (
	"fmt"
	"io"
	"time"

	"github.com/goliatone/git-view/internal/browser"
	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/internal/view"
	"github.com/goliatone/git-view/pkg/config"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Container exposes resolved dependencies for the CLI layer.
// All methods return interfaces to prevent leaking concrete implementations.
type Container interface {
	Executor() executor.Executor
	Opener() browser.Opener
	Viewer() *view.Viewer

	Config() *config.Config
	Logger() Logger

	Close() error
}

// Option customises container construction using the functional options pattern.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided options.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	cfg *config.Config

	workDir               string
	logOutput             io.Writer
	enableInstrumentation bool

	logger   Logger
	executor executor.Executor
	opener   browser.Opener
}

type container struct {
	cfg      *config.Config
	logger   Logger
	executor executor.Executor
	opener   browser.Opener
	viewer   *view.Viewer
}

func (c *container) Executor() executor.Executor { return c.executor }
func (c *container) Opener() browser.Opener      { return c.opener }
func (c *container) Viewer() *view.Viewer        { return c.viewer }

func (c *container) Config() *config.Config { return c.cfg }
func (c *container) Logger() Logger         { return c.logger }

// Close releases services that hold resources.
func (c *container) Close() error {
	var errs []error

	if closer, ok := c.executor.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("executor close: %w", err))
		}
	}
	if closer, ok := c.opener.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("opener close: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}
	return nil
}

// build resolves missing dependencies in order: config, logger, executor, opener.
func (b *builder) build() (Container, error) {
	start := time.Now()

	if b.cfg == nil {
		b.cfg = provideConfigWithDefaults()
	}

	if b.logger == nil {
		b.logger = provideLoggerWithConfig(b.cfg, b.logOutput)
	}

	if b.executor == nil {
		exec, err := provideExecutorWithConfig(b.cfg, b.workDir, b.logger)
		if err != nil {
			return nil, fmt.Errorf("di: failed to provide executor: %w", err)
		}
		b.executor = exec
	}

	if b.opener == nil {
		b.opener = provideOpenerWithConfig(b.cfg, b.logger)
	}

	c := &container{
		cfg:      b.cfg,
		logger:   b.logger,
		executor: b.executor,
		opener:   b.opener,
		viewer:   view.New(b.executor, view.WithLogger(b.logger)),
	}

	if b.enableInstrumentation {
		b.logger.Debug("DI container created",
			"duration_ms", time.Since(start).Milliseconds(),
			"git_implementation", b.cfg.Git.Implementation,
		)
	}

	return c, nil
}

// WithConfig injects an explicit configuration object into the container.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger injects a custom logger into the container.
func WithLogger(logger Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// WithLogOutput redirects the default logger, which writes to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(b *builder) error {
		if w == nil {
			return fmt.Errorf("log output cannot be nil")
		}
		b.logOutput = w
		return nil
	}
}

// WithExecutor injects a custom executor implementation.
func WithExecutor(exec executor.Executor) Option {
	return func(b *builder) error {
		if exec == nil {
			return fmt.Errorf("executor cannot be nil")
		}
		b.executor = exec
		return nil
	}
}

// WithOpener injects a custom browser opener.
func WithOpener(opener browser.Opener) Option {
	return func(b *builder) error {
		if opener == nil {
			return fmt.Errorf("opener cannot be nil")
		}
		b.opener = opener
		return nil
	}
}

// WithWorkDir roots the default executor at dir instead of the process
// working directory.
func WithWorkDir(dir string) Option {
	return func(b *builder) error {
		b.workDir = dir
		return nil
	}
}

// WithInstrumentation logs container construction at debug level.
func WithInstrumentation() Option {
	return func(b *builder) error {
		b.enableInstrumentation = true
		return nil
	}
}
