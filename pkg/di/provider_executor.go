package di

import (
	"github.com/goliatone/git-view/internal/executor"
	"github.com/goliatone/git-view/pkg/config"
)

// provideExecutorWithConfig selects the git backend named by git.implementation.
func provideExecutorWithConfig(cfg *config.Config, dir string, logger Logger) (executor.Executor, error) {
	impl, binary := cfg.Git.Implementation, cfg.Git.Binary
	logger.Debug("Selecting git backend", "implementation", impl, "binary", binary)
	return executor.New(impl, binary, dir)
}
