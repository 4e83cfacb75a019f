package di

import (
	"github.com/goliatone/git-view/internal/browser"
	"github.com/goliatone/git-view/pkg/config"
)

// provideOpenerWithConfig returns the configured browser command, or the
// system default browser when none is set.
func provideOpenerWithConfig(cfg *config.Config, logger Logger) browser.Opener {
	if cfg.Browser.Command != "" {
		logger.Debug("Using custom browser command", "command", cfg.Browser.Command)
	}
	return browser.New(cfg.Browser.Command)
}
