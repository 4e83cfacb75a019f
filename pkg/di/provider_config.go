package di

import "github.com/goliatone/git-view/pkg/config"

// provideConfigWithDefaults creates a configuration with defaults applied.
// Precedence between sources is resolved upstream by config.Builder.
func provideConfigWithDefaults() *config.Config {
	return config.NewWithDefaults()
}
