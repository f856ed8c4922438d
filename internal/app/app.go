// Package app provides the application context for conswap.
// It allows dependency injection for testing.
package app

import (
	"github.com/conswap/conswap/internal/fetch"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/logging"
	"github.com/conswap/conswap/internal/registry"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured state root paths
	Paths *layout.Paths

	// Fetcher handles remote clone operations for install
	Fetcher fetch.Fetcher
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *layout.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFetcher sets a custom fetcher
func WithFetcher(f fetch.Fetcher) Option {
	return func(a *App) {
		a.Fetcher = f
	}
}

// New creates a new App with the given options.
// If paths are not provided via WithPaths, the defaults are used.
// If a fetcher is not provided via WithFetcher, the git CLI is used.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Paths == nil {
		paths, err := layout.DefaultPaths()
		if err != nil {
			logging.Debug("failed to resolve default paths", "error", err)
			paths = layout.NewPaths(".conswap")
		}
		app.Paths = paths
	}

	if app.Fetcher == nil {
		app.Fetcher = fetch.Git()
	}

	return app
}

// Registry returns a group registry over the app's state root.
func (a *App) Registry() *registry.Registry {
	return registry.New(a.Paths)
}

// Default is the default application instance
var Default = New()

// SetDefault replaces the default application instance.
// Intended for tests; returns the previous default.
func SetDefault(app *App) *App {
	prev := Default
	Default = app
	return prev
}
