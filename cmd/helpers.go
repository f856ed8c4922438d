package cmd

import (
	"github.com/conswap/conswap/internal/app"
	"github.com/conswap/conswap/internal/audit"
	"github.com/conswap/conswap/internal/layout"
	"github.com/conswap/conswap/internal/registry"
	"github.com/conswap/conswap/internal/store"
)

// paths returns the configured state root paths.
// This is a helper to reduce repetition in commands.
func paths() *layout.Paths {
	return app.Default.Paths
}

// reg returns the group registry over the configured root.
func reg() *registry.Registry {
	return app.Default.Registry()
}

// loadGroup resolves a group by name, surfacing not-found and corrupt
// descriptors as typed errors.
func loadGroup(name string) (*registry.Group, error) {
	return reg().Get(name)
}

// storeFor returns the config store of a group, wired to the app's fetcher.
func storeFor(group *registry.Group) *store.Store {
	return store.New(group, app.Default.Fetcher)
}

// auditLog returns the lifecycle event logger for the configured root.
func auditLog() *audit.Logger {
	return audit.NewLogger(paths().GroupsDir)
}
