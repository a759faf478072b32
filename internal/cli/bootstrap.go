// Package cli provides CLI commands for the statsdash application.
package cli

import (
	gocontext "context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/example/statsdash/internal/config"
	"github.com/example/statsdash/internal/db"
	"github.com/example/statsdash/internal/logging"
)

var (
	// activeConfig is the configuration resolved at startup by Bootstrap.
	activeConfig *config.Config
	closeLog     = func() {}
)

// Bootstrap resolves the config in dir and prepares the database path, the
// logger and colour output. Repeated calls for the same dir are no-ops until Shutdown.
func Bootstrap(dir string) error {
	if activeConfig != nil && activeConfig.Path() == filepath.Join(dir, config.FileName) {
		return nil
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	activeConfig = cfg

	db.SetPath(cfg.DBPath())
	if !cfg.ColorEnabled() {
		color.NoColor = true
	}

	closeLog()
	closeFn, err := logging.Init(logging.Options{Level: cfg.LogLevel, File: cfg.LogPath()})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	closeLog = closeFn

	return nil
}

// Shutdown closes the database and flushes the log. Safe to call more than once.
func Shutdown() {
	db.Close()
	closeLog()
	closeLog = func() {}
	activeConfig = nil
}

// ActiveConfig returns the configuration resolved by Bootstrap.
func ActiveConfig() *config.Config {
	return activeConfig
}

// NewContext creates the context passed to service calls.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return gocontext.Background()
}
