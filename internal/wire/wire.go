// Package wire provides dependency injection for the statsdash application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"sync"

	cliadapter "github.com/example/statsdash/internal/adapters/cli"
	"github.com/example/statsdash/internal/adapters/sqlite"
	"github.com/example/statsdash/internal/app"
	"github.com/example/statsdash/internal/db"
	"github.com/example/statsdash/internal/logging"
	"github.com/example/statsdash/internal/ports/primary"
)

var (
	statService primary.StatService
	initErr     error
	once        sync.Once
)

// StatService returns the singleton StatService instance.
func StatService() (primary.StatService, error) {
	once.Do(initServices)
	return statService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		initErr = fmt.Errorf("failed to initialize database: %w", err)
		return
	}

	statRepo := sqlite.NewStatRepository(database)
	statService = app.NewStatService(statRepo, logging.L())
}

// StatAdapterWithIO returns a new StatAdapter on the given streams.
// Each call creates a new adapter (adapters are stateless translators).
func StatAdapterWithIO(in io.Reader, out io.Writer) (*cliadapter.StatAdapter, error) {
	service, err := StatService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewStatAdapter(service, in, out), nil
}
