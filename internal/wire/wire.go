// Package wire provides dependency injection for the epidata application.
// Services are built per invocation because every path hangs off the root
// chosen on the command line.
package wire

import (
	"fmt"
	"io"

	cliadapter "github.com/example/epidata/internal/adapters/cli"
	"github.com/example/epidata/internal/adapters/filesystem"
	"github.com/example/epidata/internal/adapters/sqlite"
	"github.com/example/epidata/internal/app"
	"github.com/example/epidata/internal/config"
	"github.com/example/epidata/internal/db"
	"github.com/example/epidata/internal/ports/primary"
	"github.com/example/epidata/internal/ports/secondary"
)

// Reporter returns a console reporter writing to out.
func Reporter(out io.Writer) *cliadapter.ConsoleReporter {
	return cliadapter.NewConsoleReporter(out)
}

// FragmentStore returns the filesystem-backed fragment store.
func FragmentStore() secondary.FragmentStore {
	return filesystem.NewFragmentStore()
}

// FragmentService returns a FragmentService over the layout in cfg,
// reporting progress to out.
func FragmentService(cfg *config.Config, out io.Writer) primary.FragmentService {
	return app.NewFragmentService(cfg, FragmentStore(), Reporter(out))
}

// IndexService opens the index database of cfg and returns an IndexService
// over it. The caller must invoke the returned close function when done.
func IndexService(cfg *config.Config, out io.Writer) (primary.IndexService, func() error, error) {
	database, err := db.Open(cfg.IndexFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize index: %w", err)
	}

	// Create repository adapters (secondary ports)
	indexRepo := sqlite.NewEpisodeIndexRepository(database)
	store := FragmentStore()

	service := app.NewIndexService(cfg, store, indexRepo, Reporter(out))
	return service, database.Close, nil
}
