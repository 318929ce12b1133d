package main

import (
	"context"
	"fmt"

	"github.com/custodia-labs/style-selector/internal/adapters/driven/catalog/jsonfile"
	"github.com/custodia-labs/style-selector/internal/adapters/driven/config/file"
	"github.com/custodia-labs/style-selector/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/style-selector/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/style-selector/internal/adapters/driving/cli"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
	"github.com/custodia-labs/style-selector/internal/core/services"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// wire builds the services for one CLI invocation.
func wire(opts cli.Options) (*cli.Services, error) {
	catalogStore, err := jsonfile.NewStore(opts.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("catalog store: %w", err)
	}
	catalog := services.NewCatalogService(catalogStore)
	// A catalog that fails to load leaves an empty style list; the error is logged.
	_ = catalog.Load()

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	var chooser driven.Chooser
	if opts.HasSeed {
		chooser = services.NewSeededChooser(opts.Seed)
	}
	resolver := services.NewResolverService(catalog, chooser)

	script, err := services.NewStyleSelector(catalog, resolver, settings)
	if err != nil {
		return nil, err
	}

	var (
		historyStore driven.HistoryStore
		closeFn      func() error
	)
	if opts.Ephemeral {
		historyStore = memory.NewHistoryStore()
	} else {
		db, err := sqlite.NewStore(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		logger.Debug("history database at %s", db.Path())
		historyStore = db.HistoryStore()
		closeFn = db.Close
	}

	return &cli.Services{
		Catalog:     catalog,
		Resolver:    resolver,
		Settings:    settings,
		History:     services.NewHistoryService(historyStore),
		Script:      script,
		CatalogPath: catalog.Path(),
		Watch: func(ctx context.Context) error {
			return watchCatalog(ctx, catalog.Path(), catalog.Reload)
		},
		Close: closeFn,
	}, nil
}

// watchCatalog reloads the catalog on file changes until ctx is done.
func watchCatalog(ctx context.Context, path string, reload func() error) error {
	w, err := jsonfile.NewWatcher(path, reload)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching %s for changes", w.Path())
	return w.Run(ctx)
}
