//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/employeah/employeah/internal/config"
	"github.com/employeah/employeah/internal/domain/market"
	"github.com/employeah/employeah/internal/server"
	"github.com/employeah/employeah/internal/storage/memory"
	"github.com/employeah/employeah/pkg/logging"
	"github.com/employeah/employeah/pkg/sheets"
)

// InitializeServer builds the server with all resources wired up.
func InitializeServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*server.Server, error) {
	wire.Build(
		// Storage
		provideStore,
		wire.Bind(new(market.Catalog), new(*memory.Store)),

		// Services
		provideMarketService,

		// Integrations
		provideSheetsClient,

		server.New,
	)

	return &server.Server{}, nil
}

// provideStore loads the dataset, preferring an on-disk override.
func provideStore(cfg config.Config) (*memory.Store, error) {
	if cfg.DatasetPath != "" {
		return memory.NewStoreFromFile(cfg.DatasetPath)
	}
	return memory.NewStore()
}

// provideMarketService builds the query façade over the catalog.
func provideMarketService(catalog market.Catalog, logger *logging.Logger) (*market.Service, error) {
	return market.NewService(catalog, market.WithLogger(logger))
}

// provideSheetsClient returns nil when no credentials are configured;
// the export tool then reports a configuration error instead of the
// server failing to start.
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sheets.Client, error) {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Info("sheets export disabled: no credentials configured")
		return nil, nil
	}
	return sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
}
