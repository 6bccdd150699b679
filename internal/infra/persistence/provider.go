// Package persistence selects and wires the durable key-value backend.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the backend named by storage.driver and closes it on shutdown.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var (
		store repository.KeyValueStore
		err   error
	)

	switch cfg.Driver {
	case "", config.StorageDriverBlob:
		store, err = blob.Open(params.Ctx, cfg.BucketURL, cfg.KeyPrefix, logger)
		if err != nil {
			return nil, err
		}

	case config.StorageDriverPostgres:
		db, stop, openErr := postgres.Open(params.Ctx, params.Config, logger)
		if openErr != nil {
			return nil, openErr
		}
		logger.Info("Using PostgreSQL storage", slog.String("prefix", cfg.KeyPrefix))
		store = postgres.NewKeyValueStore(db, cfg.KeyPrefix, stop)

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing storage")

			return store.Close()
		},
	})

	return store, nil
}
