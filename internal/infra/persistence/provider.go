// Package persistence selects the account store backend from configuration.
package persistence

import (
	"log/slog"

	"pizarra/config"
	"pizarra/internal/domain/repository"
	"pizarra/internal/errors"
	"pizarra/internal/infra/persistence/memory"
	"pizarra/internal/infra/persistence/mongodb"
	"pizarra/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the account repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository builds the repository for the configured storage driver.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	logger := params.Logger

	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL account store",
			slog.Int("replicas", len(params.Config.Postgres.Replicas)),
		)

		return postgres.NewAccountRepository(db), nil

	case config.StorageDriverMongo:
		collection, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB account store",
			slog.String("database", params.Config.Mongo.Database),
		)

		return mongodb.NewAccountRepository(collection), nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory account store, accounts will not survive a restart")

		return memory.NewAccountRepository(), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
