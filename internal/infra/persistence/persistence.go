// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"lightmap/config"
	"lightmap/internal/domain/constants"
	"lightmap/internal/domain/repository"
	"lightmap/internal/errors"
	"lightmap/internal/infra/persistence/memory"
	"lightmap/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend.
type Result struct {
	fx.Out

	TxManager repository.TransactionManager
	Markers   repository.MarkerRepository
	Accounts  repository.AccountRepository
}

// New opens the configured backend.
func New(params Params) (Result, error) {
	switch driver := params.Config.Storage.Driver; driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, markers are lost on restart")
		store := memory.NewStore()

		return Result{
			TxManager: memory.NewTransactionManager(store),
			Markers:   memory.NewMarkerRepository(store),
			Accounts:  memory.NewAccountRepository(store),
		}, nil

	case constants.StorageDriverPostgres, constants.StorageDriverSQLite:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager: postgres.NewTransactionManager(db),
			Markers:   postgres.NewMarkerRepository(db),
			Accounts:  postgres.NewAccountRepository(db),
		}, nil

	default:
		return Result{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
