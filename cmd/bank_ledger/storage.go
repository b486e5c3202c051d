package main

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bank_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/bank_ledger/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/SscSPs/bank_ledger/pkg/database"
)

// openRepositories connects the configured storage driver. The returned
// closer releases the connection pool, if any.
func openRepositories(ctx context.Context, a *app) (portsrepo.RepositoryProvider, func(), error) {
	if a.cfg.StorageDriver == config.StorageMemory {
		a.logger.Warn("Using in-memory storage")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.cfg.DBConnectTimeout)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	a.logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() {
		database.ClosePgxPool(dbPool)
		a.logger.Info("Database connection pool closed.", slog.String("driver", a.cfg.StorageDriver))
	}, nil
}
