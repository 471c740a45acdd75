package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/tokenview/internal/adapter/driven/memory"
	sqliteadapter "github.com/ericfisherdev/tokenview/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/tokenview/internal/config"
	"github.com/ericfisherdev/tokenview/internal/domain/port/driven"
)

// openStore returns the credential store selected by cfg.Store and a func
// that releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (driven.CredentialStore, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warn("using in-memory credential store, stored credentials are lost on restart")
		return memory.NewCredentialStore(), func() {}, nil

	case config.StoreSQLite:
		// Dual reader/writer with WAL mode.
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}
		logger.Info("database opened", "path", db.Path())

		version, err := sqliteadapter.RunMigrations(db.Writer)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		logger.Info("migrations complete", "schema_version", version)

		return sqliteadapter.NewCredentialRepo(db), closeDB, nil
	}

	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
