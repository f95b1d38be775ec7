package initializer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amirasaad/backoffice/infra"
	"github.com/amirasaad/backoffice/infra/cache"
	infra_repository "github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
)

// InitializeDependencies initializes all the application dependencies.
// Callers own the returned Deps and must call Close on shutdown.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	logger := setupLogger(cfg.Log)
	deps = &app.Deps{Logger: logger}

	isolation, err := infra.ParseIsolation(cfg.DB.TxIsolation)
	if err != nil {
		return nil, err
	}
	if cfg.DB.Driver == config.DriverSQLite && isolation != sql.LevelDefault {
		if config.IsEnvSet("DATABASE_TX_ISOLATION") {
			logger.Warn("SQLite ignores DATABASE_TX_ISOLATION", "isolation", cfg.DB.TxIsolation)
		}
		isolation = sql.LevelDefault
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.DB = db
	deps.AddCloser("database", func() error { return infra.CloseDB(db) })

	if cfg.DB.AutoMigrate {
		if err := infra.MigrateUp(context.Background(), db, cfg.DB.Driver); err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database schema is up to date", "driver", cfg.DB.Driver)
	}

	deps.Uow = infra_repository.NewUoW(db,
		infra_repository.WithIsolation(isolation),
		infra_repository.WithLogger(logger),
	)

	if cfg.Redis.URL != "" {
		storage, err := cache.NewRedisStorage(cfg.Redis, logger)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.RateLimitStorage = storage
		deps.AddCloser("redis", storage.Close)
		logger.Info("Rate limiter uses Redis storage")
	}

	return deps, nil
}
