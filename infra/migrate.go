package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/internal/migrations"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// MigrateUp brings the schema to the latest version. PostgreSQL uses the
// embedded SQL migrations; SQLite is migrated from the GORM models.
func MigrateUp(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		return db.WithContext(ctx).AutoMigrate(repository.Models()...)
	}
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		return nil
	})
}

// MigrateDown drops every table created by MigrateUp.
func MigrateDown(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		models := repository.Models()
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.WithContext(ctx).Migrator().DropTable(models[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return withMigrator(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		return nil
	})
}

func withMigrator(ctx context.Context, db *gorm.DB, fn func(*migrate.Migrate) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = conn.Close()
		return err
	}
	dbDriver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", dbDriver)
	if err != nil {
		_ = dbDriver.Close()
		return err
	}
	defer func() { _, _ = m.Close() }()

	return fn(m)
}
