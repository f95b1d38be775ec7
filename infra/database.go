package infra

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database and applies the pool settings.
// SQL statements are logged in development and silenced otherwise.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case config.DriverPostgres, "":
		dialector = postgres.Open(cnf.Url)
	case config.DriverSQLite:
		dialector = sqlite.Open(cnf.Url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cnf.Driver)
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}

// CloseDB releases the pool behind db.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseIsolation maps a configured isolation name to a sql.IsolationLevel.
// Names are case-insensitive and accept either '_' or ' ' as separator.
func ParseIsolation(name string) (sql.IsolationLevel, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_") {
	case "", "default":
		return sql.LevelDefault, nil
	case "read_uncommitted":
		return sql.LevelReadUncommitted, nil
	case "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unknown transaction isolation %q", name)
	}
}
