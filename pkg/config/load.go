package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment after loading the first
// .env file found among envFilePath (each searched upward from the working
// directory), falling back to ./.env.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.Url),
		"tx_isolation", cfg.DB.TxIsolation,
		"auth_enabled", cfg.Auth.Enabled(),
		"auth_jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"redis", maskValue(cfg.Redis.URL),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *App) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver)
	}
	if c.DB.Url == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.RateLimit.MaxRequests <= 0 {
		return errors.New("RATE_LIMIT_MAX_REQUESTS must be positive")
	}
	return nil
}
