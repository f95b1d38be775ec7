package config

import (
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	TxIsolation     string        `envconfig:"TX_ISOLATION" default:"read_committed"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"false"`
}

type Jwt struct {
	// Secret enables operator auth on the API when non-empty.
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
	Issuer string        `envconfig:"ISSUER" default:"backoffice"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

// Enabled reports whether operator auth is configured.
func (a *Auth) Enabled() bool {
	return a != nil && a.Jwt != nil && a.Jwt.Secret != ""
}

type Redis struct {
	// URL selects Redis-backed rate limiting when non-empty.
	URL          string        `envconfig:"URL"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"backoffice:ratelimit:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"auto"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[backoffice]"`
}

type Server struct {
	Scheme          string        `envconfig:"SCHEME" default:"http"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"3000"`
	BodyLimit       int           `envconfig:"BODY_LIMIT" default:"1048576"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
