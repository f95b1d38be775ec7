package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "read_committed", cfg.DB.TxIsolation)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.Auth.Enabled())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://u:p@db:5432/bank\nAUTH_JWT_SECRET=s3cr3t-value\n"), 0o600))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/bank", cfg.DB.Url)
	assert.True(t, cfg.Auth.Enabled())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_URL", "x")

	_, err := Load("does-not-exist.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestFindEnvTest(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvTest(".env.test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.test"), found)

	_, err = FindEnvTest(".env.missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("abc"))
	assert.Equal(t, "po****5432", maskValue("postgres://localhost:5432"))
}
