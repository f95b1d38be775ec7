package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "cli.db")+"?_foreign_keys=1")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "1")
	t.Setenv("LOG_LEVEL", "8")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(&out, append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	return out.String(), err
}

func TestCLI_Workflow(t *testing.T) {
	setupEnv(t)

	out, err := runCLI(t, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date")

	out, err = runCLI(t, "person", "create", "A", "123", "1990-05-17")
	require.NoError(t, err)
	var p dto.PersonRead
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "A", p.Name)

	out, err = runCLI(t, "account", "create", "1", "--type", "2")
	require.NoError(t, err)
	var acc dto.AccountRead
	require.NoError(t, json.Unmarshal([]byte(out), &acc))
	assert.Equal(t, 2, acc.Type)

	out, err = runCLI(t, "deposit", "1", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "New balance: 100")

	out, err = runCLI(t, "withdraw", "1", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "New balance: 70")

	out, err = runCLI(t, "account", "balance", "1")
	require.NoError(t, err)
	assert.Equal(t, "Account 1 balance: 70", strings.TrimSpace(out))

	out, err = runCLI(t, "extract", "1")
	require.NoError(t, err)
	var entries []*dto.TransactionRead
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.True(t, decimal.NewFromInt(-30).Equal(entries[0].Amount))

	out, err = runCLI(t, "account", "list", "--owner", "1")
	require.NoError(t, err)
	var accounts []*dto.AccountRead
	require.NoError(t, json.Unmarshal([]byte(out), &accounts))
	assert.Len(t, accounts, 1)

	out, err = runCLI(t, "account", "block", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Account 1 blocked")
}

func TestCLI_Errors(t *testing.T) {
	setupEnv(t)
	_, err := runCLI(t, "migrate", "up")
	require.NoError(t, err)

	_, err = runCLI(t, "deposit", "1", "0.5")
	assert.Error(t, err)

	_, err = runCLI(t, "deposit", "x", "10")
	assert.ErrorContains(t, err, "invalid account id")

	_, err = runCLI(t, "account", "create", "9")
	assert.ErrorContains(t, err, "person not found")

	_, err = runCLI(t, "extract", "1", "--from", "2024-03-16", "--to", "2024-03-15")
	assert.Error(t, err)

	_, err = runCLI(t, "person", "create", "A")
	assert.Error(t, err)
}

func TestCLI_Token(t *testing.T) {
	setupEnv(t)
	out, err := runCLI(t, "token", "--subject", "ops", "--ttl", "2h")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 2, strings.Count(lines[0], "."))
	assert.True(t, strings.HasPrefix(lines[1], "Token for ops issued by backoffice, expires "), lines[1])
}

func TestCLI_TokenRequiresSecret(t *testing.T) {
	setupEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "")
	_, err := runCLI(t, "token")
	assert.ErrorContains(t, err, "operator auth is disabled")
}

func TestCLI_EnvFileFromEnvironment(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	envFile := filepath.Join(dir, "cli.env")
	content := "APP_ENV=test\n" +
		"DATABASE_DRIVER=sqlite\n" +
		"DATABASE_URL=" + filepath.Join(dir, "env.db") + "\n" +
		"DATABASE_AUTO_MIGRATE=true\n" +
		"LOG_LEVEL=8\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("ENV_FILE", envFile)
	for _, key := range []string{"APP_ENV", "DATABASE_DRIVER", "DATABASE_URL", "DATABASE_AUTO_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out bytes.Buffer
	require.NoError(t, execute(&out, []string{"person", "create", "Env", "42", "1990-05-17"}))
	var p dto.PersonRead
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.Equal(t, "Env", p.Name)
	assert.FileExists(t, filepath.Join(dir, "env.db"))
}
