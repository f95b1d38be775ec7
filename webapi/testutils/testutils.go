// Package testutils provides an end-to-end harness that serves the full API
// over a Postgres database started with Testcontainers.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/infra"
	infrarepo "github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Cfg         *config.App
	deps        *app.Deps
}

// TestConfig returns a configuration suitable for in-process API tests.
func TestConfig(dbURL string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{BodyLimit: 1 << 20, ShutdownTimeout: time.Second},
		Log:    &config.Log{Level: int(slog.LevelWarn), Format: "text"},
		DB: &config.DB{
			Driver:          config.DriverPostgres,
			Url:             dbURL,
			MaxOpenConns:    10,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			TxIsolation:     "read_committed",
		},
		Auth:      &config.Auth{Jwt: &config.Jwt{Expiry: time.Hour, Issuer: "backoffice"}},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("backoffice"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping Postgres container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Cfg = TestConfig(dsn)

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.MigrateUp(ctx, s.DB, config.DriverPostgres))

	isolation, err := infra.ParseIsolation(s.Cfg.DB.TxIsolation)
	s.Require().NoError(err)

	s.deps = &app.Deps{
		DB:     s.DB,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.deps.Uow = infrarepo.NewUoW(s.DB,
		infrarepo.WithIsolation(isolation),
		infrarepo.WithLogger(s.deps.Logger),
	)
	s.deps.AddCloser("database", func() error { return infra.CloseDB(s.DB) })
	s.App = webapi.SetupApp(app.New(s.deps, s.Cfg))
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.deps != nil {
		_ = s.deps.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.App.Test(req, 10000)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads resp's body into v and closes it.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint:errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

// CreateTestPerson registers a person with a unique national id via POST /v1/person.
func (s *E2ETestSuite) CreateTestPerson() *dto.PersonRead {
	body := fmt.Sprintf(`{"name":"A","nationalId":"%s","birthDate":"1990-05-17"}`, uuid.NewString()[:8])
	resp := s.MakeRequest(fiber.MethodPost, "/v1/person", body)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Person *dto.PersonRead `json:"person"`
	}
	s.DecodeJSON(resp, &out)
	return out.Person
}

// CreateTestAccount opens a default account for ownerID via POST /v1/account.
func (s *E2ETestSuite) CreateTestAccount(ownerID uint) *dto.AccountRead {
	resp := s.MakeRequest(fiber.MethodPost, "/v1/account", fmt.Sprintf(`{"ownerId":%d}`, ownerID))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Account *dto.AccountRead `json:"account"`
	}
	s.DecodeJSON(resp, &out)
	return out.Account
}
