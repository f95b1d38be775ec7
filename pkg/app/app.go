package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/amirasaad/backoffice/pkg/service/auth"
	"github.com/amirasaad/backoffice/pkg/service/person"
	"github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	DB     *gorm.DB
	Logger *slog.Logger
	// RateLimitStorage is nil when the limiter should keep counters in memory.
	RateLimitStorage fiber.Storage

	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

// AddCloser registers a resource to release in Close, in reverse order.
func (d *Deps) AddCloser(name string, fn func() error) {
	d.closers = append(d.closers, namedCloser{name: name, close: fn})
}

// Close releases every registered resource and joins their errors.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		c := d.closers[i]
		if err := c.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	PersonService      *person.Service
	AccountService     *account.Service
	TransactionService *transaction.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.New(cfg.Auth.Jwt, deps.Logger),
		PersonService:      person.New(deps.Uow, deps.Logger),
		AccountService:     account.New(deps.Uow, deps.Logger),
		TransactionService: transaction.New(deps.Uow, deps.Logger),
	}
}
