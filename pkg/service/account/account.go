// Package account provides business logic for opening, querying and blocking accounts.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides business logic for account operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateAccount opens an account for an existing person. Optional fields left
// nil in cmd take the account defaults.
func (s *Service) CreateAccount(
	ctx context.Context,
	cmd dto.AccountCommand,
) (created *dto.AccountRead, err error) {
	logger := s.logger.With("handler", "CreateAccount", "owner_id", cmd.OwnerID)

	b := account.New(cmd.OwnerID).WithCreatedAt(s.now())
	if cmd.Balance != nil {
		b = b.WithBalance(*cmd.Balance)
	}
	if cmd.DailyWithdrawLimit != nil {
		b = b.WithDailyWithdrawLimit(*cmd.DailyWithdrawLimit)
	}
	if cmd.Active != nil {
		b = b.WithActive(*cmd.Active)
	}
	if cmd.Type != nil {
		b = b.WithType(account.Type(*cmd.Type))
	}
	acc, err := b.Build()
	if err != nil {
		logger.Debug("invalid account", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.PersonRepository().Get(ctx, acc.OwnerID); err != nil {
			return err
		}
		created, err = uow.AccountRepository().Create(ctx, dto.AccountCreate{
			OwnerID:            acc.OwnerID,
			Balance:            acc.Balance,
			DailyWithdrawLimit: acc.DailyWithdrawLimit,
			Active:             acc.Active,
			Type:               int(acc.Type),
			CreatedAt:          acc.CreatedAt,
		})
		return err
	})
	if err != nil {
		logger.Warn("failed to create account", "error", err)
		return nil, err
	}
	logger.Info("account created", "account_id", created.ID)
	return created, nil
}

// ListAccounts returns every account, newest first.
func (s *Service) ListAccounts(ctx context.Context) ([]*dto.AccountRead, error) {
	return s.uow.AccountRepository().List(ctx)
}

// GetAccount returns the account with the given ID or account.ErrAccountNotFound.
func (s *Service) GetAccount(ctx context.Context, id uint) (*dto.AccountRead, error) {
	return s.uow.AccountRepository().Get(ctx, id)
}

// ListAccountsByOwner returns the accounts held by a person. An unknown
// person yields person.ErrPersonNotFound rather than an empty list.
func (s *Service) ListAccountsByOwner(ctx context.Context, ownerID uint) (accounts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.PersonRepository().Get(ctx, ownerID); err != nil {
			return err
		}
		accounts, err = uow.AccountRepository().ListByOwner(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(ctx context.Context, id uint) (decimal.Decimal, error) {
	acc, err := s.uow.AccountRepository().Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance, nil
}

// BlockAccount marks an account inactive. Blocking is idempotent and an
// unknown id is not an error.
func (s *Service) BlockAccount(ctx context.Context, id uint) error {
	logger := s.logger.With("handler", "BlockAccount", "account_id", id)
	if id == 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, account.ErrAccountIDRequired)
	}

	inactive := false
	n, err := s.uow.AccountRepository().Update(ctx, id, dto.AccountUpdate{Active: &inactive})
	if err != nil {
		logger.Error("failed to block account", "error", err)
		return err
	}
	if n == 0 {
		logger.Debug("block matched no account")
		return nil
	}
	logger.Info("account blocked")
	return nil
}
