// Package transaction implements the ledger mutation (deposit and withdraw)
// and the account statement query.
//
// A mutation adjusts the stored balance and appends one ledger entry inside a
// single unit of work, so either both rows change or neither does. There is no
// overdraft or daily-limit check and blocked accounts are not rejected.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/person"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/shopspring/decimal"
)

// ErrInvalidRange is returned when a statement's start date is after its end date.
var ErrInvalidRange = fmt.Errorf("%w: from must not be after to", domain.ErrValidation)

// Service provides the ledger operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to stamp ledger entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deposit credits magnitude to the account.
func (s *Service) Deposit(ctx context.Context, accountID uint, magnitude decimal.Decimal) (*dto.TransactionRead, error) {
	return s.ApplySignedAmount(ctx, accountID, magnitude, account.Deposit)
}

// Withdraw debits magnitude from the account.
func (s *Service) Withdraw(ctx context.Context, accountID uint, magnitude decimal.Decimal) (*dto.TransactionRead, error) {
	return s.ApplySignedAmount(ctx, accountID, magnitude, account.Withdraw)
}

// ApplySignedAmount moves magnitude in the given direction and records the
// ledger entry. It returns the stored entry.
func (s *Service) ApplySignedAmount(
	ctx context.Context,
	accountID uint,
	magnitude decimal.Decimal,
	direction account.Direction,
) (entry *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"handler", "ApplySignedAmount",
		"account_id", accountID,
		"direction", direction.String(),
		"amount", magnitude.String(),
	)

	tx, err := account.NewTransaction(accountID, magnitude, direction, s.now())
	if err != nil {
		logger.Debug("rejected ledger mutation", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		n, err := uow.AccountRepository().AdjustBalance(ctx, tx.AccountID, tx.Amount)
		if err != nil {
			return err
		}
		if n == 0 {
			return account.ErrAccountNotFound
		}
		entry, err = uow.TransactionRepository().Create(ctx, dto.TransactionCreate{
			AccountID:  tx.AccountID,
			Amount:     tx.Amount,
			OccurredAt: tx.OccurredAt,
		})
		return err
	})
	if err != nil {
		logger.Warn("ledger mutation failed", "error", err)
		return nil, err
	}
	logger.Info("ledger mutation applied", "transaction_id", entry.ID)
	return entry, nil
}

// Extract returns the ledger entries of an account, newest first. The date
// window applies only when both from and to are given and covers whole UTC
// days. An unknown account yields an empty statement.
func (s *Service) Extract(
	ctx context.Context,
	accountID uint,
	from, to *time.Time,
) ([]*dto.TransactionRead, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, account.ErrAccountIDRequired)
	}

	var filter dto.TransactionFilter
	if from != nil && to != nil {
		start := person.Date(*from)
		end := person.Date(*to)
		if start.After(end) {
			return nil, ErrInvalidRange
		}
		end = end.Add(24*time.Hour - time.Microsecond)
		filter.From = &start
		filter.To = &end
	}
	return s.uow.TransactionRepository().ListByAccount(ctx, accountID, filter)
}
