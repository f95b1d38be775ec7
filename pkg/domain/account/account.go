// Package account models bank accounts and the ledger entries that move their balance.
package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrOwnerRequired is returned when an account is built without an owner.
	ErrOwnerRequired = errors.New("owner id is required")

	// ErrNegativeBalance is returned when an account is opened with a negative balance.
	ErrNegativeBalance = errors.New("initial balance cannot be negative")

	// ErrNegativeWithdrawLimit is returned when the daily withdraw limit is negative.
	ErrNegativeWithdrawLimit = errors.New("daily withdraw limit cannot be negative")

	// ErrInvalidType is returned for an account type other than checking or savings.
	ErrInvalidType = errors.New("invalid account type")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("%w: account not found", domain.ErrNotFound)
)

// DefaultDailyWithdrawLimit is applied when an account is opened without a limit.
var DefaultDailyWithdrawLimit = decimal.NewFromInt(1000)

// Type is the kind of account.
type Type int

const (
	// Checking is the default account type.
	Checking Type = 1
	// Savings account.
	Savings Type = 2
)

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	return t == Checking || t == Savings
}

func (t Type) String() string {
	switch t {
	case Checking:
		return "CHECKING"
	case Savings:
		return "SAVINGS"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Account is owned by exactly one person.
//
// Invariants:
//   - OwnerID always references an existing person (checked by the service on creation).
//   - Balance only changes through a ledger mutation, together with a ledger entry.
//   - Active only changes from true to false (block).
type Account struct {
	ID                 uint
	OwnerID            uint
	Balance            decimal.Decimal
	DailyWithdrawLimit decimal.Decimal
	Active             bool
	Type               Type
	CreatedAt          time.Time
}

// Builder provides a fluent API for constructing Account instances with
// the documented defaults for every optional field.
type Builder struct {
	ownerID            uint
	balance            decimal.Decimal
	dailyWithdrawLimit decimal.Decimal
	active             bool
	accountType        Type
	createdAt          time.Time
}

// New creates a Builder for an account owned by ownerID with balance 0,
// a daily withdraw limit of 1000, active, of type Checking.
func New(ownerID uint) *Builder {
	return &Builder{
		ownerID:            ownerID,
		balance:            decimal.Zero,
		dailyWithdrawLimit: DefaultDailyWithdrawLimit,
		active:             true,
		accountType:        Checking,
		createdAt:          time.Now().UTC(),
	}
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithDailyWithdrawLimit sets the daily withdraw limit.
func (b *Builder) WithDailyWithdrawLimit(limit decimal.Decimal) *Builder {
	b.dailyWithdrawLimit = limit
	return b
}

// WithActive sets the active flag.
func (b *Builder) WithActive(active bool) *Builder {
	b.active = active
	return b
}

// WithType sets the account type.
func (b *Builder) WithType(t Type) *Builder {
	b.accountType = t
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the collected fields and returns the Account.
// Every failure wraps domain.ErrValidation.
func (b *Builder) Build() (*Account, error) {
	if b.ownerID == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrOwnerRequired)
	}
	if b.balance.IsNegative() {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrNegativeBalance)
	}
	if !b.balance.Equal(b.balance.Round(AmountScale)) {
		return nil, fmt.Errorf("%w: balance: %w", domain.ErrValidation, ErrAmountPrecision)
	}
	if b.dailyWithdrawLimit.IsNegative() {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrNegativeWithdrawLimit)
	}
	if !b.dailyWithdrawLimit.Equal(b.dailyWithdrawLimit.Round(AmountScale)) {
		return nil, fmt.Errorf("%w: daily withdraw limit: %w", domain.ErrValidation, ErrAmountPrecision)
	}
	if !b.accountType.Valid() {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, ErrInvalidType)
	}
	return &Account{
		OwnerID:            b.ownerID,
		Balance:            b.balance,
		DailyWithdrawLimit: b.dailyWithdrawLimit,
		Active:             b.active,
		Type:               b.accountType,
		CreatedAt:          b.createdAt,
	}, nil
}
