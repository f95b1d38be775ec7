package repository

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// PersonRepository defines the interface for person data access operations.
type PersonRepository interface {
	// Create inserts a new person and returns it with its assigned ID.
	Create(ctx context.Context, create dto.PersonCreate) (*dto.PersonRead, error)

	// Get retrieves a person by ID. Returns person.ErrPersonNotFound when absent.
	Get(ctx context.Context, id uint) (*dto.PersonRead, error)

	// List returns every person, newest ID first.
	List(ctx context.Context) ([]*dto.PersonRead, error)
}

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// Create inserts a new account and returns it with its assigned ID.
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)

	// Get retrieves an account by ID. Returns account.ErrAccountNotFound when absent.
	Get(ctx context.Context, id uint) (*dto.AccountRead, error)

	// List returns every account, newest ID first.
	List(ctx context.Context) ([]*dto.AccountRead, error)

	// ListByOwner returns the accounts held by a person, newest ID first.
	ListByOwner(ctx context.Context, ownerID uint) ([]*dto.AccountRead, error)

	// Update applies the non-nil fields of update and reports how many rows matched.
	Update(ctx context.Context, id uint, update dto.AccountUpdate) (int64, error)

	// AdjustBalance adds delta to the stored balance in a single statement
	// and reports how many rows matched.
	AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) (int64, error)
}

// TransactionRepository defines the interface for ledger data access operations.
type TransactionRepository interface {
	// Create appends a ledger entry and returns it with its assigned ID.
	Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error)

	// ListByAccount returns the entries of an account, newest ID first.
	ListByAccount(ctx context.Context, accountID uint, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
}
