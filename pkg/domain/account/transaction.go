package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountIDRequired is returned when a ledger operation has no account.
	ErrAccountIDRequired = errors.New("account id is required")

	// ErrAmountBelowMinimum is returned when a deposit or withdrawal is smaller than MinimumAmount.
	ErrAmountBelowMinimum = errors.New("amount must be at least 1")

	// ErrAmountPrecision is returned when an amount has more than AmountScale decimal places.
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")

	// ErrInvalidDirection is returned for a direction other than Deposit or Withdraw.
	ErrInvalidDirection = errors.New("invalid direction")
)

// MinimumAmount is the smallest magnitude accepted by a deposit or withdrawal.
var MinimumAmount = decimal.NewFromInt(1)

// AmountScale is the number of decimal places stored for money.
const AmountScale = 2

// Direction tells whether a ledger mutation adds to or takes from the balance.
type Direction int

const (
	// Deposit adds the magnitude to the balance.
	Deposit Direction = iota + 1
	// Withdraw subtracts the magnitude from the balance.
	Withdraw
)

func (d Direction) String() string {
	switch d {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Signed returns the magnitude with the sign of the direction.
func (d Direction) Signed(magnitude decimal.Decimal) decimal.Decimal {
	if d == Withdraw {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// ValidateMutation checks the inputs of a ledger mutation.
func ValidateMutation(accountID uint, magnitude decimal.Decimal, d Direction) error {
	if accountID == 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, ErrAccountIDRequired)
	}
	if d != Deposit && d != Withdraw {
		return fmt.Errorf("%w: %w", domain.ErrValidation, ErrInvalidDirection)
	}
	if magnitude.LessThan(MinimumAmount) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, ErrAmountBelowMinimum)
	}
	if !magnitude.Equal(magnitude.Round(AmountScale)) {
		return fmt.Errorf("%w: %w", domain.ErrValidation, ErrAmountPrecision)
	}
	return nil
}

// Transaction is an immutable ledger entry. Amount is positive for deposits
// and negative for withdrawals.
type Transaction struct {
	ID         uint
	AccountID  uint
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// NewTransaction validates a mutation and returns the ledger entry that records it.
func NewTransaction(
	accountID uint,
	magnitude decimal.Decimal,
	d Direction,
	occurredAt time.Time,
) (*Transaction, error) {
	if err := ValidateMutation(accountID, magnitude, d); err != nil {
		return nil, err
	}
	return &Transaction{
		AccountID:  accountID,
		Amount:     d.Signed(magnitude),
		OccurredAt: occurredAt.UTC(),
	}, nil
}
