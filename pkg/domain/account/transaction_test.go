package account_test

import (
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Signed(t *testing.T) {
	t.Parallel()
	hundred := decimal.NewFromInt(100)
	assert.True(t, account.Deposit.Signed(hundred).Equal(hundred))
	assert.True(t, account.Withdraw.Signed(hundred).Equal(decimal.NewFromInt(-100)))
	// the sign comes from the direction, never from the magnitude
	assert.True(t, account.Deposit.Signed(hundred.Neg()).Equal(hundred))
}

func TestValidateMutation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		accountID uint
		magnitude decimal.Decimal
		direction account.Direction
		wantErr   error
	}{
		{"deposit ok", 1, decimal.NewFromInt(1), account.Deposit, nil},
		{"withdraw ok", 1, decimal.RequireFromString("30.25"), account.Withdraw, nil},
		{"missing account", 0, decimal.NewFromInt(10), account.Deposit, account.ErrAccountIDRequired},
		{"zero amount", 1, decimal.Zero, account.Deposit, account.ErrAmountBelowMinimum},
		{"sub-unit amount", 1, decimal.RequireFromString("0.99"), account.Withdraw, account.ErrAmountBelowMinimum},
		{"negative amount", 1, decimal.NewFromInt(-5), account.Deposit, account.ErrAmountBelowMinimum},
		{"fractional cent", 1, decimal.RequireFromString("1.005"), account.Deposit, account.ErrAmountPrecision},
		{"trailing zeros", 1, decimal.RequireFromString("12.5000"), account.Withdraw, nil},
		{"bad direction", 1, decimal.NewFromInt(5), account.Direction(0), account.ErrInvalidDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := account.ValidateMutation(tt.accountID, tt.magnitude, tt.direction)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewTransaction(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	tx, err := account.NewTransaction(7, decimal.NewFromInt(30), account.Withdraw, at)
	require.NoError(t, err)
	assert.Equal(t, uint(7), tx.AccountID)
	assert.Equal(t, "-30", tx.Amount.String())
	assert.Equal(t, time.UTC, tx.OccurredAt.Location())
	assert.True(t, tx.OccurredAt.Equal(at))

	tx, err = account.NewTransaction(7, decimal.NewFromInt(0), account.Deposit, at)
	assert.Error(t, err)
	assert.Nil(t, tx)
}
