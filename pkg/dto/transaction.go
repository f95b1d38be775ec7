package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for ledger entries.
type TransactionRead struct {
	ID         uint            `json:"id"`
	AccountID  uint            `json:"accountId"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// TransactionCreate is a DTO for appending a ledger entry. Amount is already signed.
type TransactionCreate struct {
	AccountID  uint
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// TransactionFilter restricts a ledger listing to OccurredAt within [From, To].
// A nil bound leaves that side open.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}
