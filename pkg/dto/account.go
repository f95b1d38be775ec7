package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID                 uint            `json:"id"`
	OwnerID            uint            `json:"ownerId"`
	Balance            decimal.Decimal `json:"balance"`
	DailyWithdrawLimit decimal.Decimal `json:"dailyWithdrawLimit"`
	Active             bool            `json:"active"`
	Type               int             `json:"type"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// AccountCreate is a DTO for inserting a fully defaulted account.
type AccountCreate struct {
	OwnerID            uint
	Balance            decimal.Decimal
	DailyWithdrawLimit decimal.Decimal
	Active             bool
	Type               int
	CreatedAt          time.Time
}

// AccountUpdate is a DTO for updating one or more fields of an account.
// The balance is deliberately absent: it only moves through AdjustBalance.
type AccountUpdate struct {
	Active *bool
}

// AccountCommand is a DTO for caller input; nil optional fields take the account defaults.
type AccountCommand struct {
	OwnerID            uint
	Balance            *decimal.Decimal
	DailyWithdrawLimit *decimal.Decimal
	Active             *bool
	Type               *int
}
