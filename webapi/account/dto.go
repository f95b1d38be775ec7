package account

import (
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// NewAccount represents the request body for opening an account. Omitted
// optional fields take the account defaults.
type NewAccount struct {
	OwnerID            uint             `json:"ownerId" validate:"required" example:"1"`
	Balance            *decimal.Decimal `json:"balance,omitempty" swaggertype:"string" example:"0"`
	DailyWithdrawLimit *decimal.Decimal `json:"dailyWithdrawLimit,omitempty" swaggertype:"string" example:"1000"`
	Active             *bool            `json:"active,omitempty" example:"true"`
	Type               *int             `json:"type,omitempty" validate:"omitempty,oneof=1 2" example:"1"`
}

func (n NewAccount) command() dto.AccountCommand {
	return dto.AccountCommand{
		OwnerID:            n.OwnerID,
		Balance:            n.Balance,
		DailyWithdrawLimit: n.DailyWithdrawLimit,
		Active:             n.Active,
		Type:               n.Type,
	}
}

// AccountResponse wraps a single account.
type AccountResponse struct {
	Account *dto.AccountRead `json:"account"`
}

// AccountsResponse wraps a list of accounts.
type AccountsResponse struct {
	Accounts []*dto.AccountRead `json:"accounts"`
}

// BalanceResponse carries the current balance as a decimal string.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"70"`
}
