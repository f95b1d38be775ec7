package transaction

import (
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/shopspring/decimal"
)

// MutationRequest represents the request body of a deposit or withdrawal.
// Amount accepts a JSON number or a decimal string and must be at least 1.
type MutationRequest struct {
	AccountID uint             `json:"accountId" validate:"required" example:"1"`
	Amount    *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"100"`
}

// ExtractResponse wraps an account statement.
type ExtractResponse struct {
	Extract []*dto.TransactionRead `json:"extract"`
}
