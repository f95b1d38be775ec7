package repository

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a ledger repository bound to db.
func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create implements repository.TransactionRepository.
func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	tx := Transaction{
		AccountID:  create.AccountID,
		Amount:     create.Amount,
		OccurredAt: create.OccurredAt.UTC(),
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&tx).Error
	}); err != nil {
		return nil, err
	}
	return mapTransactionToDTO(&tx), nil
}

// ListByAccount implements repository.TransactionRepository.
func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID uint,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if filter.From != nil {
		q = q.Where("occurred_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("occurred_at <= ?", filter.To.UTC())
	}

	var rows []Transaction
	if err := WrapError(func() error {
		return q.Order("id DESC").Find(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapTransactionToDTO(&rows[i]))
	}
	return result, nil
}

func mapTransactionToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		Amount:     tx.Amount,
		OccurredAt: tx.OccurredAt.UTC(),
	}
}
