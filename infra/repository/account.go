package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements repository.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	acct := Account{
		OwnerID:            create.OwnerID,
		Balance:            create.Balance,
		DailyWithdrawLimit: create.DailyWithdrawLimit,
		Active:             create.Active,
		Type:               create.Type,
		CreatedAt:          create.CreatedAt.UTC(),
	}
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(&acct).Error
	}); err != nil {
		return nil, err
	}
	return mapAccountToDTO(&acct), nil
}

// Get implements repository.AccountRepository.
func (r *accountRepository) Get(ctx context.Context, id uint) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapAccountToDTO(&acct), nil
}

// List implements repository.AccountRepository.
func (r *accountRepository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByOwner implements repository.AccountRepository.
func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*dto.AccountRead, error) {
	return r.find(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *accountRepository) find(q *gorm.DB) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := WrapError(func() error {
		return q.Order("id DESC").Find(&accts).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapAccountToDTO(&accts[i]))
	}
	return result, nil
}

// Update implements repository.AccountRepository.
func (r *accountRepository) Update(ctx context.Context, id uint, update dto.AccountUpdate) (int64, error) {
	updates := mapAccountUpdate(update)
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return 0, MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

// AdjustBalance implements repository.AccountRepository.
func (r *accountRepository) AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return 0, MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

// mapAccountUpdate maps AccountUpdate DTO to a map for GORM Updates.
func mapAccountUpdate(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Active != nil {
		updates["active"] = *update.Active
	}
	return updates
}

func mapAccountToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:                 acct.ID,
		OwnerID:            acct.OwnerID,
		Balance:            acct.Balance,
		DailyWithdrawLimit: acct.DailyWithdrawLimit,
		Active:             acct.Active,
		Type:               acct.Type,
		CreatedAt:          acct.CreatedAt.UTC(),
	}
}
