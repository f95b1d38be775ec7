package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SQLiteRepositorySuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (s *SQLiteRepositorySuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T(), Models()...)
	s.ctx = context.Background()
}

func (s *SQLiteRepositorySuite) seedAccount() *dto.AccountRead {
	p, err := NewPersonRepository(s.db).Create(s.ctx, dto.PersonCreate{
		Name:       "Ana",
		NationalID: "12345678900",
		BirthDate:  time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	acct, err := NewAccountRepository(s.db).Create(s.ctx, dto.AccountCreate{
		OwnerID:            p.ID,
		Balance:            decimal.NewFromInt(100),
		DailyWithdrawLimit: decimal.NewFromInt(1000),
		Active:             true,
		Type:               1,
		CreatedAt:          time.Now().UTC(),
	})
	s.Require().NoError(err)
	return acct
}

func (s *SQLiteRepositorySuite) TestPersonRoundTrip() {
	repo := NewPersonRepository(s.db)
	created, err := repo.Create(s.ctx, dto.PersonCreate{
		Name:       "Bia",
		NationalID: "999",
		BirthDate:  time.Date(2001, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	got, err := repo.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Bia", got.Name)
	s.Equal("999", got.NationalID)
	s.Equal(time.Date(2001, 12, 31, 0, 0, 0, 0, time.UTC), got.BirthDate.Time())

	all, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *SQLiteRepositorySuite) TestAccountInactiveIsPersisted() {
	acct := s.seedAccount()
	repo := NewAccountRepository(s.db)

	inactive := false
	n, err := repo.Update(s.ctx, acct.ID, dto.AccountUpdate{Active: &inactive})
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := repo.Get(s.ctx, acct.ID)
	s.Require().NoError(err)
	s.False(got.Active)
	s.True(decimal.NewFromInt(100).Equal(got.Balance))

	n, err = repo.Update(s.ctx, 9999, dto.AccountUpdate{Active: &inactive})
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *SQLiteRepositorySuite) TestAdjustBalance() {
	acct := s.seedAccount()
	repo := NewAccountRepository(s.db)

	n, err := repo.AdjustBalance(s.ctx, acct.ID, decimal.NewFromInt(-30))
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	got, err := repo.Get(s.ctx, acct.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(70).Equal(got.Balance), got.Balance.String())
}

func (s *SQLiteRepositorySuite) TestListByOwner() {
	acct := s.seedAccount()
	repo := NewAccountRepository(s.db)

	owned, err := repo.ListByOwner(s.ctx, acct.OwnerID)
	s.Require().NoError(err)
	s.Len(owned, 1)

	none, err := repo.ListByOwner(s.ctx, acct.OwnerID+1)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *SQLiteRepositorySuite) TestAccountRequiresExistingOwner() {
	_, err := NewAccountRepository(s.db).Create(s.ctx, dto.AccountCreate{
		OwnerID:            404,
		Balance:            decimal.Zero,
		DailyWithdrawLimit: decimal.NewFromInt(1000),
		Active:             true,
		Type:               1,
		CreatedAt:          time.Now().UTC(),
	})
	s.Error(err)
}

func (s *SQLiteRepositorySuite) TestLedgerFilterAndOrder() {
	acct := s.seedAccount()
	repo := NewTransactionRepository(s.db)
	days := []time.Time{
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC),
	}
	for i, at := range days {
		_, err := repo.Create(s.ctx, dto.TransactionCreate{
			AccountID:  acct.ID,
			Amount:     decimal.NewFromInt(int64(i + 1)),
			OccurredAt: at,
		})
		s.Require().NoError(err)
	}

	all, err := repo.ListByAccount(s.ctx, acct.ID, dto.TransactionFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Greater(all[0].ID, all[1].ID)
	s.Greater(all[1].ID, all[2].ID)

	from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 23, 59, 59, 0, time.UTC)
	window, err := repo.ListByAccount(s.ctx, acct.ID, dto.TransactionFilter{From: &from, To: &to})
	s.Require().NoError(err)
	s.Require().Len(window, 1)
	s.True(decimal.NewFromInt(2).Equal(window[0].Amount))

	other, err := repo.ListByAccount(s.ctx, acct.ID+100, dto.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(other)
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositorySuite))
}

func TestModelsTableNames(t *testing.T) {
	assert.Equal(t, "person", Person{}.TableName())
	assert.Equal(t, "account", Account{}.TableName())
	require.Equal(t, "transaction", Transaction{}.TableName())
}
