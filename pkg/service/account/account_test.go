package account_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	infrarepo "github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/person"
	"github.com/amirasaad/backoffice/pkg/dto"
	accountsvc "github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/amirasaad/backoffice/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestCreateAccount_OwnerRequired(t *testing.T) {
	t.Parallel()
	uow := mocks.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, slog.Default())

	_, err := svc.CreateAccount(context.Background(), dto.AccountCommand{})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, account.ErrOwnerRequired)
}

func TestCreateAccount_OwnerNotFound(t *testing.T) {
	t.Parallel()
	uow := mocks.NewMockUnitOfWork(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uow.Persons.On("Get", mock.Anything, uint(42)).Return(nil, person.ErrPersonNotFound)
	svc := accountsvc.New(uow, slog.Default())

	_, err := svc.CreateAccount(context.Background(), dto.AccountCommand{OwnerID: 42})
	require.ErrorIs(t, err, domain.ErrNotFound)
	uow.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAccount_AppliesDefaults(t *testing.T) {
	t.Parallel()
	uow := mocks.NewMockUnitOfWork(t)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	uow.Persons.On("Get", mock.Anything, uint(1)).Return(&dto.PersonRead{ID: 1}, nil)
	uow.Accounts.On("Create", mock.Anything, mock.MatchedBy(func(c dto.AccountCreate) bool {
		return c.OwnerID == 1 &&
			c.Balance.IsZero() &&
			c.DailyWithdrawLimit.Equal(decimal.NewFromInt(1000)) &&
			c.Active &&
			c.Type == int(account.Checking) &&
			!c.CreatedAt.IsZero()
	})).Return(&dto.AccountRead{ID: 5, OwnerID: 1}, nil)
	svc := accountsvc.New(uow, slog.Default())

	got, err := svc.CreateAccount(context.Background(), dto.AccountCommand{OwnerID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
}

func TestBlockAccount_MissingIsSilent(t *testing.T) {
	t.Parallel()
	uow := mocks.NewMockUnitOfWork(t)
	inactive := false
	uow.Accounts.On("Update", mock.Anything, uint(77), dto.AccountUpdate{Active: &inactive}).Return(int64(0), nil)
	svc := accountsvc.New(uow, slog.Default())

	assert.NoError(t, svc.BlockAccount(context.Background(), 77))
}

type AccountServiceSuite struct {
	suite.Suite
	svc   *accountsvc.Service
	owner *dto.PersonRead
	ctx   context.Context
}

func (s *AccountServiceSuite) SetupTest() {
	db := testutils.NewSQLiteDB(s.T(), infrarepo.Models()...)
	uow := infrarepo.NewUoW(db)
	s.svc = accountsvc.New(uow, slog.Default())
	s.ctx = context.Background()

	owner, err := uow.PersonRepository().Create(s.ctx, dto.PersonCreate{
		Name: "A", NationalID: "123", BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.owner = owner
}

func (s *AccountServiceSuite) TestCreateWithOverrides() {
	balance := decimal.NewFromInt(250)
	limit := decimal.NewFromInt(50)
	active := false
	typ := int(account.Savings)

	got, err := s.svc.CreateAccount(s.ctx, dto.AccountCommand{
		OwnerID: s.owner.ID, Balance: &balance, DailyWithdrawLimit: &limit, Active: &active, Type: &typ,
	})
	s.Require().NoError(err)

	stored, err := s.svc.GetAccount(s.ctx, got.ID)
	s.Require().NoError(err)
	s.True(balance.Equal(stored.Balance))
	s.True(limit.Equal(stored.DailyWithdrawLimit))
	s.False(stored.Active)
	s.Equal(typ, stored.Type)
}

func (s *AccountServiceSuite) TestCreateRejectsUnknownOwnerWithoutRow() {
	_, err := s.svc.CreateAccount(s.ctx, dto.AccountCommand{OwnerID: s.owner.ID + 1})
	s.ErrorIs(err, domain.ErrNotFound)

	all, err := s.svc.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *AccountServiceSuite) TestListByOwnerAndBalance() {
	first, err := s.svc.CreateAccount(s.ctx, dto.AccountCommand{OwnerID: s.owner.ID})
	s.Require().NoError(err)
	second, err := s.svc.CreateAccount(s.ctx, dto.AccountCommand{OwnerID: s.owner.ID})
	s.Require().NoError(err)

	owned, err := s.svc.ListAccountsByOwner(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(owned, 2)
	s.Equal(second.ID, owned[0].ID)
	s.Equal(first.ID, owned[1].ID)

	_, err = s.svc.ListAccountsByOwner(s.ctx, s.owner.ID+1)
	s.ErrorIs(err, person.ErrPersonNotFound)

	bal, err := s.svc.GetBalance(s.ctx, first.ID)
	s.Require().NoError(err)
	s.True(bal.IsZero())

	_, err = s.svc.GetBalance(s.ctx, 9999)
	s.ErrorIs(err, account.ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestBlockIsIdempotent() {
	acc, err := s.svc.CreateAccount(s.ctx, dto.AccountCommand{OwnerID: s.owner.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.BlockAccount(s.ctx, acc.ID))
	s.Require().NoError(s.svc.BlockAccount(s.ctx, acc.ID))

	got, err := s.svc.GetAccount(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.False(got.Active)

	s.NoError(s.svc.BlockAccount(s.ctx, 9999))
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}
