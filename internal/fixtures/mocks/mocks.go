// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork runs Do callbacks against itself so the repository mocks
// below are handed to the service code.
type MockUnitOfWork struct {
	mock.Mock
	Persons      *MockPersonRepository
	Accounts     *MockAccountRepository
	Transactions *MockTransactionRepository
}

// NewMockUnitOfWork creates a unit of work wired to fresh repository mocks.
// Expectations of all four mocks are asserted when the test ends.
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	u := &MockUnitOfWork{
		Persons:      &MockPersonRepository{},
		Accounts:     &MockAccountRepository{},
		Transactions: &MockTransactionRepository{},
	}
	u.Test(t)
	u.Persons.Test(t)
	u.Accounts.Test(t)
	u.Transactions.Test(t)
	t.Cleanup(func() {
		u.AssertExpectations(t)
		u.Persons.AssertExpectations(t)
		u.Accounts.AssertExpectations(t)
		u.Transactions.AssertExpectations(t)
	})
	return u
}

// Do records the call and invokes fn unless an error was configured.
func (u *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := u.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(u)
}

func (u *MockUnitOfWork) PersonRepository() repository.PersonRepository {
	return u.Persons
}

func (u *MockUnitOfWork) AccountRepository() repository.AccountRepository {
	return u.Accounts
}

func (u *MockUnitOfWork) TransactionRepository() repository.TransactionRepository {
	return u.Transactions
}

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Create(ctx context.Context, create dto.PersonCreate) (*dto.PersonRead, error) {
	args := m.Called(ctx, create)
	p, _ := args.Get(0).(*dto.PersonRead)
	return p, args.Error(1)
}

func (m *MockPersonRepository) Get(ctx context.Context, id uint) (*dto.PersonRead, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*dto.PersonRead)
	return p, args.Error(1)
}

func (m *MockPersonRepository) List(ctx context.Context) ([]*dto.PersonRead, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*dto.PersonRead)
	return p, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	args := m.Called(ctx, create)
	a, _ := args.Get(0).(*dto.AccountRead)
	return a, args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, id uint) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*dto.AccountRead)
	return a, args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).([]*dto.AccountRead)
	return a, args.Error(1)
}

func (m *MockAccountRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*dto.AccountRead, error) {
	args := m.Called(ctx, ownerID)
	a, _ := args.Get(0).([]*dto.AccountRead)
	return a, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, id uint, update dto.AccountUpdate) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*dto.TransactionRead)
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) ListByAccount(
	ctx context.Context,
	accountID uint,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, accountID, filter)
	txs, _ := args.Get(0).([]*dto.TransactionRead)
	return txs, args.Error(1)
}

var (
	_ repository.UnitOfWork            = (*MockUnitOfWork)(nil)
	_ repository.PersonRepository      = (*MockPersonRepository)(nil)
	_ repository.AccountRepository     = (*MockAccountRepository)(nil)
	_ repository.TransactionRepository = (*MockTransactionRepository)(nil)
)
