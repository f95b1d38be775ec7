package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/amirasaad/backoffice/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides a transaction boundary and repository access in one abstraction.
type UoW struct {
	db     *gorm.DB
	tx     *gorm.DB
	txOpts *sql.TxOptions
	logger *slog.Logger
}

// Option configures a UoW.
type Option func(*UoW)

// WithIsolation sets the isolation level used by Do.
// sql.LevelDefault leaves the choice to the database.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(u *UoW) {
		if level == sql.LevelDefault {
			u.txOpts = nil
			return
		}
		u.txOpts = &sql.TxOptions{Isolation: level}
	}
}

// WithLogger sets the logger used to report transaction outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(u *UoW) {
		u.logger = logger
	}
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs fn inside a transaction. The transaction is committed only when
// fn returns nil; an error or a panic from fn rolls it back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) (err error) {
	if u.tx != nil {
		return fn(u)
	}

	tx := u.db.WithContext(ctx).Begin(u.txOptions()...)
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	done := false
	defer func() {
		if done {
			return
		}
		if rbErr := tx.Rollback().Error; rbErr != nil {
			u.logger.Error("Failed to rollback transaction", "error", rbErr)
		}
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err = fn(&UoW{db: u.db, tx: tx, txOpts: u.txOpts, logger: u.logger}); err != nil {
		return err
	}

	done = true
	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (u *UoW) txOptions() []*sql.TxOptions {
	if u.txOpts == nil {
		return nil
	}
	return []*sql.TxOptions{u.txOpts}
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// PersonRepository returns a person repository bound to the current session.
func (u *UoW) PersonRepository() repository.PersonRepository {
	return NewPersonRepository(u.session())
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

// TransactionRepository returns a ledger repository bound to the current session.
func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.session())
}
