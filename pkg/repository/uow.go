package repository

import "context"

// UnitOfWork defines the contract for transactional work and repository access.
//
// Repositories obtained from the UnitOfWork passed to fn share the transaction
// opened by Do. Repositories obtained outside Do run against the root
// connection, each statement in its own implicit transaction.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The transaction commits
	// only when fn returns nil; any error or panic rolls it back.
	// Calling Do on a UnitOfWork already inside a transaction reuses it.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	PersonRepository() PersonRepository
	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
}
