package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. An error returned by fn rolls it back,
	// otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to the current transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
