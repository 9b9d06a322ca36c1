// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Stores bundles the repositories bound to one transactional scope.
// Repositories obtained through a unit of work see each other's
// uncommitted writes and commit or roll back together.
type Stores struct {
	Users        UserRepository
	Accounts     AccountRepository
	Categories   CategoryRepository
	Transactions TransactionRepository
}

// UnitOfWork runs a function inside a single atomic unit of work.
// If fn returns an error, every write made through the passed stores
// is rolled back; otherwise all writes commit together.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
