package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork on top of a GORM database
// transaction. Every repository handed to fn is bound to the same
// transaction, so row locks taken through them are held until Do returns.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work instance.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do runs fn inside a database transaction. The transaction commits when
// fn returns nil and rolls back when it returns an error or panics.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, stores adapter.Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, adapter.Stores{
			Users:        NewUserRepository(tx),
			Accounts:     NewAccountRepository(tx),
			Categories:   NewCategoryRepository(tx),
			Transactions: NewTransactionRepository(tx),
		})
	})
}
