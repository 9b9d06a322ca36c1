// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByCategoryID checks whether any transaction references the category.
	ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// ExistsByAccountID checks whether any transaction references the account.
	ExistsByAccountID(ctx context.Context, accountID uuid.UUID) (bool, error)
}
