// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// Balance mutations go through Save and must happen inside a unit of work
// after the row was fetched with FindByIDForUpdate.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account by ID holding a row-level
	// exclusive lock until the surrounding unit of work commits.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Save persists changes to an existing account, including its balance.
	Save(ctx context.Context, account *entity.Account) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
