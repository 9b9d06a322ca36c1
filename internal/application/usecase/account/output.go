// Package account contains the use cases for managing user accounts and
// their balance summaries.
package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// AccountOutput is the use case view of an account.
type AccountOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:        account.ID,
		UserID:    account.UserID,
		Name:      account.Name,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
