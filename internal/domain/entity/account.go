// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a user-owned account holding a balance in minor
// currency units. The balance is mutated only by the ledger use cases
// inside a unit of work; there is no external balance setter.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity with an initial balance.
func NewAccount(userID uuid.UUID, name string, balance int64) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AccountSummary represents the aggregate balance across a user's accounts.
type AccountSummary struct {
	TotalBalance int64
	AccountCount int
	Accounts     []*Account
}
