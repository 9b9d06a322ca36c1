// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
// The type is fixed at creation and never changes.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "EXPENSE"
	CategoryTypeIncome  CategoryType = "INCOME"
)

// Category represents a user-owned spending or income category.
// A category name is unique per (user, name, type).
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories is the fixed category set seeded for every new user.
var DefaultCategories = []struct {
	Name string
	Type CategoryType
}{
	{Name: "급여", Type: CategoryTypeIncome},
	{Name: "용돈", Type: CategoryTypeIncome},
	{Name: "기타 수입", Type: CategoryTypeIncome},
	{Name: "식비", Type: CategoryTypeExpense},
	{Name: "교통", Type: CategoryTypeExpense},
	{Name: "주거/통신", Type: CategoryTypeExpense},
	{Name: "문화/여가", Type: CategoryTypeExpense},
	{Name: "기타 지출", Type: CategoryTypeExpense},
}
