// Package category contains the use cases for managing user-defined
// income and expense categories.
package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// CategoryOutput is the use case view of a category.
type CategoryOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      entity.CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newCategoryOutput(category *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeExpense || categoryType == entity.CategoryTypeIncome
}
