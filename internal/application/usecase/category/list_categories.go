package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// ListCategoriesInput represents the input for category listing.
// Type is optional; when set, only categories of that type are returned.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Type   *entity.CategoryType
}

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepository adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepository adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepository: categoryRepository}
}

// Execute returns the user's categories, expense first, then by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	outputs := make([]*CategoryOutput, 0, len(categories))
	for _, c := range categories {
		if input.Type != nil && c.Type != *input.Type {
			continue
		}
		outputs = append(outputs, newCategoryOutput(c))
	}

	sort.Slice(outputs, func(i, j int) bool {
		if outputs[i].Type != outputs[j].Type {
			return outputs[i].Type == entity.CategoryTypeExpense
		}
		return outputs[i].Name < outputs[j].Name
	})

	return &ListCategoriesOutput{Categories: outputs}, nil
}
