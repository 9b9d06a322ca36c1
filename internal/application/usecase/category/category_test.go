package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			found := c
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByUserNameAndType(_ context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType, excludeID *uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == userID && c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

type fakeTransactionUsage struct {
	usedCategories map[uuid.UUID]bool
}

func (r *fakeTransactionUsage) Create(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *fakeTransactionUsage) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (r *fakeTransactionUsage) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *fakeTransactionUsage) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (r *fakeTransactionUsage) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	return r.usedCategories[categoryID], nil
}
func (r *fakeTransactionUsage) ExistsByAccountID(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

func TestCreateCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Name:   "coffee",
		Type:   entity.CategoryTypeExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name != "coffee" || out.Category.Type != entity.CategoryTypeExpense {
		t.Errorf("unexpected output: %+v", out.Category)
	}
	if len(repo.categories) != 1 {
		t.Errorf("expected 1 persisted category, got %d", len(repo.categories))
	}
}

func TestCreateCategory_DuplicateNameSameType(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	existing := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Name:   "coffee",
		Type:   entity.CategoryTypeExpense,
	})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Fatalf("expected ErrCategoryNameExists, got %v", err)
	}
}

func TestCreateCategory_SameNameDifferentTypeAllowed(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	existing := entity.NewCategory(userID, "기타", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Name:   "기타",
		Type:   entity.CategoryTypeIncome,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	tests := []struct {
		name  string
		input CreateCategoryInput
	}{
		{"empty name", CreateCategoryInput{UserID: userID, Name: "   ", Type: entity.CategoryTypeExpense}},
		{"name too long", CreateCategoryInput{UserID: userID, Name: strings.Repeat("a", MaxCategoryNameLength+1), Type: entity.CategoryTypeExpense}},
		{"bad type", CreateCategoryInput{UserID: userID, Name: "coffee", Type: entity.CategoryType("SAVINGS")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
				t.Errorf("expected ErrInvalidCategoryType, got %v", err)
			}
		})
	}
}

func TestUpdateCategory_Rename(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewUpdateCategoryUseCase(repo)
	userID := uuid.New()

	existing := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	out, err := uc.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: existing.ID,
		UserID:     userID,
		Name:       "cafe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name != "cafe" {
		t.Errorf("expected renamed category, got %q", out.Category.Name)
	}
	if out.Category.Type != entity.CategoryTypeExpense {
		t.Errorf("type must not change on rename, got %q", out.Category.Type)
	}
}

func TestUpdateCategory_RenameToOwnNameIsNoOp(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewUpdateCategoryUseCase(repo)
	userID := uuid.New()

	existing := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	_, err := uc.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: existing.ID,
		UserID:     userID,
		Name:       "coffee",
	})
	if err != nil {
		t.Fatalf("renaming to the current name must not conflict: %v", err)
	}
}

func TestUpdateCategory_RenameToExistingName(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewUpdateCategoryUseCase(repo)
	userID := uuid.New()

	first := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	second := entity.NewCategory(userID, "cafe", entity.CategoryTypeExpense)
	repo.categories[first.ID] = *first
	repo.categories[second.ID] = *second

	_, err := uc.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: second.ID,
		UserID:     userID,
		Name:       "coffee",
	})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Fatalf("expected ErrCategoryNameExists, got %v", err)
	}
}

func TestUpdateCategory_NotOwner(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewUpdateCategoryUseCase(repo)

	existing := entity.NewCategory(uuid.New(), "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	_, err := uc.Execute(context.Background(), UpdateCategoryInput{
		CategoryID: existing.ID,
		UserID:     uuid.New(),
		Name:       "cafe",
	})
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyCategory) {
		t.Fatalf("expected ErrNotAuthorizedToModifyCategory, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	usage := &fakeTransactionUsage{usedCategories: map[uuid.UUID]bool{}}
	uc := NewDeleteCategoryUseCase(repo, usage)
	userID := uuid.New()

	existing := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	out, err := uc.Execute(context.Background(), DeleteCategoryInput{
		CategoryID: existing.ID,
		UserID:     userID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Errorf("expected success output")
	}
	if len(repo.categories) != 0 {
		t.Errorf("category must be removed")
	}
}

func TestDeleteCategory_StillReferenced(t *testing.T) {
	repo := newFakeCategoryRepo()
	userID := uuid.New()

	existing := entity.NewCategory(userID, "coffee", entity.CategoryTypeExpense)
	repo.categories[existing.ID] = *existing

	usage := &fakeTransactionUsage{usedCategories: map[uuid.UUID]bool{existing.ID: true}}
	uc := NewDeleteCategoryUseCase(repo, usage)

	_, err := uc.Execute(context.Background(), DeleteCategoryInput{
		CategoryID: existing.ID,
		UserID:     userID,
	})
	if !errors.Is(err, domainerror.ErrCategoryHasTransactions) {
		t.Fatalf("expected ErrCategoryHasTransactions, got %v", err)
	}
	if _, ok := repo.categories[existing.ID]; !ok {
		t.Errorf("category must survive a rejected delete")
	}
}

func TestListCategories_FilterAndOrder(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewListCategoriesUseCase(repo)
	userID := uuid.New()

	for _, seed := range []struct {
		name string
		typ  entity.CategoryType
	}{
		{"식비", entity.CategoryTypeExpense},
		{"교통", entity.CategoryTypeExpense},
		{"급여", entity.CategoryTypeIncome},
	} {
		c := entity.NewCategory(userID, seed.name, seed.typ)
		repo.categories[c.ID] = *c
	}
	foreign := entity.NewCategory(uuid.New(), "식비", entity.CategoryTypeExpense)
	repo.categories[foreign.ID] = *foreign

	out, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(out.Categories))
	}
	if out.Categories[0].Type != entity.CategoryTypeExpense {
		t.Errorf("expense categories must come first")
	}
	if out.Categories[2].Name != "급여" {
		t.Errorf("income category must come last, got %q", out.Categories[2].Name)
	}

	income := entity.CategoryTypeIncome
	filtered, err := uc.Execute(context.Background(), ListCategoriesInput{UserID: userID, Type: &income})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered.Categories) != 1 || filtered.Categories[0].Name != "급여" {
		t.Errorf("expected only the income category, got %+v", filtered.Categories)
	}
}
