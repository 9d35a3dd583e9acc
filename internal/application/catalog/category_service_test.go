package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategory(slug, title string) *catalog.Category {
	category, _ := catalog.NewCategory(slug, title)
	return category
}

func TestCategoryService_Create_Success(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewCategoryService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()
	req := CreateCategoryRequest{
		Slug:  "drehspiess",
		Title: "Drehspieß",
	}

	mockCategoryRepo.On("FindBySlug", ctx, "drehspiess").Return(nil, shared.ErrNotFound)
	mockCategoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "drehspiess", result.Slug)
	assert.Equal(t, "Drehspieß", result.Title)
	assert.Equal(t, "active", result.Status)
	mockCategoryRepo.AssertExpectations(t)
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewCategoryService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()
	existing := createTestCategory("pizza", "Pizza")

	mockCategoryRepo.On("FindBySlug", ctx, "pizza").Return(existing, nil)

	result, err := service.Create(ctx, CreateCategoryRequest{Slug: "pizza", Title: "Pizza Neu"})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockCategoryRepo.AssertNotCalled(t, "Save")
}

func TestCategoryService_Delete_RejectsNonEmpty(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewCategoryService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()
	category := createTestCategory("salate", "Salate")
	item := createTestItem(7, "Chefsalat")

	mockCategoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mockItemRepo.On("FindByCategory", ctx, category.ID).Return([]catalog.MenuItem{*item}, nil)

	err := service.Delete(ctx, category.ID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "HAS_ITEMS", domainErr.Code)
	mockCategoryRepo.AssertNotCalled(t, "Delete")
}

func TestCategoryService_RepairDuplicateSlugs(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewCategoryService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()

	oldest := createTestCategory("pizza", "Pizza")
	oldest.CreatedAt = time.Now().Add(-48 * time.Hour)
	newer := createTestCategory("pizza", "Pizza")
	newest := createTestCategory("pizza", "Pizza")

	// repository returns duplicates ordered slug asc, created_at asc
	mockCategoryRepo.On("FindDuplicateSlugs", ctx).Return([]catalog.Category{*oldest, *newer, *newest}, nil)
	mockItemRepo.On("ReassignCategory", ctx, newer.ID, oldest.ID).Return(nil)
	mockItemRepo.On("ReassignCategory", ctx, newest.ID, oldest.ID).Return(nil)
	mockCategoryRepo.On("Delete", ctx, newer.ID).Return(nil)
	mockCategoryRepo.On("Delete", ctx, newest.ID).Return(nil)

	result, err := service.RepairDuplicateSlugs(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, result.RemovedCategories)
	assert.Equal(t, 1, result.ReassignedSlugs)
	mockCategoryRepo.AssertExpectations(t)
	mockItemRepo.AssertExpectations(t)
}

func TestCategoryService_RepairDuplicateSlugs_NothingToDo(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewCategoryService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()
	mockCategoryRepo.On("FindDuplicateSlugs", ctx).Return([]catalog.Category{}, nil)

	result, err := service.RepairDuplicateSlugs(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.RemovedCategories)
	mockItemRepo.AssertNotCalled(t, "ReassignCategory")
}

func TestMenuService_Sections_SkipsInactiveAndEmpty(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewMenuService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()

	visible := createTestCategory("drehspiess", "Drehspieß")
	hidden := createTestCategory("saison", "Saisonkarte")
	require.NoError(t, hidden.Deactivate())
	empty := createTestCategory("desserts", "Desserts")

	item := createTestItem(1, "Döner Kebab")
	item.SetCategory(&visible.ID)

	mockCategoryRepo.On("FindAll", ctx).Return([]catalog.Category{*visible, *hidden, *empty}, nil)
	mockItemRepo.On("FindByCategory", ctx, visible.ID).Return([]catalog.MenuItem{*item}, nil)
	mockItemRepo.On("FindByCategory", ctx, empty.ID).Return([]catalog.MenuItem{}, nil)

	sections, err := service.Sections(ctx)

	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "drehspiess", sections[0].Category.Slug)
	require.Len(t, sections[0].Items, 1)
	assert.Equal(t, "Döner Kebab", sections[0].Items[0].Name)
	mockItemRepo.AssertNotCalled(t, "FindByCategory", ctx, hidden.ID)
}

func TestMenuService_Popular_ClampsLimit(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockItemRepo := new(MockMenuItemRepository)
	service := NewMenuService(mockCategoryRepo, mockItemRepo)

	ctx := context.Background()
	mockItemRepo.On("FindPopular", ctx, 10).Return([]catalog.MenuItem{}, nil)

	_, err := service.Popular(ctx, -3)

	assert.NoError(t, err)
	mockItemRepo.AssertExpectations(t)
}
