package catalog

import (
	"context"
	"errors"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles menu section business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	itemRepo     catalog.MenuItemRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	itemRepo catalog.MenuItemRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// Create creates a new menu section
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	existing, err := s.categoryRepo.FindBySlug(ctx, req.Slug)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}

	category, err := catalog.NewCategory(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := category.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}

	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a menu section by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// List retrieves all menu sections in display order
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = *ToCategoryResponse(&cat)
	}

	return responses, nil
}

// Update updates a menu section
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Title, req.Description); err != nil {
		return nil, err
	}

	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Reorder rewrites the sort order of all sections to match the given
// ID sequence
func (s *CategoryService) Reorder(ctx context.Context, ids []uuid.UUID) error {
	for position, id := range ids {
		category, err := s.categoryRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		category.SetSortOrder(position)
		if err := s.categoryRepo.Save(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

// Activate shows a section on the storefront
func (s *CategoryService) Activate(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Activate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Deactivate hides a section from the storefront
func (s *CategoryService) Deactivate(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete deletes a menu section. Sections that still hold items cannot
// be deleted; their items must be moved or removed first.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	items, err := s.itemRepo.FindByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return shared.NewDomainError("HAS_ITEMS", "Cannot delete category with associated items")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// RepairDuplicateSlugs collapses sections sharing a slug into the oldest
// one: items of the newer duplicates are moved to the survivor and the
// duplicates are deleted.
func (s *CategoryService) RepairDuplicateSlugs(ctx context.Context) (*RepairResult, error) {
	duplicates, err := s.categoryRepo.FindDuplicateSlugs(ctx)
	if err != nil {
		return nil, err
	}

	result := &RepairResult{}
	var survivor *catalog.Category

	for i := range duplicates {
		cat := duplicates[i]
		if survivor == nil || survivor.Slug != cat.Slug {
			// rows are ordered slug asc, created_at asc, so the first
			// row of each slug group is the oldest and survives
			survivor = &cat
			result.ReassignedSlugs++
			continue
		}

		if err := s.itemRepo.ReassignCategory(ctx, cat.ID, survivor.ID); err != nil {
			return nil, err
		}
		if err := s.categoryRepo.Delete(ctx, cat.ID); err != nil {
			return nil, err
		}
		result.RemovedCategories++
	}

	return result, nil
}
