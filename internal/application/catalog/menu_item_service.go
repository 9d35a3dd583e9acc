package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MenuItemService handles menu item business operations
type MenuItemService struct {
	itemRepo     catalog.MenuItemRepository
	categoryRepo catalog.CategoryRepository
}

// NewMenuItemService creates a new MenuItemService
func NewMenuItemService(
	itemRepo catalog.MenuItemRepository,
	categoryRepo catalog.CategoryRepository,
) *MenuItemService {
	return &MenuItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new menu item
func (s *MenuItemService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	exists, err := s.itemRepo.ExistsByNumber(ctx, req.Number, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_NUMBER", "An item with this number already exists")
	}

	item, err := catalog.NewMenuItem(req.Number, req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.applyDetails(ctx, item, req.Description, req.CategoryID, req.Allergens, req.Sizes, req.SortOrder, req.Capabilities); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// GetByID retrieves a menu item by ID
func (s *MenuItemService) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// GetByNumber retrieves a menu item by its customer-facing number
func (s *MenuItemService) GetByNumber(ctx context.Context, number int) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// List retrieves all menu items, optionally filtered by a search term
func (s *MenuItemService) List(ctx context.Context, search string) ([]MenuItemResponse, error) {
	filter := shared.Filter{Search: search}

	items, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = *ToMenuItemResponse(&item)
	}

	return responses, nil
}

// Update updates an existing menu item
func (s *MenuItemService) Update(ctx context.Context, id uuid.UUID, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Name, req.Description, req.Price); err != nil {
		return nil, err
	}

	if err := s.applyDetails(ctx, item, req.Description, req.CategoryID, req.Allergens, req.Sizes, req.SortOrder, req.Capabilities); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return ToMenuItemResponse(item), nil
}

// Duplicate copies an item under the next free number. The copy starts
// with a fresh popularity counter.
func (s *MenuItemService) Duplicate(ctx context.Context, id uuid.UUID) (*MenuItemResponse, error) {
	source, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	number := source.Number + 1
	for {
		exists, err := s.itemRepo.ExistsByNumber(ctx, number, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
		number++
	}

	clone, err := catalog.NewMenuItem(number, fmt.Sprintf("%s (Kopie)", source.Name), source.Price)
	if err != nil {
		return nil, err
	}
	if err := clone.Update(clone.Name, source.Description, source.Price); err != nil {
		return nil, err
	}
	clone.SetCategory(source.CategoryID)
	clone.SetAllergens(source.Allergens)
	clone.SetSortOrder(source.SortOrder)
	if err := clone.SetSizes(source.Sizes); err != nil {
		return nil, err
	}
	if err := clone.SetCapabilities(capabilitiesOf(source)); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, clone); err != nil {
		return nil, err
	}

	return ToMenuItemResponse(clone), nil
}

// Reorder rewrites the sort order of the given items to match the ID
// sequence
func (s *MenuItemService) Reorder(ctx context.Context, ids []uuid.UUID) error {
	items := make([]*catalog.MenuItem, 0, len(ids))
	for position, id := range ids {
		item, err := s.itemRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		item.SetSortOrder(position)
		items = append(items, item)
	}
	return s.itemRepo.SaveBatch(ctx, items)
}

// Delete deletes a menu item
func (s *MenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.itemRepo.Delete(ctx, id)
}

// applyDetails applies the shared optional fields of create and update
// requests to an item
func (s *MenuItemService) applyDetails(
	ctx context.Context,
	item *catalog.MenuItem,
	description string,
	categoryID *uuid.UUID,
	allergens string,
	sizes []ItemSizeRequest,
	sortOrder *int,
	capabilities *CapabilitiesRequest,
) error {
	if description != "" && item.Description != description {
		if err := item.Update(item.Name, description, item.Price); err != nil {
			return err
		}
	}

	if categoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return err
		}
	}
	item.SetCategory(categoryID)

	item.SetAllergens(allergens)

	domainSizes := make([]catalog.ItemSize, len(sizes))
	for i, size := range sizes {
		domainSizes[i] = catalog.ItemSize{
			Name:        size.Name,
			Price:       size.Price,
			Description: size.Description,
		}
	}
	if err := item.SetSizes(domainSizes); err != nil {
		return err
	}

	if sortOrder != nil {
		item.SetSortOrder(*sortOrder)
	}

	if capabilities != nil {
		if err := item.SetCapabilities(capabilities.toDomain()); err != nil {
			return err
		}
	}

	return nil
}

func capabilitiesOf(item *catalog.MenuItem) catalog.Capabilities {
	return catalog.Capabilities{
		IsPizza:                  item.IsPizza,
		IsPasta:                  item.IsPasta,
		IsWunschPizza:            item.IsWunschPizza,
		IsSpezialitaet:           item.IsSpezialitaet,
		IsBeerSelection:          item.IsBeerSelection,
		IsMeatSelection:          item.IsMeatSelection,
		IsMultipleSauceSelection: item.IsMultipleSauceSelection,
		HasSideDishSelection:     item.HasSideDishSelection,
		SaucePolicy:              item.SaucePolicy,
		SkipsMeatSauceSteps:      item.SkipsMeatSauceSteps,
		HasSideDishStep:          item.HasSideDishStep,
	}
}
