package catalog

import (
	"context"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/selection"
	"github.com/google/uuid"
)

// MenuService assembles the customer-facing menu
type MenuService struct {
	categoryRepo catalog.CategoryRepository
	itemRepo     catalog.MenuItemRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(
	categoryRepo catalog.CategoryRepository,
	itemRepo catalog.MenuItemRepository,
) *MenuService {
	return &MenuService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// Sections returns the active menu sections joined with their items,
// both in display order. Empty sections are omitted.
func (s *MenuService) Sections(ctx context.Context) ([]MenuSectionResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sections := make([]MenuSectionResponse, 0, len(categories))
	for i := range categories {
		cat := categories[i]
		if !cat.IsActive() {
			continue
		}

		items, err := s.itemRepo.FindByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}

		itemResponses := make([]MenuItemResponse, len(items))
		for j, item := range items {
			itemResponses[j] = *ToMenuItemResponse(&item)
		}

		sections = append(sections, MenuSectionResponse{
			Category: *ToCategoryResponse(&cat),
			Items:    itemResponses,
		})
	}

	return sections, nil
}

// ItemOptions returns the configuration surface of one item: which wizard
// steps it walks and the option lists each step offers. The storefront
// renders the selection dialog from this instead of hardcoding the lists.
func (s *MenuService) ItemOptions(ctx context.Context, id uuid.UUID) (*ItemOptionsResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flow := selection.NewFlow(item)

	resp := &ItemOptionsResponse{
		ItemID:         item.ID,
		WalksWizard:    item.WalksMeatWizard(),
		Steps:          flowSteps(item),
		Sizes:          item.Sizes,
		SauceOptions:   flow.SauceOptions(),
		MaxIngredients: catalog.MaxWunschIngredients,
		ExtraSurcharge: catalog.ExtraSurcharge,
		BasePrice:      flow.Price(),
	}

	if item.IsMeatSelection {
		resp.MeatTypes = catalog.MeatTypes
	}
	if item.WalksMeatWizard() {
		resp.ExclusionOptions = catalog.SaladExclusionOptions
	}
	if item.HasSideDishStep || item.HasSideDishSelection {
		resp.SideDishOptions = catalog.SideDishOptions
	}
	if item.IsPasta {
		resp.PastaTypes = catalog.PastaTypes
	}
	if item.IsBeerSelection {
		resp.BeerTypes = catalog.BeerTypes
	}
	if item.IsWunschPizza {
		resp.Ingredients = make([]IngredientResponse, len(catalog.WunschPizzaIngredients))
		for i, ing := range catalog.WunschPizzaIngredients {
			resp.Ingredients[i] = IngredientResponse{Name: ing.Name, Price: ing.Price}
		}
	}

	return resp, nil
}

// flowSteps lists the wizard states an item passes through before the
// selection is complete
func flowSteps(item *catalog.MenuItem) []string {
	if !item.WalksMeatWizard() {
		return []string{string(selection.StepComplete)}
	}
	steps := []string{
		string(selection.StepMeat),
		string(selection.StepSauce),
		string(selection.StepExclusions),
	}
	if item.HasSideDishStep {
		steps = append(steps, string(selection.StepSideDish))
	}
	return append(steps, string(selection.StepComplete))
}

// Popular returns the most ordered items, up to limit
func (s *MenuService) Popular(ctx context.Context, limit int) ([]MenuItemResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	items, err := s.itemRepo.FindPopular(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, len(items))
	for i, item := range items {
		responses[i] = *ToMenuItemResponse(&item)
	}

	return responses, nil
}
