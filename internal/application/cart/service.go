package cart

import (
	"context"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/shared"
)

// CartService handles the session cart operations
type CartService struct {
	store    cart.Store
	itemRepo catalog.MenuItemRepository
}

// NewCartService creates a new CartService
func NewCartService(store cart.Store, itemRepo catalog.MenuItemRepository) *CartService {
	return &CartService{
		store:    store,
		itemRepo: itemRepo,
	}
}

// View returns the session's cart with computed prices
func (s *CartService) View(ctx context.Context, sessionID string) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return ToCartResponse(current), nil
}

// Add merges one unit of the configured item into the session's cart.
// The line records a snapshot of the item, so later catalog edits do not
// change what was added.
func (s *CartService) Add(ctx context.Context, sessionID string, req AddLineRequest) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}

	item, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current.AddItem(cart.SnapshotOf(item), req.Selections.toDomain())

	if err := s.store.Save(ctx, sessionID, current); err != nil {
		return nil, err
	}

	return ToCartResponse(current), nil
}

// Remove drops the line matching the item and modifier set
func (s *CartService) Remove(ctx context.Context, sessionID string, req RemoveLineRequest) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current.RemoveItem(req.ItemID, req.Selections.toDomain())

	if err := s.store.Save(ctx, sessionID, current); err != nil {
		return nil, err
	}

	return ToCartResponse(current), nil
}

// UpdateQuantity replaces the matching line's quantity; zero removes it
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, req UpdateQuantityRequest) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current.UpdateQuantity(req.ItemID, req.Selections.toDomain(), req.Quantity)

	if err := s.store.Save(ctx, sessionID, current); err != nil {
		return nil, err
	}

	return ToCartResponse(current), nil
}

// Clear discards the session's cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return shared.NewDomainError("MISSING_SESSION", "Session ID is required")
	}
	return s.store.Delete(ctx, sessionID)
}
