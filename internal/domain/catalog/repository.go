package catalog

import (
	"context"

	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindBySlug finds a category by its slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll finds all categories ordered by sort order
	FindAll(ctx context.Context) ([]Category, error)

	// FindDuplicateSlugs finds all categories whose slug occurs more
	// than once, ordered by slug then creation time ascending
	FindDuplicateSlugs(ctx context.Context) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository defines the interface for menu item persistence
type MenuItemRepository interface {
	// FindByID finds a menu item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)

	// FindByNumber finds a menu item by its customer-facing number
	FindByNumber(ctx context.Context, number int) (*MenuItem, error)

	// FindAll finds all menu items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]MenuItem, error)

	// FindByCategory finds all items in a menu section
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]MenuItem, error)

	// FindPopular finds the top-n items by order count
	FindPopular(ctx context.Context, limit int) ([]MenuItem, error)

	// ExistsByNumber checks if an item with the given number exists,
	// excluding the given item ID (uuid.Nil to check all)
	ExistsByNumber(ctx context.Context, number int, excludeID uuid.UUID) (bool, error)

	// Save creates or updates a menu item
	Save(ctx context.Context, item *MenuItem) error

	// SaveBatch creates or updates multiple menu items
	SaveBatch(ctx context.Context, items []*MenuItem) error

	// Delete deletes a menu item
	Delete(ctx context.Context, id uuid.UUID) error

	// ReassignCategory moves all items from one category to another
	ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) error
}
