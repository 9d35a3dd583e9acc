package persistence

import (
	"context"
	"errors"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements catalog.MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindByID finds a menu item by its ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByNumber finds a menu item by its customer-facing number
func (r *GormMenuItemRepository) FindByNumber(ctx context.Context, number int) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).
		Where("number = ?", number).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all menu items matching the filter
func (r *GormMenuItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	query := r.db.WithContext(ctx).Model(&catalog.MenuItem{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	if err := query.Order("sort_order ASC, number ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCategory finds all items in a menu section
func (r *GormMenuItemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC, number ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindPopular finds the top-n items by order count
func (r *GormMenuItemRepository) FindPopular(ctx context.Context, limit int) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	if err := r.db.WithContext(ctx).
		Where("order_count > 0").
		Order("order_count DESC, number ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByNumber checks if an item with the given number exists,
// excluding the given item ID
func (r *GormMenuItemRepository) ExistsByNumber(ctx context.Context, number int, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.MenuItem{}).Where("number = ?", number)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a menu item
func (r *GormMenuItemRepository) Save(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveBatch creates or updates multiple menu items
func (r *GormMenuItemRepository) SaveBatch(ctx context.Context, items []*catalog.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Save(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a menu item
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ReassignCategory moves all items from one category to another
func (r *GormMenuItemRepository) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&catalog.MenuItem{}).
		Where("category_id = ?", fromCategoryID).
		Update("category_id", toCategoryID).Error
}
