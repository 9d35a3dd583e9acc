package catalog

import (
	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeCategory = "Category"
	AggregateTypeMenuItem = "MenuItem"
)

// Event type constants
const (
	EventTypeCategoryCreated = "CategoryCreated"
	EventTypeCategoryUpdated = "CategoryUpdated"
	EventTypeMenuItemCreated = "MenuItemCreated"
	EventTypeMenuItemUpdated = "MenuItemUpdated"
	EventTypeMenuItemDeleted = "MenuItemDeleted"
)

// CategoryCreatedEvent is published when a new category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	CategoryID uuid.UUID `json:"category_id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, AggregateTypeCategory, category.ID),
		CategoryID:      category.ID,
		Slug:            category.Slug,
		Title:           category.Title,
	}
}

// CategoryUpdatedEvent is published when a category is updated
type CategoryUpdatedEvent struct {
	shared.BaseDomainEvent
	CategoryID uuid.UUID `json:"category_id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
}

// NewCategoryUpdatedEvent creates a new CategoryUpdatedEvent
func NewCategoryUpdatedEvent(category *Category) *CategoryUpdatedEvent {
	return &CategoryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryUpdated, AggregateTypeCategory, category.ID),
		CategoryID:      category.ID,
		Slug:            category.Slug,
		Title:           category.Title,
	}
}

// MenuItemCreatedEvent is published when a new menu item is created
type MenuItemCreatedEvent struct {
	shared.BaseDomainEvent
	ItemID uuid.UUID `json:"item_id"`
	Number int       `json:"number"`
	Name   string    `json:"name"`
}

// NewMenuItemCreatedEvent creates a new MenuItemCreatedEvent
func NewMenuItemCreatedEvent(item *MenuItem) *MenuItemCreatedEvent {
	return &MenuItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMenuItemCreated, AggregateTypeMenuItem, item.ID),
		ItemID:          item.ID,
		Number:          item.Number,
		Name:            item.Name,
	}
}

// MenuItemUpdatedEvent is published when a menu item is updated
type MenuItemUpdatedEvent struct {
	shared.BaseDomainEvent
	ItemID uuid.UUID `json:"item_id"`
	Number int       `json:"number"`
	Name   string    `json:"name"`
}

// NewMenuItemUpdatedEvent creates a new MenuItemUpdatedEvent
func NewMenuItemUpdatedEvent(item *MenuItem) *MenuItemUpdatedEvent {
	return &MenuItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMenuItemUpdated, AggregateTypeMenuItem, item.ID),
		ItemID:          item.ID,
		Number:          item.Number,
		Name:            item.Name,
	}
}
