package catalog

import (
	"time"

	"github.com/byserkan/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaucePolicy decides which sauce options a configurable item offers.
// It replaces the item-number special cases of the legacy storefront:
// the choice is made at content-authoring time, not hard-coded per ID.
type SaucePolicy string

const (
	SaucePolicyStandard      SaucePolicy = "standard"       // regular kebap sauces
	SaucePolicySaladDressing SaucePolicy = "salad_dressing" // specialty salads
	SaucePolicyPommes        SaucePolicy = "pommes"         // fries dips
	SaucePolicyBurger        SaucePolicy = "burger"         // burger variant of the standard list
	SaucePolicyNone          SaucePolicy = "none"           // no sauce step at all
)

// ItemSize is one selectable size of a menu item (e.g. pizza sizes)
type ItemSize struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// MenuItem represents one catalog entry. Capability flags and the sauce
// policy drive the item configuration flow; they are immutable from the
// customer's perspective and edited only through admin CRUD.
type MenuItem struct {
	shared.BaseAggregateRoot
	Number      int             `gorm:"not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Allergens   string          `gorm:"type:varchar(100)"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Sizes       []ItemSize      `gorm:"serializer:json"`
	SortOrder   int             `gorm:"not null;default:0"`
	OrderCount  int             `gorm:"not null;default:0"`

	IsPizza                  bool        `gorm:"not null;default:false"`
	IsPasta                  bool        `gorm:"not null;default:false"`
	IsWunschPizza            bool        `gorm:"not null;default:false"`
	IsSpezialitaet           bool        `gorm:"not null;default:false"`
	IsBeerSelection          bool        `gorm:"not null;default:false"`
	IsMeatSelection          bool        `gorm:"not null;default:false"`
	IsMultipleSauceSelection bool        `gorm:"not null;default:false"`
	HasSideDishSelection     bool        `gorm:"not null;default:false"`
	SaucePolicy              SaucePolicy `gorm:"type:varchar(20);not null;default:'standard'"`
	SkipsMeatSauceSteps      bool        `gorm:"not null;default:false"`
	HasSideDishStep          bool        `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a new menu item
func NewMenuItem(number int, name string, price decimal.Decimal) (*MenuItem, error) {
	if err := validateNumber(number); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	item := &MenuItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Name:              name,
		Price:             price,
		SaucePolicy:       SaucePolicyStandard,
	}

	item.AddDomainEvent(NewMenuItemCreatedEvent(item))

	return item, nil
}

// Update updates the item's basic information
func (m *MenuItem) Update(name, description string, price decimal.Decimal) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	m.Name = name
	m.Description = description
	m.Price = price
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMenuItemUpdatedEvent(m))

	return nil
}

// SetCategory assigns the item to a menu section
func (m *MenuItem) SetCategory(categoryID *uuid.UUID) {
	m.CategoryID = categoryID
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// SetSizes replaces the selectable size list
func (m *MenuItem) SetSizes(sizes []ItemSize) error {
	for _, s := range sizes {
		if s.Name == "" {
			return shared.NewDomainError("INVALID_SIZE", "Size name cannot be empty")
		}
		if s.Price.IsNegative() {
			return shared.NewDomainError("INVALID_SIZE", "Size price cannot be negative")
		}
	}
	m.Sizes = sizes
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

// SetAllergens sets the allergen code list
func (m *MenuItem) SetAllergens(allergens string) {
	m.Allergens = allergens
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// SetSortOrder sets the display order within the section
func (m *MenuItem) SetSortOrder(order int) {
	m.SortOrder = order
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// SetCapabilities replaces the configuration capability flags
func (m *MenuItem) SetCapabilities(caps Capabilities) error {
	switch caps.SaucePolicy {
	case SaucePolicyStandard, SaucePolicySaladDressing, SaucePolicyPommes, SaucePolicyBurger, SaucePolicyNone:
	case "":
		caps.SaucePolicy = SaucePolicyStandard
	default:
		return shared.NewDomainError("INVALID_SAUCE_POLICY", "Unknown sauce policy")
	}

	m.IsPizza = caps.IsPizza
	m.IsPasta = caps.IsPasta
	m.IsWunschPizza = caps.IsWunschPizza
	m.IsSpezialitaet = caps.IsSpezialitaet
	m.IsBeerSelection = caps.IsBeerSelection
	m.IsMeatSelection = caps.IsMeatSelection
	m.IsMultipleSauceSelection = caps.IsMultipleSauceSelection
	m.HasSideDishSelection = caps.HasSideDishSelection
	m.SaucePolicy = caps.SaucePolicy
	m.SkipsMeatSauceSteps = caps.SkipsMeatSauceSteps
	m.HasSideDishStep = caps.HasSideDishStep
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

// Capabilities bundles the configuration flags for SetCapabilities
type Capabilities struct {
	IsPizza                  bool
	IsPasta                  bool
	IsWunschPizza            bool
	IsSpezialitaet           bool
	IsBeerSelection          bool
	IsMeatSelection          bool
	IsMultipleSauceSelection bool
	HasSideDishSelection     bool
	SaucePolicy              SaucePolicy
	SkipsMeatSauceSteps      bool
	HasSideDishStep          bool
}

// RecordOrder increments the popularity counter
func (m *MenuItem) RecordOrder(quantity int) {
	if quantity > 0 {
		m.OrderCount += quantity
	}
}

// IsConfigurable reports whether the item needs the configuration flow
// before it can be added to the cart
func (m *MenuItem) IsConfigurable() bool {
	if len(m.Sizes) > 0 || m.IsWunschPizza || m.IsPizza || m.IsPasta ||
		m.IsBeerSelection || m.IsMeatSelection {
		return true
	}
	return m.IsSpezialitaet && m.SaucePolicy != SaucePolicyNone
}

// WalksMeatWizard reports whether the item goes through the multi-step
// meat/sauce/exclusion wizard instead of the single-step form
func (m *MenuItem) WalksMeatWizard() bool {
	return m.IsMeatSelection && !m.IsPizza && !m.SkipsMeatSauceSteps
}

// BasePriceFor returns the price for a chosen size, or the item price
// when no size is selected
func (m *MenuItem) BasePriceFor(size *ItemSize) decimal.Decimal {
	if size != nil {
		return size.Price
	}
	return m.Price
}

// validateNumber validates the customer-facing item number
func validateNumber(number int) error {
	if number <= 0 {
		return shared.NewDomainError("INVALID_NUMBER", "Item number must be positive")
	}
	return nil
}

// validateItemName validates the item name
func validateItemName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}
