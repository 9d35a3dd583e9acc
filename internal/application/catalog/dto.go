package catalog

import (
	"time"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a menu section
type CreateCategoryRequest struct {
	Slug        string `json:"slug" binding:"required,min=1,max=50,slug"`
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   *int   `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a menu section
type UpdateCategoryRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   *int   `json:"sort_order"`
}

// CategoryResponse represents a menu section in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CapabilitiesRequest carries the configuration capability flags
type CapabilitiesRequest struct {
	IsPizza                  bool   `json:"is_pizza"`
	IsPasta                  bool   `json:"is_pasta"`
	IsWunschPizza            bool   `json:"is_wunsch_pizza"`
	IsSpezialitaet           bool   `json:"is_spezialitaet"`
	IsBeerSelection          bool   `json:"is_beer_selection"`
	IsMeatSelection          bool   `json:"is_meat_selection"`
	IsMultipleSauceSelection bool   `json:"is_multiple_sauce_selection"`
	HasSideDishSelection     bool   `json:"has_side_dish_selection"`
	SaucePolicy              string `json:"sauce_policy" binding:"omitempty,oneof=standard salad_dressing pommes burger none"`
	SkipsMeatSauceSteps      bool   `json:"skips_meat_sauce_steps"`
	HasSideDishStep          bool   `json:"has_side_dish_step"`
}

func (r CapabilitiesRequest) toDomain() catalog.Capabilities {
	return catalog.Capabilities{
		IsPizza:                  r.IsPizza,
		IsPasta:                  r.IsPasta,
		IsWunschPizza:            r.IsWunschPizza,
		IsSpezialitaet:           r.IsSpezialitaet,
		IsBeerSelection:          r.IsBeerSelection,
		IsMeatSelection:          r.IsMeatSelection,
		IsMultipleSauceSelection: r.IsMultipleSauceSelection,
		HasSideDishSelection:     r.HasSideDishSelection,
		SaucePolicy:              catalog.SaucePolicy(r.SaucePolicy),
		SkipsMeatSauceSteps:      r.SkipsMeatSauceSteps,
		HasSideDishStep:          r.HasSideDishStep,
	}
}

// ItemSizeRequest is one selectable size of a menu item
type ItemSizeRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=50"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description" binding:"max=100"`
}

// CreateMenuItemRequest represents a request to create a menu item
type CreateMenuItemRequest struct {
	Number       int                  `json:"number" binding:"required,min=1"`
	Name         string               `json:"name" binding:"required,min=1,max=200"`
	Description  string               `json:"description" binding:"max=2000"`
	Price        decimal.Decimal      `json:"price" binding:"required"`
	CategoryID   *uuid.UUID           `json:"category_id"`
	Allergens    string               `json:"allergens" binding:"max=500"`
	Sizes        []ItemSizeRequest    `json:"sizes" binding:"dive"`
	SortOrder    *int                 `json:"sort_order"`
	Capabilities *CapabilitiesRequest `json:"capabilities"`
}

// UpdateMenuItemRequest represents a request to update a menu item
type UpdateMenuItemRequest struct {
	Name         string               `json:"name" binding:"required,min=1,max=200"`
	Description  string               `json:"description" binding:"max=2000"`
	Price        decimal.Decimal      `json:"price" binding:"required"`
	CategoryID   *uuid.UUID           `json:"category_id"`
	Allergens    string               `json:"allergens" binding:"max=500"`
	Sizes        []ItemSizeRequest    `json:"sizes" binding:"dive"`
	SortOrder    *int                 `json:"sort_order"`
	Capabilities *CapabilitiesRequest `json:"capabilities"`
}

// MenuItemResponse represents a menu item in API responses
type MenuItemResponse struct {
	ID                       uuid.UUID          `json:"id"`
	Number                   int                `json:"number"`
	Name                     string             `json:"name"`
	Description              string             `json:"description"`
	Price                    decimal.Decimal    `json:"price"`
	CategoryID               *uuid.UUID         `json:"category_id"`
	Allergens                string             `json:"allergens"`
	Sizes                    []catalog.ItemSize `json:"sizes"`
	SortOrder                int                `json:"sort_order"`
	OrderCount               int                `json:"order_count"`
	IsPizza                  bool               `json:"is_pizza"`
	IsPasta                  bool               `json:"is_pasta"`
	IsWunschPizza            bool               `json:"is_wunsch_pizza"`
	IsSpezialitaet           bool               `json:"is_spezialitaet"`
	IsBeerSelection          bool               `json:"is_beer_selection"`
	IsMeatSelection          bool               `json:"is_meat_selection"`
	IsMultipleSauceSelection bool               `json:"is_multiple_sauce_selection"`
	HasSideDishSelection     bool               `json:"has_side_dish_selection"`
	SaucePolicy              string             `json:"sauce_policy"`
	SkipsMeatSauceSteps      bool               `json:"skips_meat_sauce_steps"`
	HasSideDishStep          bool               `json:"has_side_dish_step"`
	IsConfigurable           bool               `json:"is_configurable"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

// MenuSectionResponse is one storefront section: a category joined with
// its items in display order
type MenuSectionResponse struct {
	Category CategoryResponse   `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

// IngredientResponse is one build-your-own pizza topping with its surcharge
type IngredientResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ItemOptionsResponse describes how an item is configured before it can
// be added to the cart: the wizard steps it walks and the option lists
// each step offers. Lists the item's capabilities don't call for are empty.
type ItemOptionsResponse struct {
	ItemID           uuid.UUID            `json:"item_id"`
	WalksWizard      bool                 `json:"walks_wizard"`
	Steps            []string             `json:"steps"`
	Sizes            []catalog.ItemSize   `json:"sizes"`
	MeatTypes        []string             `json:"meat_types"`
	SauceOptions     []string             `json:"sauce_options"`
	ExclusionOptions []string             `json:"exclusion_options"`
	SideDishOptions  []string             `json:"side_dish_options"`
	PastaTypes       []string             `json:"pasta_types"`
	BeerTypes        []string             `json:"beer_types"`
	Ingredients      []IngredientResponse `json:"ingredients"`
	MaxIngredients   int                  `json:"max_ingredients"`
	ExtraSurcharge   decimal.Decimal      `json:"extra_surcharge"`
	BasePrice        decimal.Decimal      `json:"base_price"`
}

// RepairResult summarizes a category dedup run
type RepairResult struct {
	RemovedCategories int `json:"removed_categories"`
	ReassignedSlugs   int `json:"reassigned_slugs"`
}

// ToCategoryResponse converts a domain category to its response DTO
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToMenuItemResponse converts a domain menu item to its response DTO
func ToMenuItemResponse(m *catalog.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:                       m.ID,
		Number:                   m.Number,
		Name:                     m.Name,
		Description:              m.Description,
		Price:                    m.Price,
		CategoryID:               m.CategoryID,
		Allergens:                m.Allergens,
		Sizes:                    m.Sizes,
		SortOrder:                m.SortOrder,
		OrderCount:               m.OrderCount,
		IsPizza:                  m.IsPizza,
		IsPasta:                  m.IsPasta,
		IsWunschPizza:            m.IsWunschPizza,
		IsSpezialitaet:           m.IsSpezialitaet,
		IsBeerSelection:          m.IsBeerSelection,
		IsMeatSelection:          m.IsMeatSelection,
		IsMultipleSauceSelection: m.IsMultipleSauceSelection,
		HasSideDishSelection:     m.HasSideDishSelection,
		SaucePolicy:              string(m.SaucePolicy),
		SkipsMeatSauceSteps:      m.SkipsMeatSauceSteps,
		HasSideDishStep:          m.HasSideDishStep,
		IsConfigurable:           m.IsConfigurable(),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
