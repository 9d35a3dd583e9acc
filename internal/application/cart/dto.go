package cart

import (
	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SizeRequest is the chosen size of a configurable item
type SizeRequest struct {
	Name        string          `json:"name" binding:"required,max=50"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description" binding:"max=100"`
}

// SelectionsRequest is the full modifier set of one add-to-cart
type SelectionsRequest struct {
	Size        *SizeRequest `json:"size"`
	Ingredients []string     `json:"ingredients" binding:"max=10,dive,max=50"`
	Extras      []string     `json:"extras" binding:"max=10,dive,max=50"`
	PastaType   string       `json:"pasta_type" binding:"max=50"`
	Sauce       string       `json:"sauce" binding:"max=100"`
	Exclusions  []string     `json:"exclusions" binding:"max=10,dive,max=50"`
	SideDish    string       `json:"side_dish" binding:"max=50"`
	Drink       string       `json:"drink" binding:"max=50"`
}

// AddLineRequest adds one unit of a configured item to the cart
type AddLineRequest struct {
	ItemID     uuid.UUID         `json:"item_id" binding:"required"`
	Selections SelectionsRequest `json:"selections"`
}

// RemoveLineRequest drops the line matching the item and modifier set
type RemoveLineRequest struct {
	ItemID     uuid.UUID         `json:"item_id" binding:"required"`
	Selections SelectionsRequest `json:"selections"`
}

// UpdateQuantityRequest replaces the matching line's quantity
type UpdateQuantityRequest struct {
	ItemID     uuid.UUID         `json:"item_id" binding:"required"`
	Selections SelectionsRequest `json:"selections"`
	Quantity   int               `json:"quantity" binding:"min=0,max=99"`
}

// LineResponse is one cart line in API responses
type LineResponse struct {
	Key        string              `json:"key"`
	ItemID     uuid.UUID           `json:"item_id"`
	Number     int                 `json:"number"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	Selections cart.ItemSelections `json:"selections"`
	UnitPrice  decimal.Decimal     `json:"unit_price"`
	LineTotal  decimal.Decimal     `json:"line_total"`
}

// CartResponse is the whole cart in API responses
type CartResponse struct {
	Lines      []LineResponse  `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

func (r SelectionsRequest) toDomain() cart.ItemSelections {
	sel := cart.ItemSelections{
		SelectedIngredients: r.Ingredients,
		SelectedExtras:      r.Extras,
		SelectedPastaType:   r.PastaType,
		SelectedSauce:       r.Sauce,
		SelectedExclusions:  r.Exclusions,
		SelectedSideDish:    r.SideDish,
		SelectedDrink:       r.Drink,
	}
	if r.Size != nil {
		sel.SelectedSize = &catalog.ItemSize{
			Name:        r.Size.Name,
			Price:       r.Size.Price,
			Description: r.Size.Description,
		}
	}
	return sel
}

// ToCartResponse converts a domain cart to its response DTO
func ToCartResponse(c *cart.Cart) *CartResponse {
	lines := make([]LineResponse, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = LineResponse{
			Key:        line.Key(),
			ItemID:     line.Item.ID,
			Number:     line.Item.Number,
			Name:       line.Item.Name,
			Quantity:   line.Quantity,
			Selections: line.ItemSelections,
			UnitPrice:  line.LinePrice(),
			LineTotal:  line.LinePrice().Mul(decimal.NewFromInt(int64(line.Quantity))),
		}
	}
	return &CartResponse{
		Lines:      lines,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Subtotal:   c.Subtotal(),
	}
}
