package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemSnapshot is the slice of a menu item a cart line needs to survive
// catalog edits between add-to-cart and checkout
type ItemSnapshot struct {
	ID              uuid.UUID       `json:"id"`
	Number          int             `json:"number"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	IsMeatSelection bool            `json:"isMeatSelection"`
	IsPizza         bool            `json:"isPizza"`
	IsPasta         bool            `json:"isPasta"`
}

// SnapshotOf captures the cart-relevant fields of a menu item
func SnapshotOf(item *catalog.MenuItem) ItemSnapshot {
	return ItemSnapshot{
		ID:              item.ID,
		Number:          item.Number,
		Name:            item.Name,
		Price:           item.Price,
		IsMeatSelection: item.IsMeatSelection,
		IsPizza:         item.IsPizza,
		IsPasta:         item.IsPasta,
	}
}

// ItemSelections is the full set of modifiers chosen for one add-to-cart.
// It is a value type: its entire content participates in line identity.
type ItemSelections struct {
	SelectedSize        *catalog.ItemSize `json:"selectedSize,omitempty"`
	SelectedIngredients []string          `json:"selectedIngredients"`
	SelectedExtras      []string          `json:"selectedExtras"`
	SelectedPastaType   string            `json:"selectedPastaType,omitempty"`
	SelectedSauce       string            `json:"selectedSauce,omitempty"`
	SelectedExclusions  []string          `json:"selectedExclusions"`
	SelectedSideDish    string            `json:"selectedSideDish,omitempty"`
	SelectedDrink       string            `json:"selectedDrink,omitempty"`
}

// normalize replaces nil list selections with empty slices so downstream
// consumers can iterate safely
func (s ItemSelections) normalize() ItemSelections {
	if s.SelectedIngredients == nil {
		s.SelectedIngredients = []string{}
	}
	if s.SelectedExtras == nil {
		s.SelectedExtras = []string{}
	}
	if s.SelectedExclusions == nil {
		s.SelectedExclusions = []string{}
	}
	return s
}

// LineKey builds the identity of a cart line from the item and the full
// modifier set. List-valued selections are sorted before joining so that
// selection order never creates distinct identities for the same
// effective configuration.
func LineKey(itemID uuid.UUID, sel ItemSelections) string {
	parts := []string{
		itemID.String(),
		sizeName(sel.SelectedSize),
		sortedOrNone(sel.SelectedIngredients),
		sortedOrNone(sel.SelectedExtras),
		orNone(sel.SelectedPastaType),
		orNone(sel.SelectedSauce),
		sortedOrNone(sel.SelectedExclusions),
		orNone(sel.SelectedSideDish),
		orNone(sel.SelectedDrink),
	}
	return strings.Join(parts, "-")
}

func sizeName(size *catalog.ItemSize) string {
	if size == nil || size.Name == "" {
		return "default"
	}
	return size.Name
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

func sortedOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// Line is one cart entry, uniquely identified by item plus modifier set
type Line struct {
	Item     ItemSnapshot `json:"menuItem"`
	Quantity int          `json:"quantity"`
	ItemSelections
}

// Key returns the line's identity
func (l Line) Key() string {
	return LineKey(l.Item.ID, l.ItemSelections)
}

// BasePrice returns the size price when a size is chosen, else the item price
func (l Line) BasePrice() decimal.Decimal {
	if l.SelectedSize != nil {
		return l.SelectedSize.Price
	}
	return l.Item.Price
}

// LinePrice is the checkout price of a single unit: base price plus the
// flat surcharge per selected extra
func (l Line) LinePrice() decimal.Decimal {
	extras := catalog.ExtraSurcharge.Mul(decimal.NewFromInt(int64(len(l.SelectedExtras))))
	return l.BasePrice().Add(extras)
}

// Cart is the authoritative collection of in-progress order lines.
// All mutation goes through its operations so the merge-by-key invariant
// holds regardless of call order.
type Cart struct {
	Lines []Line `json:"items"`
}

// New returns an empty cart
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddItem merges one unit of the given configuration into the cart:
// an existing line with the same key gains quantity, otherwise a new
// line with quantity 1 is appended.
func (c *Cart) AddItem(item ItemSnapshot, sel ItemSelections) {
	sel = sel.normalize()
	key := LineKey(item.ID, sel)
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{Item: item, Quantity: 1, ItemSelections: sel})
}

// RemoveItem drops the line exactly matching the item and modifier set
func (c *Cart) RemoveItem(itemID uuid.UUID, sel ItemSelections) {
	key := LineKey(itemID, sel.normalize())
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.Key() != key {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// UpdateQuantity replaces the matching line's quantity verbatim; a
// quantity of zero or less removes the line
func (c *Cart) UpdateQuantity(itemID uuid.UUID, sel ItemSelections, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID, sel)
		return
	}
	key := LineKey(itemID, sel.normalize())
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// TotalItems is the sum of quantities across all lines
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the storefront badge total: size-or-base price times
// quantity, extras surcharges excluded. Checkout money uses Subtotal.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.BasePrice().Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Subtotal is the checkout total of all lines including extras surcharges
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.LinePrice().Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// FindLine returns the line with the given key, or nil
func (c *Cart) FindLine(key string) *Line {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			return &c.Lines[i]
		}
	}
	return nil
}

// String renders a compact debug form, e.g. "3 lines / 5 items"
func (c *Cart) String() string {
	return strconv.Itoa(len(c.Lines)) + " lines / " + strconv.Itoa(c.TotalItems()) + " items"
}
