package selection

import (
	"strings"

	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Step is one state of the item configuration wizard
type Step string

const (
	StepMeat       Step = "meat"
	StepSauce      Step = "sauce"
	StepExclusions Step = "exclusions"
	StepSideDish   Step = "sidedish"
	StepComplete   Step = "complete"
)

// Flow drives the per-item configuration wizard. Meat-selection items
// (except pizzas and items tagged to skip the steps) walk
// meat → sauce → exclusions, plus a side-dish step for items tagged with
// one; every other item resolves its full selection in a single step.
// The zero value is not usable; construct with NewFlow.
type Flow struct {
	item *catalog.MenuItem
	step Step

	selectedSize        *catalog.ItemSize
	selectedIngredients []string
	selectedExtras      []string
	selectedPastaType   string
	selectedSauce       string
	selectedMeatType    string
	selectedSauces      []string
	selectedExclusions  []string
	selectedSideDish    string
	selectedDrink       string
}

// NewFlow starts a configuration flow for an item, preselecting the
// defaults the storefront shows: the first size, pasta type, meat type
// and side dish where the item offers them.
func NewFlow(item *catalog.MenuItem) *Flow {
	f := &Flow{item: item, step: StepMeat}
	if len(item.Sizes) > 0 {
		f.selectedSize = &item.Sizes[0]
	}
	if item.IsPasta {
		f.selectedPastaType = catalog.PastaTypes[0]
	}
	if item.IsMeatSelection {
		f.selectedMeatType = catalog.MeatTypes[0]
	}
	if item.HasSideDishStep || item.HasSideDishSelection {
		f.selectedSideDish = catalog.SideDishOptions[0]
	}
	return f
}

// Step returns the wizard's current state
func (f *Flow) Step() Step {
	return f.step
}

// Item returns the item being configured
func (f *Flow) Item() *catalog.MenuItem {
	return f.item
}

// SauceOptions returns the sauce list for the item's sauce policy
func (f *Flow) SauceOptions() []string {
	return catalog.SaucesFor(f.item.SaucePolicy)
}

// SelectSize chooses a size
func (f *Flow) SelectSize(size *catalog.ItemSize) {
	f.selectedSize = size
}

// SelectMeatType chooses the meat variant
func (f *Flow) SelectMeatType(meat string) {
	f.selectedMeatType = meat
}

// SelectPastaType chooses the noodle kind
func (f *Flow) SelectPastaType(pasta string) {
	f.selectedPastaType = pasta
}

// SelectSauce chooses the single sauce for single-select items
func (f *Flow) SelectSauce(sauce string) {
	f.selectedSauce = sauce
}

// SelectSideDish chooses the side dish
func (f *Flow) SelectSideDish(sideDish string) {
	f.selectedSideDish = sideDish
}

// SelectDrink chooses the drink
func (f *Flow) SelectDrink(drink string) {
	f.selectedDrink = drink
}

// ToggleIngredient toggles a build-your-own ingredient. At most four may
// be selected concurrently; toggling a fifth on is a no-op.
func (f *Flow) ToggleIngredient(ingredient string) {
	for i, sel := range f.selectedIngredients {
		if sel == ingredient {
			f.selectedIngredients = append(f.selectedIngredients[:i], f.selectedIngredients[i+1:]...)
			return
		}
	}
	if len(f.selectedIngredients) < catalog.MaxWunschIngredients {
		f.selectedIngredients = append(f.selectedIngredients, ingredient)
	}
}

// ToggleExtra toggles a paid extra; extras are uncapped
func (f *Flow) ToggleExtra(extra string) {
	for i, sel := range f.selectedExtras {
		if sel == extra {
			f.selectedExtras = append(f.selectedExtras[:i], f.selectedExtras[i+1:]...)
			return
		}
	}
	f.selectedExtras = append(f.selectedExtras, extra)
}

// ToggleSauce toggles a sauce in the multi-select list. "ohne Soße" is
// exclusive: choosing it clears every other sauce, and choosing any
// other sauce drops it first.
func (f *Flow) ToggleSauce(sauce string) {
	if sauce == catalog.NoSauceOption {
		if contains(f.selectedSauces, sauce) {
			f.selectedSauces = nil
		} else {
			f.selectedSauces = []string{catalog.NoSauceOption}
		}
		return
	}

	kept := make([]string, 0, len(f.selectedSauces))
	for _, s := range f.selectedSauces {
		if s != catalog.NoSauceOption {
			kept = append(kept, s)
		}
	}
	if contains(kept, sauce) {
		f.selectedSauces = remove(kept, sauce)
		return
	}
	f.selectedSauces = append(kept, sauce)
}

// ToggleExclusion toggles a salad exclusion. "Ohne Beilagen bzw. Salate"
// is exclusive in the same way "ohne Soße" is for sauces.
func (f *Flow) ToggleExclusion(exclusion string) {
	if exclusion == catalog.NoSidesOption {
		if contains(f.selectedExclusions, exclusion) {
			f.selectedExclusions = remove(f.selectedExclusions, exclusion)
		} else {
			f.selectedExclusions = []string{exclusion}
		}
		return
	}

	if contains(f.selectedExclusions, catalog.NoSidesOption) {
		f.selectedExclusions = []string{exclusion}
		return
	}
	if contains(f.selectedExclusions, exclusion) {
		f.selectedExclusions = remove(f.selectedExclusions, exclusion)
		return
	}
	f.selectedExclusions = append(f.selectedExclusions, exclusion)
}

// Price is the displayed price preview: base (or size) price plus the
// flat surcharge per selected extra
func (f *Flow) Price() decimal.Decimal {
	base := f.item.BasePriceFor(f.selectedSize)
	extras := catalog.ExtraSurcharge.Mul(decimal.NewFromInt(int64(len(f.selectedExtras))))
	return base.Add(extras)
}

// Advance moves the wizard forward. For items walking the meat wizard it
// steps meat → sauce → exclusions (→ sidedish for items tagged with a
// side-dish step) without finalizing; pressing it in the terminal state,
// or for any single-step item, finalizes and returns the assembled
// selections with done = true. No cart line is produced before then.
func (f *Flow) Advance() (cart.ItemSelections, bool) {
	if f.item.WalksMeatWizard() {
		switch f.step {
		case StepMeat:
			f.step = StepSauce
			return cart.ItemSelections{}, false
		case StepSauce:
			f.step = StepExclusions
			return cart.ItemSelections{}, false
		case StepExclusions:
			if f.item.HasSideDishStep {
				f.step = StepSideDish
				return cart.ItemSelections{}, false
			}
		}
	}

	selections := f.finalize()
	f.step = StepComplete
	return selections, true
}

// BackToMeat returns to the meat step, discarding the sauce selection
func (f *Flow) BackToMeat() {
	f.step = StepMeat
	f.selectedSauce = ""
	f.selectedSauces = nil
}

// BackToSauce returns to the sauce step, discarding the exclusions
func (f *Flow) BackToSauce() {
	f.step = StepSauce
	f.selectedExclusions = nil
}

// BackToExclusions returns to the exclusions step, resetting the side
// dish to its default
func (f *Flow) BackToExclusions() {
	f.step = StepExclusions
	f.selectedSideDish = catalog.SideDishOptions[0]
}

// finalize assembles the modifier set handed to the cart. For
// meat-selection items the sauce string is "<meat> - <s1, s2>", with the
// dash suffix omitted when no sauce was chosen.
func (f *Flow) finalize() cart.ItemSelections {
	var finalSauce string
	switch {
	case f.item.IsMeatSelection && f.selectedMeatType != "":
		finalSauce = f.selectedMeatType
		if len(f.selectedSauces) > 0 {
			finalSauce += " - " + strings.Join(f.selectedSauces, ", ")
		}
	case f.item.IsMultipleSauceSelection || len(f.selectedSauces) > 0:
		finalSauce = strings.Join(f.selectedSauces, ", ")
	default:
		finalSauce = f.selectedSauce
	}

	return cart.ItemSelections{
		SelectedSize:        f.selectedSize,
		SelectedIngredients: append([]string{}, f.selectedIngredients...),
		SelectedExtras:      append([]string{}, f.selectedExtras...),
		SelectedPastaType:   f.selectedPastaType,
		SelectedSauce:       finalSauce,
		SelectedExclusions:  append([]string{}, f.selectedExclusions...),
		SelectedSideDish:    f.selectedSideDish,
		SelectedDrink:       f.selectedDrink,
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func remove(values []string, v string) []string {
	kept := make([]string, 0, len(values))
	for _, s := range values {
		if s != v {
			kept = append(kept, s)
		}
	}
	return kept
}
