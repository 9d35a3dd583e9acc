package selection

import (
	"testing"

	"github.com/byserkan/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meatItem(t *testing.T, caps catalog.Capabilities) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(7, "Chefsalat", decimal.RequireFromString("8.00"))
	require.NoError(t, err)
	caps.IsMeatSelection = true
	require.NoError(t, item.SetCapabilities(caps))
	return item
}

func plainItem(t *testing.T) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(80, "Lahmacun", decimal.RequireFromString("6.00"))
	require.NoError(t, err)
	return item
}

func TestFlow_MeatWizardSteps(t *testing.T) {
	t.Run("walks meat, sauce, exclusions then finalizes", func(t *testing.T) {
		f := NewFlow(meatItem(t, catalog.Capabilities{}))
		assert.Equal(t, StepMeat, f.Step())

		_, done := f.Advance()
		assert.False(t, done)
		assert.Equal(t, StepSauce, f.Step())

		_, done = f.Advance()
		assert.False(t, done)
		assert.Equal(t, StepExclusions, f.Step())

		_, done = f.Advance()
		assert.True(t, done)
		assert.Equal(t, StepComplete, f.Step())
	})

	t.Run("side dish step only for tagged items", func(t *testing.T) {
		f := NewFlow(meatItem(t, catalog.Capabilities{HasSideDishStep: true}))

		f.Advance() // meat -> sauce
		f.Advance() // sauce -> exclusions
		_, done := f.Advance()
		assert.False(t, done)
		assert.Equal(t, StepSideDish, f.Step())

		sel, done := f.Advance()
		assert.True(t, done)
		assert.Equal(t, "Pommes frites", sel.SelectedSideDish)
	})

	t.Run("items tagged to skip the steps finalize immediately", func(t *testing.T) {
		f := NewFlow(meatItem(t, catalog.Capabilities{SkipsMeatSauceSteps: true}))

		sel, done := f.Advance()
		assert.True(t, done)
		assert.Equal(t, "Kalb", sel.SelectedSauce) // default meat, no sauce suffix
	})

	t.Run("pizzas never walk the wizard", func(t *testing.T) {
		f := NewFlow(meatItem(t, catalog.Capabilities{IsPizza: true}))

		_, done := f.Advance()
		assert.True(t, done)
	})

	t.Run("plain items finalize in one step", func(t *testing.T) {
		f := NewFlow(plainItem(t))

		sel, done := f.Advance()
		assert.True(t, done)
		assert.Empty(t, sel.SelectedSauce)
	})
}

func TestFlow_ChefsalatEndToEnd(t *testing.T) {
	f := NewFlow(meatItem(t, catalog.Capabilities{SaucePolicy: catalog.SaucePolicySaladDressing}))

	f.SelectMeatType("Hähnchen")
	_, done := f.Advance()
	require.False(t, done)

	f.ToggleSauce("Zaziki")
	f.ToggleSauce("Scharfe Soße")
	_, done = f.Advance()
	require.False(t, done)

	f.ToggleExclusion("ohne Zwiebeln")
	sel, done := f.Advance()
	require.True(t, done)

	assert.Equal(t, "Hähnchen - Zaziki, Scharfe Soße", sel.SelectedSauce)
	assert.Equal(t, []string{"ohne Zwiebeln"}, sel.SelectedExclusions)
	assert.True(t, f.Price().Equal(decimal.RequireFromString("8.00")))
}

func TestFlow_SauceExclusivity(t *testing.T) {
	item := meatItem(t, catalog.Capabilities{})

	t.Run("no-sauce clears the selection", func(t *testing.T) {
		f := NewFlow(item)
		f.ToggleSauce("Zaziki")
		f.ToggleSauce(catalog.NoSauceOption)
		f.Advance()
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, "Kalb - ohne Soße", sel.SelectedSauce)
	})

	t.Run("choosing a sauce drops no-sauce", func(t *testing.T) {
		f := NewFlow(item)
		f.ToggleSauce(catalog.NoSauceOption)
		f.ToggleSauce("Zaziki")
		f.Advance()
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, "Kalb - Zaziki", sel.SelectedSauce)
	})

	t.Run("toggling twice deselects", func(t *testing.T) {
		f := NewFlow(item)
		f.ToggleSauce("Zaziki")
		f.ToggleSauce("Zaziki")
		f.Advance()
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, "Kalb", sel.SelectedSauce)
	})
}

func TestFlow_ExclusionExclusivity(t *testing.T) {
	item := meatItem(t, catalog.Capabilities{})

	t.Run("no-sides clears individual exclusions", func(t *testing.T) {
		f := NewFlow(item)
		f.ToggleExclusion("ohne Zwiebeln")
		f.ToggleExclusion("ohne Tomaten")
		f.ToggleExclusion(catalog.NoSidesOption)
		f.Advance()
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, []string{catalog.NoSidesOption}, sel.SelectedExclusions)
	})

	t.Run("individual exclusion replaces no-sides", func(t *testing.T) {
		f := NewFlow(item)
		f.ToggleExclusion(catalog.NoSidesOption)
		f.ToggleExclusion("ohne Gurken")
		f.Advance()
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, []string{"ohne Gurken"}, sel.SelectedExclusions)
	})
}

func TestFlow_IngredientCap(t *testing.T) {
	item, err := catalog.NewMenuItem(50, "Wunsch Pizza", decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	require.NoError(t, item.SetCapabilities(catalog.Capabilities{IsPizza: true, IsWunschPizza: true}))

	f := NewFlow(item)
	f.ToggleIngredient("Salami")
	f.ToggleIngredient("Pilze")
	f.ToggleIngredient("Paprika")
	f.ToggleIngredient("Ei")
	f.ToggleIngredient("Mais") // fifth is a no-op

	sel, done := f.Advance()
	require.True(t, done)
	assert.Equal(t, []string{"Salami", "Pilze", "Paprika", "Ei"}, sel.SelectedIngredients)

	// deselecting one frees a slot
	f2 := NewFlow(item)
	f2.ToggleIngredient("Salami")
	f2.ToggleIngredient("Pilze")
	f2.ToggleIngredient("Paprika")
	f2.ToggleIngredient("Ei")
	f2.ToggleIngredient("Salami")
	f2.ToggleIngredient("Mais")

	sel2, _ := f2.Advance()
	assert.Equal(t, []string{"Pilze", "Paprika", "Ei", "Mais"}, sel2.SelectedIngredients)
}

func TestFlow_ExtrasPricing(t *testing.T) {
	item, err := catalog.NewMenuItem(1, "Döner Kebab", decimal.RequireFromString("7.50"))
	require.NoError(t, err)

	f := NewFlow(item)
	f.ToggleExtra("Käse")
	f.ToggleExtra("Jalapeños")

	assert.True(t, f.Price().Equal(decimal.RequireFromString("9.50")))

	f.ToggleExtra("Käse")
	assert.True(t, f.Price().Equal(decimal.RequireFromString("8.50")))
}

func TestFlow_SizePricing(t *testing.T) {
	item, err := catalog.NewMenuItem(30, "Pizza Margherita", decimal.RequireFromString("9.00"))
	require.NoError(t, err)
	require.NoError(t, item.SetSizes([]catalog.ItemSize{
		{Name: "Klein", Price: decimal.RequireFromString("9.00")},
		{Name: "Groß", Price: decimal.RequireFromString("11.00")},
	}))

	f := NewFlow(item)
	assert.True(t, f.Price().Equal(decimal.RequireFromString("9.00"))) // first size preselected

	f.SelectSize(&item.Sizes[1])
	assert.True(t, f.Price().Equal(decimal.RequireFromString("11.00")))
}

func TestFlow_BackNavigation(t *testing.T) {
	item := meatItem(t, catalog.Capabilities{HasSideDishStep: true})

	f := NewFlow(item)
	f.SelectMeatType("Hähnchen")
	f.Advance()
	f.ToggleSauce("Zaziki")

	t.Run("back to meat discards sauces", func(t *testing.T) {
		f.BackToMeat()
		assert.Equal(t, StepMeat, f.Step())

		f.Advance()
		f.Advance()
		f.ToggleExclusion("ohne Zwiebeln")
		f.Advance()
		sel, done := f.Advance()
		require.True(t, done)
		assert.Equal(t, "Hähnchen", sel.SelectedSauce) // sauce suffix gone
	})
}

func TestFlow_SauceOptionsFollowPolicy(t *testing.T) {
	dressing := meatItem(t, catalog.Capabilities{SaucePolicy: catalog.SaucePolicySaladDressing})
	assert.Equal(t, catalog.SaladDressings, NewFlow(dressing).SauceOptions())

	standard := meatItem(t, catalog.Capabilities{})
	assert.Equal(t, catalog.StandardSauces, NewFlow(standard).SauceOptions())
}
