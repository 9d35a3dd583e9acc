package catalog

import "github.com/shopspring/decimal"

// Fixed option lists offered by the configuration flow. These mirror the
// printed menu; they are content, not schema, but every deployment of this
// store uses the same lists so they ship as constants.

// MeatTypes lists the selectable döner meat variants
var MeatTypes = []string{
	"Kalb",
	"Hähnchen",
	"Gemischt (Kalb & Hähnchen)",
	"Nur Fleisch (ohne Salat)",
}

// StandardSauces is the regular kebap sauce list
var StandardSauces = []string{
	"Zaziki",
	"Cocktail-Soße",
	"Scharfe Soße",
	"Joghurt-Soße",
	"Knoblauch-Soße",
	"Kräuter-Soße",
	"Curry-Soße",
	"Hollandaise",
	NoSauceOption,
}

// SaladDressings is the sauce list for specialty salads
var SaladDressings = []string{
	"Joghurt-Dressing",
	"Essig & Öl",
	"Cocktail-Dressing",
	"ohne Dressing",
}

// PommesSauces is the dip list for fries
var PommesSauces = []string{
	"Ketchup",
	"Mayonnaise",
	"Joppiesauce",
	"Süßsauer",
}

// BurgerSauces is the burger variant of the standard list
var BurgerSauces = []string{
	"Burger Sauce",
	"Cocktail-Soße",
	"Hollandaise",
	"Joghurt-Soße",
	"Knoblauch-Soße",
	"Scharfe Soße",
	NoSauceOption,
}

// SaladExclusionOptions lists the salad components a customer can leave out
var SaladExclusionOptions = []string{
	"ohne Zwiebeln",
	"ohne Tomaten",
	"ohne Gurken",
	"ohne Eisbergsalat",
	"ohne Rotkohl",
	"ohne Weißkohl",
	"ohne Weichkäse",
	"ohne Mais",
	"ohne Peperoni",
	"ohne Soße",
	NoSidesOption,
}

// SideDishOptions lists the selectable side dishes
var SideDishOptions = []string{
	"Pommes frites",
	"Reis",
	"Kroketten",
}

// PastaTypes lists the selectable noodle kinds
var PastaTypes = []string{
	"Spaghetti",
	"Rigatoni",
	"Tortellini",
	"Gnocchi",
	"Penne",
}

// BeerTypes lists the selectable beers
var BeerTypes = []string{
	"Pils",
	"Weizen",
	"Alster",
	"Alt",
}

// Exclusive options: choosing one of these clears every other selection
// in its group, and choosing anything else clears it.
const (
	NoSauceOption = "ohne Soße"
	NoSidesOption = "Ohne Beilagen bzw. Salate"
)

// MaxWunschIngredients caps concurrent build-your-own pizza ingredients
const MaxWunschIngredients = 4

// ExtraSurcharge is the flat per-extra price added at checkout
var ExtraSurcharge = decimal.NewFromFloat(1.00)

// Ingredient is a build-your-own pizza topping with its surcharge
type Ingredient struct {
	Name  string
	Price decimal.Decimal
}

// WunschPizzaIngredients lists the build-your-own pizza toppings
var WunschPizzaIngredients = []Ingredient{
	{Name: "Salami", Price: decimal.NewFromFloat(1.00)},
	{Name: "Schinken", Price: decimal.NewFromFloat(1.00)},
	{Name: "Pilze", Price: decimal.NewFromFloat(1.00)},
	{Name: "Paprika", Price: decimal.NewFromFloat(1.00)},
	{Name: "Zwiebeln", Price: decimal.NewFromFloat(1.00)},
	{Name: "Thunfisch", Price: decimal.NewFromFloat(1.50)},
	{Name: "Spinat", Price: decimal.NewFromFloat(1.00)},
	{Name: "Brokkoli", Price: decimal.NewFromFloat(1.00)},
	{Name: "Ei", Price: decimal.NewFromFloat(1.00)},
	{Name: "Mozzarella", Price: decimal.NewFromFloat(1.50)},
	{Name: "Gorgonzola", Price: decimal.NewFromFloat(1.50)},
	{Name: "Weichkäse", Price: decimal.NewFromFloat(1.50)},
	{Name: "Oliven", Price: decimal.NewFromFloat(1.00)},
	{Name: "Peperoni", Price: decimal.NewFromFloat(1.00)},
	{Name: "Mais", Price: decimal.NewFromFloat(1.00)},
	{Name: "Ananas", Price: decimal.NewFromFloat(1.00)},
	{Name: "Spargel", Price: decimal.NewFromFloat(1.00)},
	{Name: "Artischocken", Price: decimal.NewFromFloat(1.00)},
	{Name: "Sardellen", Price: decimal.NewFromFloat(1.50)},
	{Name: "Meeresfrüchte", Price: decimal.NewFromFloat(2.00)},
	{Name: "Krabben", Price: decimal.NewFromFloat(2.00)},
	{Name: "Hähnchen", Price: decimal.NewFromFloat(2.00)},
	{Name: "Kalb", Price: decimal.NewFromFloat(2.00)},
	{Name: "Sucuk", Price: decimal.NewFromFloat(1.50)},
	{Name: "Jalapenos", Price: decimal.NewFromFloat(1.00)},
	{Name: "Hollandaise", Price: decimal.NewFromFloat(1.00)},
	{Name: "BBQ-Sauce", Price: decimal.NewFromFloat(1.00)},
	{Name: "Curry-Sauce", Price: decimal.NewFromFloat(1.00)},
}

// SaucesFor returns the sauce option list for an item's sauce policy
func SaucesFor(policy SaucePolicy) []string {
	switch policy {
	case SaucePolicySaladDressing:
		return SaladDressings
	case SaucePolicyPommes:
		return PommesSauces
	case SaucePolicyBurger:
		return BurgerSauces
	case SaucePolicyNone:
		return nil
	default:
		return StandardSauces
	}
}
