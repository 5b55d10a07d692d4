package domain

import "strings"

// CookingState says whether nutrition values are expressed for the raw or the
// cooked form of a food.
type CookingState string

// Cooking states. Empty means "not specified, detect from the name".
const (
	StateRaw    CookingState = "raw"
	StateCooked CookingState = "cooked"
)

// NormalizedNutrition holds nutrition values scaled to a single comparable
// basis (one logged quantity, one cooking state).
type NormalizedNutrition struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Scale multiplies every value by factor.
func (n NormalizedNutrition) Scale(factor float64) NormalizedNutrition {
	return NormalizedNutrition{
		Calories: n.Calories * factor,
		Proteins: n.Proteins * factor,
		Carbs:    n.Carbs * factor,
		Fats:     n.Fats * factor,
	}
}

// Add sums two nutrition values field by field.
func (n NormalizedNutrition) Add(o NormalizedNutrition) NormalizedNutrition {
	return NormalizedNutrition{
		Calories: n.Calories + o.Calories,
		Proteins: n.Proteins + o.Proteins,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
	}
}

// Keyword lists for cooking-state detection. Order matters: the cooked list is
// checked before the raw list, and grains only apply when neither matched.
// All matching is case-insensitive substring search.
var (
	cookedKeywords = []string{
		"cuit", "cuite", "bouilli", "vapeur", "grillé", "grille",
		"rôti", "roti", "frit", "poêlé", "poele", "sauté", "saute",
		"braisé", "braise", "mijoté", "mijote",
	}
	rawKeywords = []string{"cru", "crue", "crus", "crues", "sec", "sèche", "seche"}

	// Foods sold dry and almost always logged before cooking.
	grainKeywords = []string{
		"riz", "pâtes", "pates", "quinoa", "semoule", "boulgour",
		"lentilles", "pois", "haricots",
	}
)

// DetectCookingState guesses the cooking state from a food name. Explicit
// cooked keywords win over raw keywords; dry grains and legumes default to
// raw; everything else defaults to cooked.
func DetectCookingState(name string) CookingState {
	lower := strings.ToLower(name)
	for _, k := range cookedKeywords {
		if strings.Contains(lower, k) {
			return StateCooked
		}
	}
	for _, k := range rawKeywords {
		if strings.Contains(lower, k) {
			return StateRaw
		}
	}
	for _, k := range grainKeywords {
		if strings.Contains(lower, k) {
			return StateRaw
		}
	}
	return StateCooked
}

// FoodConversionRule describes how cooking changes a food: waterAbsorption is
// the cooked-weight over raw-weight ratio, calorieRatio the cooked-calorie
// over raw-calorie ratio per unit weight (0 < ratio <= 1).
type FoodConversionRule struct {
	Pattern         string  `json:"pattern"`
	WaterAbsorption float64 `json:"waterAbsorption"`
	CalorieRatio    float64 `json:"calorieRatio"`
}

// cookingConversions is an ordered reference table; lookups take the first
// pattern that substring-matches the food name. Do not reorder.
var cookingConversions = []FoodConversionRule{
	{Pattern: "riz", WaterAbsorption: 2.5, CalorieRatio: 0.36},
	{Pattern: "pâtes", WaterAbsorption: 2.2, CalorieRatio: 0.43},
	{Pattern: "pates", WaterAbsorption: 2.2, CalorieRatio: 0.43},
	{Pattern: "quinoa", WaterAbsorption: 2.75, CalorieRatio: 0.33},
	{Pattern: "semoule", WaterAbsorption: 2.0, CalorieRatio: 0.31},
	{Pattern: "boulgour", WaterAbsorption: 2.5, CalorieRatio: 0.35},
	{Pattern: "lentilles", WaterAbsorption: 2.3, CalorieRatio: 0.33},
	{Pattern: "pois", WaterAbsorption: 2.0, CalorieRatio: 0.45},
	{Pattern: "haricots", WaterAbsorption: 2.4, CalorieRatio: 0.38},
	{Pattern: "pomme de terre", WaterAbsorption: 1.0, CalorieRatio: 0.95},
	{Pattern: "patate douce", WaterAbsorption: 1.0, CalorieRatio: 0.90},
}

// CookingConversionFor returns the conversion rule matching the food name, or
// nil when the food is unknown and therefore unconvertible.
func CookingConversionFor(name string) *FoodConversionRule {
	lower := strings.ToLower(name)
	for i := range cookingConversions {
		if strings.Contains(lower, cookingConversions[i].Pattern) {
			r := cookingConversions[i]
			return &r
		}
	}
	return nil
}

// AdjustForCooking rescales nutrition values from one cooking state to
// another. Same-state calls and unknown foods pass through unchanged; an
// unknown food is never partially converted.
//
// The same calorie ratio scales all four values. That approximates macros as
// diluted uniformly by water uptake, which is lossy but matches how the
// reference tables were built.
func AdjustForCooking(name string, n NormalizedNutrition, from, to CookingState) NormalizedNutrition {
	if from == to {
		return n
	}
	rule := CookingConversionFor(name)
	if rule == nil {
		return n
	}
	switch {
	case from == StateRaw && to == StateCooked:
		return n.Scale(rule.CalorieRatio)
	case from == StateCooked && to == StateRaw:
		return n.Scale(1 / rule.CalorieRatio)
	default:
		return n
	}
}

// Unit is the quantity unit a food entry is logged in.
type Unit string

// Units. Empty means "not specified, detect from the name".
const (
	UnitGram       Unit = "g"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "unit"
)

// Keyword lists for unit detection, liquids checked first.
var (
	liquidKeywords = []string{
		"eau", "lait", "jus", "boisson", "soupe", "bouillon",
		"smoothie", "café", "cafe", "thé", "sirop", "huile",
	}
	countableKeywords = []string{
		"œuf", "oeuf", "banane", "orange", "kiwi", "poire", "pêche",
		"peche", "abricot", "tranche", "yaourt", "biscuit", "barre",
		"croissant", "tortilla",
	}
)

// DetectProductUnit guesses the logging unit from a food name: liquids in
// milliliters, countable items in pieces, everything else in grams.
func DetectProductUnit(name string) Unit {
	lower := strings.ToLower(name)
	for _, k := range liquidKeywords {
		if strings.Contains(lower, k) {
			return UnitMilliliter
		}
	}
	for _, k := range countableKeywords {
		if strings.Contains(lower, k) {
			return UnitPiece
		}
	}
	return UnitGram
}

// UnitConfig carries the UI defaults and the gram equivalence for a unit.
type UnitConfig struct {
	Label           string  `json:"label"`
	DefaultQuantity float64 `json:"defaultQuantity"`
	Step            float64 `json:"step"`
	EquivalentGrams float64 `json:"equivalentGrams"`
}

// UnitConfigFor returns the static configuration for a unit. Unknown units
// fall back to grams.
func UnitConfigFor(u Unit) UnitConfig {
	switch u {
	case UnitMilliliter:
		return UnitConfig{Label: "ml", DefaultQuantity: 250, Step: 50, EquivalentGrams: 1}
	case UnitPiece:
		return UnitConfig{Label: "portion", DefaultQuantity: 1, Step: 1, EquivalentGrams: 150}
	default:
		return UnitConfig{Label: "g", DefaultQuantity: 100, Step: 10, EquivalentGrams: 1}
	}
}

type portionHint struct {
	pattern string
	hint    string
}

// Serving-size hints. Advisory only; nothing downstream computes with them.
var (
	cookedPortions = []portionHint{
		{"riz", "150 g cuits par portion"},
		{"pâtes", "180 g cuites par portion"},
		{"pates", "180 g cuites par portion"},
		{"quinoa", "150 g cuits par portion"},
		{"lentilles", "200 g cuites par portion"},
		{"semoule", "150 g cuite par portion"},
		{"pomme de terre", "200 g cuites par portion"},
	}
	commonPortions = []portionHint{
		{"pain", "1 tranche ≈ 35 g"},
		{"œuf", "1 œuf ≈ 60 g"},
		{"oeuf", "1 œuf ≈ 60 g"},
		{"yaourt", "1 pot ≈ 125 g"},
		{"fromage", "1 part ≈ 30 g"},
		{"banane", "1 banane ≈ 120 g"},
		{"huile", "1 cuillère à soupe ≈ 10 ml"},
	}
)

// CookedPortionFor returns a human-readable cooked serving hint for the food,
// or "" when none is known.
func CookedPortionFor(name string) string {
	return portionFor(cookedPortions, name)
}

// CommonPortionFor returns a common serving hint for the food, or "".
func CommonPortionFor(name string) string {
	return portionFor(commonPortions, name)
}

func portionFor(table []portionHint, name string) string {
	lower := strings.ToLower(name)
	for _, p := range table {
		if strings.Contains(lower, p.pattern) {
			return p.hint
		}
	}
	return ""
}
