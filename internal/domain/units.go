package domain

import (
	"math"
	"regexp"
	"strings"
)

// StandardUnit is the closed set of units every free-text unit string
// normalizes to.
type StandardUnit string

const (
	UnitEach  StandardUnit = "ea"
	UnitDozen StandardUnit = "dozen"
	UnitGram  StandardUnit = "g"
	UnitKilo  StandardUnit = "kg"
	UnitML    StandardUnit = "ml"
	UnitLitre StandardUnit = "l"
)

// BaseUnit is the closed set of units quantities are actually compared in
type BaseUnit string

const (
	BaseEach BaseUnit = "ea"
	BaseGram BaseUnit = "g"
	BaseML   BaseUnit = "ml"
)

// BaseQuantity is a quantity expressed in its base unit
type BaseQuantity struct {
	Qty  float64
	Base BaseUnit
}

// unitSynonyms maps cleaned unit spellings directly to standard units
var unitSynonyms = map[string]StandardUnit{
	// Count
	"ea": UnitEach, "each": UnitEach, "piece": UnitEach, "pc": UnitEach,
	"pcs": UnitEach, "ct": UnitEach, "count": UnitEach, "item": UnitEach,
	"items": UnitEach,

	// Dozen
	"dozen": UnitDozen, "dz": UnitDozen, "doz": UnitDozen, "12pk": UnitDozen,

	// Metric weight
	"g": UnitGram, "gram": UnitGram, "grams": UnitGram, "gr": UnitGram,
	"kg": UnitKilo, "kilo": UnitKilo, "kilos": UnitKilo,
	"kilogram": UnitKilo, "kilograms": UnitKilo,

	// Metric volume
	"ml": UnitML, "milliliter": UnitML, "millilitre": UnitML,
	"milliliters": UnitML, "millilitres": UnitML,
	"l": UnitLitre, "liter": UnitLitre, "litre": UnitLitre,
	"liters": UnitLitre, "litres": UnitLitre,
}

// Permissive per-family fallback patterns, tried in a fixed order. The order
// matters: "ml" must reach the millilitre family before the gram or litre
// patterns get a chance to claim it.
var unitFamilyPatterns = []struct {
	re   *regexp.Regexp
	unit StandardUnit
}{
	{regexp.MustCompile(`^(ea|each|piece|pc|pcs|ct|count|item|items)s?$`), UnitEach},
	{regexp.MustCompile(`^doz(en)?s?$`), UnitDozen},
	{regexp.MustCompile(`^g(ram)?s?$`), UnitGram},
	{regexp.MustCompile(`^k(ilo)?g(ram)?s?$`), UnitKilo},
	{regexp.MustCompile(`^m(illi)?l(iter|itre)?s?$`), UnitML},
	{regexp.MustCompile(`^l(iter|itre)?s?$`), UnitLitre},
}

// NormalizeUnit maps an arbitrary unit spelling to a standard unit. It is
// total: any input, including garbage, yields a value. Unrecognized strings
// fall back to "ea" because quantity text from retailers is free-form and a
// wrong-but-usable default beats an error here.
func NormalizeUnit(unit string) StandardUnit {
	if unit == "" {
		return UnitEach
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(unit), ".", ""))

	if std, ok := unitSynonyms[cleaned]; ok {
		return std
	}

	for _, fam := range unitFamilyPatterns {
		if fam.re.MatchString(cleaned) {
			return fam.unit
		}
	}

	return UnitEach
}

// ToBaseQuantity converts a quantity in any unit spelling to its base-unit
// magnitude. Invalid, zero, or NaN quantities yield {1, ea}: quantity is
// frequently absent from user input, so the safe default wins over an error.
func ToBaseQuantity(qty float64, unit string) BaseQuantity {
	if qty <= 0 || math.IsNaN(qty) {
		return BaseQuantity{Qty: 1, Base: BaseEach}
	}

	switch NormalizeUnit(unit) {
	case UnitKilo:
		return BaseQuantity{Qty: qty * 1000, Base: BaseGram}
	case UnitLitre:
		return BaseQuantity{Qty: qty * 1000, Base: BaseML}
	case UnitDozen:
		return BaseQuantity{Qty: qty * 12, Base: BaseEach}
	case UnitGram:
		return BaseQuantity{Qty: qty, Base: BaseGram}
	case UnitML:
		return BaseQuantity{Qty: qty, Base: BaseML}
	default:
		return BaseQuantity{Qty: qty, Base: BaseEach}
	}
}
