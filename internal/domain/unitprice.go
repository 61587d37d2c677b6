package domain

import (
	"fmt"
	"math"
)

// ComputeUnitPrice derives the price per base unit from a (price, quantity,
// unit) triple. A missing or non-positive price yields 0. A missing or
// non-positive quantity returns the price unchanged: without a valid
// quantity the whole price is the best available "per unit" figure.
func ComputeUnitPrice(price, qty float64, unit string) float64 {
	if price <= 0 || math.IsNaN(price) {
		return 0
	}
	if qty <= 0 || math.IsNaN(qty) {
		return price
	}
	return price / ToBaseQuantity(qty, unit).Qty
}

// FormatUnitPrice renders a unit price as a currency label in the display
// denomination for the unit's family: weight shows per 100g, volume per
// 100ml, count per each. A non-positive unit price renders as the empty
// string.
func FormatUnitPrice(unitPrice float64, unit string) string {
	if unitPrice <= 0 {
		return ""
	}

	var suffix string
	switch NormalizeUnit(unit) {
	case UnitKilo, UnitGram:
		suffix = "/100g"
		unitPrice *= 100
	case UnitLitre, UnitML:
		suffix = "/100ml"
		unitPrice *= 100
	default:
		suffix = "/ea"
	}

	return fmt.Sprintf("$%.2f%s", unitPrice, suffix)
}
