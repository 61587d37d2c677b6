package domain

import (
	"math"
	"testing"
)

func TestNormalizeUnit(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want StandardUnit
	}{
		{"empty string defaults to each", "", UnitEach},
		{"exact ea", "ea", UnitEach},
		{"each word", "each", UnitEach},
		{"piece", "piece", UnitEach},
		{"pieces plural via fallback", "pieces", UnitEach},
		{"ct", "ct", UnitEach},
		{"count", "count", UnitEach},
		{"item", "item", UnitEach},
		{"dozen", "dozen", UnitDozen},
		{"dz", "dz", UnitDozen},
		{"doz", "doz", UnitDozen},
		{"dozens plural", "dozens", UnitDozen},
		{"12pk maps to dozen", "12pk", UnitDozen},
		{"g", "g", UnitGram},
		{"gram", "gram", UnitGram},
		{"grams", "grams", UnitGram},
		{"gr abbreviation", "gr", UnitGram},
		{"kg", "kg", UnitKilo},
		{"kilo", "kilo", UnitKilo},
		{"kilograms", "kilograms", UnitKilo},
		{"kgs plural via fallback", "kgs", UnitKilo},
		{"ml", "ml", UnitML},
		{"millilitre", "millilitre", UnitML},
		{"milliliters", "milliliters", UnitML},
		{"mls plural via fallback", "mls", UnitML},
		{"l", "l", UnitLitre},
		{"litre", "litre", UnitLitre},
		{"liters", "liters", UnitLitre},
		{"uppercase KG", "KG", UnitKilo},
		{"punctuated KG.", "KG.", UnitKilo},
		{"mixed case Kg", "Kg", UnitKilo},
		{"whitespace padded", "  kg  ", UnitKilo},
		{"uppercase L", "L", UnitLitre},
		{"garbage defaults to each", "zorblax", UnitEach},
		{"numeric garbage defaults to each", "123", UnitEach},
		{"hyphenated garbage defaults to each", "-pack", UnitEach},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeUnit(tc.in)
			if got != tc.want {
				t.Errorf("NormalizeUnit(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// NormalizeUnit must give the same answer for case, plural, and punctuation
// variants of the same unit.
func TestNormalizeUnit_VariantsAgree(t *testing.T) {
	variantSets := map[StandardUnit][]string{
		UnitKilo:  {"kg", "KG.", "Kg", "kilograms", "kilogram", "kilos"},
		UnitLitre: {"l", "L", "litre", "Liters", "litres"},
		UnitML:    {"ml", "ML", "millilitres", "mL"},
		UnitGram:  {"g", "G", "grams", "Gram"},
		UnitEach:  {"ea", "EACH", "pcs", "Count", "items"},
		UnitDozen: {"dozen", "DOZEN", "dz", "doz."},
	}

	for want, variants := range variantSets {
		for _, v := range variants {
			if got := NormalizeUnit(v); got != want {
				t.Errorf("NormalizeUnit(%q) = %q, want %q", v, got, want)
			}
		}
	}
}

func TestToBaseQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		qty      float64
		unit     string
		wantQty  float64
		wantBase BaseUnit
	}{
		{"kg converts to grams", 2, "kg", 2000, BaseGram},
		{"litres convert to ml", 1.5, "L", 1500, BaseML},
		{"dozen converts to each", 1, "dozen", 12, BaseEach},
		{"grams pass through", 500, "g", 500, BaseGram},
		{"ml passes through", 250, "ml", 250, BaseML},
		{"each passes through", 3, "ea", 3, BaseEach},
		{"unknown unit treated as each", 4, "zorblax", 4, BaseEach},
		{"zero qty falls back", 0, "kg", 1, BaseEach},
		{"negative qty falls back", -2, "kg", 1, BaseEach},
		{"NaN qty falls back", math.NaN(), "g", 1, BaseEach},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToBaseQuantity(tc.qty, tc.unit)
			if got.Qty != tc.wantQty || got.Base != tc.wantBase {
				t.Errorf("ToBaseQuantity(%v, %q) = {%v, %q}, want {%v, %q}",
					tc.qty, tc.unit, got.Qty, got.Base, tc.wantQty, tc.wantBase)
			}
		})
	}
}
