package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedSize is the (quantity, unit) pair extracted from a size description
type ParsedSize struct {
	Qty  float64
	Unit StandardUnit
}

var (
	// Leading number immediately followed by a unit token: "500g", "2 L", "1.5kg"
	sizePrimaryPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z\-]+)$`)

	// Pack-count phrasing: "pack of 6", "12-pack", "12 pack"
	sizePackPattern = regexp.MustCompile(`(?i)pack\s+of\s+(\d+)|(\d+)[\s\-]pack`)
)

// ParseSize extracts a quantity and unit from free-text product size copy.
// Size text is free-form vendor copy, so parsing failure is silent: anything
// unparseable comes back as one each.
func ParseSize(sizeText string) ParsedSize {
	fallback := ParsedSize{Qty: 1, Unit: UnitEach}

	if sizeText == "" {
		return fallback
	}

	if m := sizePrimaryPattern.FindStringSubmatch(strings.TrimSpace(sizeText)); m != nil {
		qty, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return fallback
		}
		return ParsedSize{Qty: qty, Unit: NormalizeUnit(m[2])}
	}

	if m := sizePackPattern.FindStringSubmatch(sizeText); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fallback
		}
		return ParsedSize{Qty: float64(n), Unit: UnitEach}
	}

	return fallback
}
