package domain

import "fmt"

// StoreID identifies one of the supported retail chains
type StoreID string

const (
	StoreNoFrills   StoreID = "nofrills"
	StoreFoodBasics StoreID = "foodbasics"
	StoreWalmart    StoreID = "walmart"
	StoreCostco     StoreID = "costco"
)

// CanonicalStoreOrder is the fixed priority order used everywhere stores are
// iterated: best-store selection, tie-breaking, and the default-store policy
// all walk stores in this sequence so results are reproducible.
var CanonicalStoreOrder = []StoreID{
	StoreNoFrills,
	StoreFoodBasics,
	StoreWalmart,
	StoreCostco,
}

// ParseStoreID validates a raw store identifier against the supported set
func ParseStoreID(s string) (StoreID, error) {
	id := StoreID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStore, s)
	}
	return id, nil
}

// Valid reports whether the identifier is one of the supported stores
func (s StoreID) Valid() bool {
	switch s {
	case StoreNoFrills, StoreFoodBasics, StoreWalmart, StoreCostco:
		return true
	}
	return false
}

// DisplayName returns the human-readable chain name
func (s StoreID) DisplayName() string {
	switch s {
	case StoreNoFrills:
		return "No Frills"
	case StoreFoodBasics:
		return "Food Basics"
	case StoreWalmart:
		return "Walmart"
	case StoreCostco:
		return "Costco"
	}
	return string(s)
}

// OrderedStores returns the requested stores in canonical order, dropping
// duplicates. Request-body order is deliberately ignored.
func OrderedStores(requested []StoreID) []StoreID {
	want := make(map[StoreID]bool, len(requested))
	for _, s := range requested {
		want[s] = true
	}

	ordered := make([]StoreID, 0, len(requested))
	for _, s := range CanonicalStoreOrder {
		if want[s] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}
