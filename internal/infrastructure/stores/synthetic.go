package stores

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"net/url"

	"github.com/pricecart/backend/internal/domain"
)

// SyntheticProvider generates deterministic quotes without touching the
// network. The price, availability, and unit price for a given (item, store)
// pair are derived from a hash of the two, so repeated runs and tests see
// identical data. Used when no scraping-proxy API key is configured.
type SyntheticProvider struct {
	store domain.StoreID
}

// NewSyntheticProvider creates a synthetic quote provider for one store
func NewSyntheticProvider(store domain.StoreID) *SyntheticProvider {
	return &SyntheticProvider{store: store}
}

func (p *SyntheticProvider) StoreID() domain.StoreID {
	return p.store
}

// FetchQuote produces the deterministic quote for the item
func (p *SyntheticProvider) FetchQuote(ctx context.Context, item domain.ListItem, postal string) (*domain.StorePrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := hashText(item.RawText + string(p.store))

	// $1.00 to $10.99, with roughly 90% availability
	price := roundCents(float64(h%1000)/100 + 1)
	available := h%10 > 1

	if !available {
		return domain.UnavailableQuote(item.RawText), nil
	}

	size := "each"
	if item.Quantity > 0 {
		unit := item.Unit
		if unit == "" {
			unit = string(domain.UnitEach)
		}
		size = fmt.Sprintf("%g %s", item.Quantity, unit)
	}

	return &domain.StorePrice{
		Price:       price,
		UnitPrice:   roundCents(domain.ComputeUnitPrice(price, item.Quantity, item.Unit)),
		Available:   true,
		ProductName: fmt.Sprintf("%s %s", p.store.DisplayName(), item.RawText),
		Size:        size,
		URL:         fmt.Sprintf("https://www.%s.ca/search?q=%s", p.store, url.QueryEscape(item.RawText)),
	}, nil
}

// hashText is a stable 32-bit hash of the input
func hashText(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
