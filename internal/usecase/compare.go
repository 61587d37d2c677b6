package usecase

import (
	"github.com/pricecart/backend/internal/domain"
)

// Best-store selection walks stores in domain.CanonicalStoreOrder restricted
// to the requested set. BestStore starts at the first requested store in
// that order (the default-store policy: every result names a store, even
// when no quote is usable) and only a strictly cheaper usable quote
// displaces it, so exact ties keep the earlier store.

// CompareItem selects the cheapest available store for one list item. The
// returned result carries a quote entry for every requested store; stores
// whose quote is missing get an unavailable placeholder.
func CompareItem(item domain.ListItem, quotes map[domain.StoreID]*domain.StorePrice, stores []domain.StoreID) domain.PriceResult {
	result := domain.PriceResult{
		ItemID:  item.ID,
		RawText: item.RawText,
		Quotes:  make(map[domain.StoreID]*domain.StorePrice, len(stores)),
	}

	bestPrice := 0.0
	haveBest := false

	for _, store := range stores {
		quote := quotes[store]
		if quote == nil {
			quote = domain.UnavailableQuote(item.RawText)
		}
		result.Quotes[store] = quote

		if result.BestStore == "" {
			result.BestStore = store
		}

		if !quote.Usable() {
			continue
		}
		if !haveBest || quote.Price < bestPrice {
			bestPrice = quote.Price
			result.BestStore = store
			haveBest = true
		}
	}

	return result
}

// Summarize aggregates a run's per-item results into per-store summaries and
// the optimized shopping allocation.
//
// Summaries cover every requested store whether or not it won anything:
// total cost over its usable quotes plus how many of the items it could
// supply. The optimized groups partition items by best store; items with no
// usable quote anywhere keep their policy-default BestStore but join no
// group, since their price would be meaningless.
func Summarize(results []domain.PriceResult, stores []domain.StoreID) ([]domain.StoreSummary, []domain.StoreGroup) {
	summaries := make([]domain.StoreSummary, 0, len(stores))
	groupIndex := make(map[domain.StoreID]*domain.StoreGroup, len(stores))

	for _, store := range stores {
		summary := domain.StoreSummary{
			Store:      store,
			StoreName:  store.DisplayName(),
			TotalItems: len(results),
		}
		for _, r := range results {
			if quote := r.Quotes[store]; quote.Usable() {
				summary.Total += quote.Price
				summary.AvailableItems++
			}
		}
		summaries = append(summaries, summary)
	}

	for _, r := range results {
		best := r.Quotes[r.BestStore]
		if !best.Usable() {
			continue
		}
		group, ok := groupIndex[r.BestStore]
		if !ok {
			group = &domain.StoreGroup{
				Store:     r.BestStore,
				StoreName: r.BestStore.DisplayName(),
			}
			groupIndex[r.BestStore] = group
		}
		group.ItemCount++
		group.Subtotal += best.Price
		group.ItemIDs = append(group.ItemIDs, r.ItemID)
	}

	// Emit groups in canonical order for stable output
	groups := make([]domain.StoreGroup, 0, len(groupIndex))
	for _, store := range stores {
		if group, ok := groupIndex[store]; ok {
			groups = append(groups, *group)
		}
	}

	return summaries, groups
}
