package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pricecart/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// PricingServiceConfig holds configuration for the pricing service
type PricingServiceConfig struct {
	FetchTimeout       time.Duration
	CacheTTL           time.Duration
	DefaultPostal      string
	EnableDebugLogging bool
}

// PricingService runs price comparisons: it fans out one quote fetch per
// (item, store) pair, joins per item, and feeds the collected quotes through
// the comparison engine. The service itself holds no mutable state across
// runs and is safe for concurrent use.
type PricingService struct {
	cache         domain.CacheRepository
	providers     map[domain.StoreID]domain.QuoteProvider
	fetchTimeout  time.Duration
	cacheTTL      time.Duration
	defaultPostal string
	debug         bool
}

// NewPricingService creates a pricing service over the given quote providers
func NewPricingService(
	cache domain.CacheRepository,
	providers []domain.QuoteProvider,
	config PricingServiceConfig,
) *PricingService {
	fetchTimeout := config.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = 15 * time.Second
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 1 * time.Hour // Quotes go stale quickly compared to catalog data
	}

	byStore := make(map[domain.StoreID]domain.QuoteProvider, len(providers))
	for _, p := range providers {
		byStore[p.StoreID()] = p
	}

	return &PricingService{
		cache:         cache,
		providers:     byStore,
		fetchTimeout:  fetchTimeout,
		cacheTTL:      cacheTTL,
		defaultPostal: config.DefaultPostal,
		debug:         config.EnableDebugLogging,
	}
}

// RunComparison prices every item of the request against the selected stores.
// Validation failures surface as domain sentinel errors; per-store fetch
// failures never do — they become unavailable quotes inside the results.
func (s *PricingService) RunComparison(ctx context.Context, req *domain.PriceRunRequest) (*domain.PriceRun, error) {
	stores, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	postal := req.Postal
	if postal == "" {
		postal = s.defaultPostal
	}

	runID := uuid.NewString()
	if s.debug {
		log.Printf("[PRICING] run %s: %d items across %d stores (postal %s)",
			runID, len(req.Items), len(stores), postal)
	}

	results := make([]domain.PriceResult, len(req.Items))

	// Items are independent; price them concurrently. Each priceItem call
	// joins its own store fetches, so a slow store delays only its item.
	var wg sync.WaitGroup
	for i, item := range req.Items {
		wg.Add(1)
		go func(i int, item domain.ListItem) {
			defer wg.Done()
			results[i] = s.priceItem(ctx, item, stores, postal)
		}(i, item)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries, groups := Summarize(results, stores)

	return &domain.PriceRun{
		RunID:     runID,
		Items:     results,
		Summaries: summaries,
		Optimized: groups,
	}, nil
}

// validateRequest checks the request shape and resolves the requested stores
// into canonical order.
func validateRequest(req *domain.PriceRunRequest) ([]domain.StoreID, error) {
	if req == nil || req.ListID == "" {
		return nil, domain.ErrMissingListID
	}
	if len(req.Stores) == 0 {
		return nil, domain.ErrNoStores
	}

	ids := make([]domain.StoreID, 0, len(req.Stores))
	for _, raw := range req.Stores {
		id, err := domain.ParseStoreID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyList
	}

	return domain.OrderedStores(ids), nil
}

// priceItem collects one quote per requested store and runs the comparison.
// All store fetches for the item are dispatched concurrently and joined here.
func (s *PricingService) priceItem(ctx context.Context, item domain.ListItem, stores []domain.StoreID, postal string) domain.PriceResult {
	quotes := make(map[domain.StoreID]*domain.StorePrice, len(stores))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, store := range stores {
		wg.Add(1)
		go func(store domain.StoreID) {
			defer wg.Done()
			quote := s.fetchQuote(ctx, store, item, postal)
			mu.Lock()
			quotes[store] = quote
			mu.Unlock()
		}(store)
	}
	wg.Wait()

	return CompareItem(item, quotes, stores)
}

// fetchQuote resolves one (item, store) quote: cache, then provider with a
// bounded timeout. Any failure downgrades to an unavailable quote so one
// store can never abort the batch.
func (s *PricingService) fetchQuote(ctx context.Context, store domain.StoreID, item domain.ListItem, postal string) *domain.StorePrice {
	cacheKey := quoteCacheKey(store, item.RawText, postal)

	if cached := s.getCachedQuote(ctx, cacheKey); cached != nil {
		if s.debug {
			log.Printf("[PRICING] cache hit %s", cacheKey)
		}
		return cached
	}

	provider, ok := s.providers[store]
	if !ok {
		log.Printf("[PRICING] no provider registered for store %q", store)
		return domain.UnavailableQuote(item.RawText)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	quote, err := provider.FetchQuote(fetchCtx, item, postal)
	if err != nil || quote == nil {
		log.Printf("[PRICING] %s quote failed for %q: %v", store, item.RawText, err)
		return domain.UnavailableQuote(item.RawText)
	}

	if quote.Usable() {
		if err := s.cache.Set(ctx, cacheKey, quote, s.cacheTTL); err != nil {
			log.Printf("[PRICING] cache write failed for %s: %v", cacheKey, err)
		}
	}

	return quote
}

// quoteCacheKey builds a normalized cache key for one (store, item, postal)
// lookup. Format: "quote:{store}:{normalized raw text}:{postal}"
func quoteCacheKey(store domain.StoreID, rawText, postal string) string {
	return fmt.Sprintf("quote:%s:%s:%s", store, normalizeForCacheKey(rawText), normalizeForCacheKey(postal))
}

// normalizeForCacheKey lowercases, strips special characters, and collapses
// whitespace so spelling variants of the same item share a cache entry.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getCachedQuote reads a quote back from cache. The memory cache round-trips
// values through JSON, so a stored *StorePrice may come back as a generic
// map; both shapes are handled.
func (s *PricingService) getCachedQuote(ctx context.Context, key string) *domain.StorePrice {
	value, err := s.cache.Get(ctx, key)
	if err != nil || value == nil {
		return nil
	}

	if quote, ok := value.(*domain.StorePrice); ok {
		return quote
	}
	if raw, ok := value.(map[string]interface{}); ok {
		return mapToStorePrice(raw)
	}
	return nil
}

// mapToStorePrice converts a JSON-decoded map back into a StorePrice
func mapToStorePrice(data map[string]interface{}) *domain.StorePrice {
	quote := &domain.StorePrice{}

	if v, ok := data["price"].(float64); ok {
		quote.Price = v
	}
	if v, ok := data["unit_price"].(float64); ok {
		quote.UnitPrice = v
	}
	if v, ok := data["available"].(bool); ok {
		quote.Available = v
	}
	if v, ok := data["product_name"].(string); ok {
		quote.ProductName = v
	}
	if v, ok := data["size"].(string); ok {
		quote.Size = v
	}
	if v, ok := data["url"].(string); ok {
		quote.URL = v
	}

	return quote
}
