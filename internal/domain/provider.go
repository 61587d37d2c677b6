package domain

import (
	"context"
	"time"
)

// QuoteProvider is one retailer's price-quote capability. Implementations
// are expected to return an unavailable quote for ordinary "not found"
// conditions and reserve errors for genuine transport failures; the caller
// converts those to unavailable quotes too, so a failing store never sinks a
// whole run.
type QuoteProvider interface {
	StoreID() StoreID
	FetchQuote(ctx context.Context, item ListItem, postal string) (*StorePrice, error)
}

// CacheRepository defines the interface for quote caching
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
