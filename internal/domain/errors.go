package domain

import "errors"

var (
	// ErrMissingListID is returned when a price run request has no list id
	ErrMissingListID = errors.New("list ID is required")

	// ErrNoStores is returned when a price run request selects no stores
	ErrNoStores = errors.New("at least one store must be selected")

	// ErrUnknownStore is returned when a store identifier is not in the supported set
	ErrUnknownStore = errors.New("unknown store")

	// ErrEmptyList is returned when a price run request carries no items
	ErrEmptyList = errors.New("list has no items")

	// ErrQuoteFetchFailure wraps transport failures from a quote provider
	ErrQuoteFetchFailure = errors.New("quote fetch failed")

	// ErrRateLimited is returned when a provider's rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when a quote is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
