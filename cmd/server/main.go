package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricecart/backend/config"
	httpDelivery "github.com/pricecart/backend/internal/delivery/http"
	"github.com/pricecart/backend/internal/domain"
	"github.com/pricecart/backend/internal/infrastructure/cache"
	"github.com/pricecart/backend/internal/infrastructure/stores"
	"github.com/pricecart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	providers := buildProviders(cfg)

	// Initialize usecase layer
	pricingService := usecase.NewPricingService(
		memoryCache,
		providers,
		usecase.PricingServiceConfig{
			FetchTimeout:       cfg.Pricing.FetchTimeout,
			CacheTTL:           cfg.Cache.TTL,
			DefaultPostal:      cfg.Pricing.DefaultPostal,
			EnableDebugLogging: cfg.Pricing.EnableDebugLogging,
		},
	)

	log.Printf("Pricing: stores=%d, fetch_timeout=%s, postal=%s",
		len(providers), cfg.Pricing.FetchTimeout, cfg.Pricing.DefaultPostal)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pricingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildProviders wires one quote provider per supported store. With a scraping
// API key the providers hit live retailer search pages through the proxy;
// without one the server falls back to deterministic synthetic quotes.
func buildProviders(cfg *config.Config) []domain.QuoteProvider {
	if cfg.Scrape.APIKey == "" {
		log.Printf("WARNING: no scraping API key configured - serving synthetic quotes")
		providers := make([]domain.QuoteProvider, 0, len(domain.CanonicalStoreOrder))
		for _, store := range domain.CanonicalStoreOrder {
			providers = append(providers, stores.NewSyntheticProvider(store))
		}
		return providers
	}

	client := stores.NewClient(cfg.Scrape.APIKey, cfg.Scrape.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
		log.Printf("Scrape client debug mode enabled")
	}

	log.Printf("Scrape proxy configured: %s", cfg.Scrape.BaseURL)

	return []domain.QuoteProvider{
		stores.NewNoFrills(client),
		stores.NewFoodBasics(client),
		stores.NewWalmart(client),
		stores.NewCostco(client),
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
