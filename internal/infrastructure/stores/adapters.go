package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pricecart/backend/internal/domain"
)

// nonPriceCharsRegex strips currency symbols and thousands separators from
// scraped price text
var nonPriceCharsRegex = regexp.MustCompile(`[^0-9.]`)

// productExtract is the JSON document the proxy produces from the extract
// rules: the first search hit's fields, all as raw text.
type productExtract struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	UnitPrice string `json:"unit_price"`
	Size      string `json:"size"`
	URL       string `json:"url"`
}

// searchAdapter is one retailer's quote provider over the scraping proxy.
// Only the search URL, extract rules, and rendering mode differ per store;
// everything else is shared.
type searchAdapter struct {
	store        domain.StoreID
	client       *Client
	searchURL    func(query, postal string) string
	renderJS     bool
	extractRules map[string]string
}

// NewNoFrills creates the No Frills quote provider
func NewNoFrills(client *Client) domain.QuoteProvider {
	return &searchAdapter{
		store:  domain.StoreNoFrills,
		client: client,
		searchURL: func(query, postal string) string {
			return "https://www.nofrills.ca/search?search-bar=" + query
		},
		renderJS: true,
		extractRules: map[string]string{
			"name":       "[data-testid=product-title]",
			"price":      "[data-testid=price]",
			"unit_price": "[data-testid=comparison-price]",
			"size":       "[data-testid=product-package-size]",
			"url":        "[data-testid=product-tile] a@href",
		},
	}
}

// NewFoodBasics creates the Food Basics quote provider
func NewFoodBasics(client *Client) domain.QuoteProvider {
	return &searchAdapter{
		store:  domain.StoreFoodBasics,
		client: client,
		searchURL: func(query, postal string) string {
			return "https://www.foodbasics.ca/search?filter=" + query
		},
		renderJS: false,
		extractRules: map[string]string{
			"name":       ".default-product-tile .head__title",
			"price":      ".default-product-tile .price-update",
			"unit_price": ".default-product-tile .pricing__secondary-price",
			"size":       ".default-product-tile .head__unit-details",
			"url":        ".default-product-tile a@href",
		},
	}
}

// NewWalmart creates the Walmart quote provider
func NewWalmart(client *Client) domain.QuoteProvider {
	return &searchAdapter{
		store:  domain.StoreWalmart,
		client: client,
		searchURL: func(query, postal string) string {
			return "https://www.walmart.ca/search?q=" + query
		},
		renderJS: true,
		extractRules: map[string]string{
			"name":       `[data-automation="name"]`,
			"price":      `[data-automation="price"]`,
			"unit_price": `[data-automation="unit-price"]`,
			"size":       `[data-automation="product-size"]`,
			"url":        `[data-automation="product-card"] a@href`,
		},
	}
}

// NewCostco creates the Costco quote provider
func NewCostco(client *Client) domain.QuoteProvider {
	return &searchAdapter{
		store:  domain.StoreCostco,
		client: client,
		searchURL: func(query, postal string) string {
			return "https://www.costco.ca/CatalogSearch?keyword=" + query
		},
		renderJS: true,
		extractRules: map[string]string{
			"name":  ".product-tile-set .description a",
			"price": ".product-tile-set .price",
			"size":  ".product-tile-set .product-features",
			"url":   ".product-tile-set .description a@href",
		},
	}
}

func (a *searchAdapter) StoreID() domain.StoreID {
	return a.store
}

// FetchQuote searches the retailer for the item and maps the first hit to a
// quote. "Nothing found" is an unavailable quote, not an error; errors are
// reserved for transport failures.
func (a *searchAdapter) FetchQuote(ctx context.Context, item domain.ListItem, postal string) (*domain.StorePrice, error) {
	target := a.searchURL(url.QueryEscape(item.RawText), url.QueryEscape(postal))

	body, err := a.client.Fetch(ctx, target, FetchOptions{
		RenderJS:     a.renderJS,
		ExtractRules: a.extractRules,
	})
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", a.store, err)
	}

	var extracted productExtract
	if err := json.Unmarshal(body, &extracted); err != nil {
		return nil, fmt.Errorf("%w: decoding %s extract: %v", domain.ErrQuoteFetchFailure, a.store, err)
	}

	price := parsePriceText(extracted.Price)
	if price <= 0 {
		return domain.UnavailableQuote(item.RawText), nil
	}

	name := strings.TrimSpace(extracted.Name)
	if name == "" {
		name = item.RawText
	}

	// Prefer the retailer's own unit price; fall back to deriving one from
	// the scraped size text.
	unitPrice := parsePriceText(extracted.UnitPrice)
	if unitPrice <= 0 {
		parsed := domain.ParseSize(extracted.Size)
		unitPrice = domain.ComputeUnitPrice(price, parsed.Qty, string(parsed.Unit))
	}

	return &domain.StorePrice{
		Price:       price,
		UnitPrice:   unitPrice,
		Available:   true,
		ProductName: name,
		Size:        strings.TrimSpace(extracted.Size),
		URL:         absoluteURL(a.store, extracted.URL),
	}, nil
}

// parsePriceText pulls a number out of scraped price copy like "$4.50 ea".
// Unparseable text yields 0, which downstream treats as "no usable quote".
func parsePriceText(text string) float64 {
	cleaned := nonPriceCharsRegex.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// absoluteURL resolves store-relative product links
func absoluteURL(store domain.StoreID, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return fmt.Sprintf("https://www.%s.ca%s", store, href)
}
