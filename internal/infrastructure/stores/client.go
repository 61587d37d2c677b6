package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pricecart/backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxFetchAttempts = 3

// Client talks to a ScrapingBee-style scraping proxy. The proxy renders the
// retailer page and applies extract rules server-side, so adapters receive a
// small JSON document instead of raw HTML.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// FetchOptions control one proxy fetch
type FetchOptions struct {
	RenderJS     bool
	CountryCode  string
	ExtractRules map[string]string
}

// NewClient creates a scraping-proxy client. Retailer sites rate-limit
// aggressively, so requests are throttled to roughly one per second with a
// small burst.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Fetch retrieves targetURL through the proxy and returns the response body.
// Transient failures are retried with exponential backoff.
func (c *Client) Fetch(ctx context.Context, targetURL string, opts FetchOptions) ([]byte, error) {
	reqURL, err := c.buildRequestURL(targetURL, opts)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		body, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if c.debug {
			log.Printf("[SCRAPE] attempt %d/%d failed for %s: %v", attempt, maxFetchAttempts, targetURL, err)
		}

		if attempt < maxFetchAttempts {
			select {
			case <-time.After(exponentialBackoff(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrQuoteFetchFailure, lastErr)
}

// buildRequestURL assembles the proxy URL with api key, target, and options
func (c *Client) buildRequestURL(targetURL string, opts FetchOptions) (string, error) {
	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("url", targetURL)

	if opts.RenderJS {
		params.Add("render_js", "true")
	} else {
		params.Add("render_js", "false")
	}

	country := opts.CountryCode
	if country == "" {
		country = "ca"
	}
	params.Add("country_code", country)

	if len(opts.ExtractRules) > 0 {
		rules, err := json.Marshal(opts.ExtractRules)
		if err != nil {
			return "", fmt.Errorf("encoding extract rules: %w", err)
		}
		params.Add("extract_rules", string(rules))
	}

	return fmt.Sprintf("%s?%s", c.baseURL, params.Encode()), nil
}

// doRequest executes a single proxy request and returns the body on 200
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/html;q=0.9")
	req.Header.Set("Accept-Language", "en-CA,en-US;q=0.9,en;q=0.8")
	req.Header.Set("User-Agent", "PriceCart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// exponentialBackoff doubles the wait per attempt: 500ms, 1s, 2s, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<uint(attempt-1))) * time.Millisecond
}
