// Package yahoo provides a client for fetching latest-price quotes from the
// Yahoo Finance chart API. The API is unofficial and keyless; requests carry
// a browser-style User-Agent to avoid being blocked.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
)

const (
	// DefaultBaseURL is the Yahoo Finance chart API endpoint.
	DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	// DefaultTimeout bounds each quote request.
	DefaultTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (compatible; Firefly/1.0)"
)

// Client is the interface for fetching a single latest-price quote.
// Implementations return a positive, normalized price; apperrors.ErrNoQuote
// when the provider has nothing usable; or a transport error otherwise.
type Client interface {
	FetchQuote(ctx context.Context, ticker string) (float64, error)
}

// FinanceClient fetches quotes from the Yahoo Finance chart API.
type FinanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the client
type ClientOption func(*FinanceClient)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *FinanceClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *FinanceClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP settings.
func NewFinanceClient(opts ...ClientOption) *FinanceClient {
	c := &FinanceClient{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchQuote returns the latest regular-market price for a ticker, normalized
// (pence correction for LSE listings) and rounded to two decimals.
//
// Outcomes:
//   - positive price, nil error: a usable quote
//   - apperrors.ErrNoQuote: non-2xx status, malformed payload, or a missing,
//     NaN, zero, or negative price
//   - any other error: transport failure (network, timeout)
func (c *FinanceClient) FetchQuote(ctx context.Context, ticker string) (float64, error) {
	reqURL := fmt.Sprintf("%s/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("yahoo request for %s: %w", ticker, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("yahoo request for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("yahoo status %d for %s: %w", resp.StatusCode, ticker, apperrors.ErrNoQuote)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("yahoo response for %s: %w", ticker, err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, fmt.Errorf("yahoo payload for %s: %w", ticker, apperrors.ErrNoQuote)
	}

	if response.Chart.Error != nil || len(response.Chart.Result) == 0 {
		return 0, fmt.Errorf("no result for %s: %w", ticker, apperrors.ErrNoQuote)
	}

	raw := response.Chart.Result[0].Meta.RegularMarketPrice
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
		return 0, fmt.Errorf("no usable price for %s: %w", ticker, apperrors.ErrNoQuote)
	}

	return NormalizePrice(ticker, raw), nil
}

// NormalizePrice converts a raw provider price to major currency units and
// rounds it to two decimals (half-up). LSE quotes are sometimes reported in
// pence; a raw price at or above 1000 on an LSE ticker is divided by 100.
// Every quote-parsing call site must use this single definition.
func NormalizePrice(ticker string, raw float64) float64 {
	if isPencePriced(ticker) && raw >= 1000 {
		raw = raw / 100
	}
	price, _ := decimal.NewFromFloat(raw).Round(2).Float64()
	return price
}

// isPencePriced reports whether the ticker belongs to the venue whose quotes
// may be denominated in minor units (LSE listings).
func isPencePriced(ticker string) bool {
	return strings.HasSuffix(ticker, ".L") || strings.HasSuffix(ticker, ".LON")
}
