package testutil

import (
	"context"
	"fmt"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
)

// MockQuoteClient is a mock implementation of yahoo.Client for testing.
// It returns predefined prices instead of making actual API calls.
type MockQuoteClient struct {
	// Prices maps tickers to the price to return. Tickers absent from the
	// map yield a no-quote outcome.
	Prices map[string]float64
	// Err, when set, is returned from every fetch (simulates transport failure).
	Err error
	// Calls records every ticker fetched, in order.
	Calls []string
}

// NewMockQuoteClient creates a new mock quote client with no prices configured.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Prices: map[string]float64{},
	}
}

// FetchQuote returns the configured price for a ticker, a no-quote outcome
// for unknown tickers, or the configured error.
func (m *MockQuoteClient) FetchQuote(_ context.Context, ticker string) (float64, error) {
	m.Calls = append(m.Calls, ticker)
	if m.Err != nil {
		return 0, m.Err
	}
	price, ok := m.Prices[ticker]
	if !ok {
		return 0, fmt.Errorf("no result for %s: %w", ticker, apperrors.ErrNoQuote)
	}
	return price, nil
}

// WithPrice configures the mock to return the given price for a ticker.
func (m *MockQuoteClient) WithPrice(ticker string, price float64) *MockQuoteClient {
	m.Prices[ticker] = price
	return m
}

// WithError configures the mock to return the specified error from every fetch.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.Err = err
	return m
}

// CallCount returns how many fetches were made.
func (m *MockQuoteClient) CallCount() int {
	return len(m.Calls)
}
