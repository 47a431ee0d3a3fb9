package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fireflyapp/firefly-server/internal/service"
	"github.com/fireflyapp/firefly-server/internal/testutil"
)

func TestQuoteHandler_Quote(t *testing.T) {
	t.Run("returns price for a known symbol", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().WithPrice("VUAG.L", 444.29)
		handler := NewQuoteHandler(service.NewQuoteService(mock))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/quote", map[string]string{"symbol": "VUAG.L"})
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response QuoteResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Price != 444.29 {
			t.Errorf("Expected price 444.29, got %v", response.Price)
		}
		if response.Error != "" {
			t.Errorf("Expected no error, got %q", response.Error)
		}
	})

	t.Run("returns 400 when symbol is missing", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient()
		handler := NewQuoteHandler(service.NewQuoteService(mock))

		req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("no-quote is a graceful 200 with price 0", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient()
		handler := NewQuoteHandler(service.NewQuoteService(mock))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/quote", map[string]string{"symbol": "NOPE"})
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var response QuoteResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Price != 0 {
			t.Errorf("Expected price 0, got %v", response.Price)
		}
		if response.Error == "" {
			t.Error("Expected an error message for a no-quote outcome")
		}
	})

	t.Run("transport failure returns 500", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().WithError(errors.New("connection refused"))
		handler := NewQuoteHandler(service.NewQuoteService(mock))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/quote", map[string]string{"symbol": "VUAG.L"})
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}

		var response QuoteResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Price != 0 {
			t.Errorf("Expected price 0, got %v", response.Price)
		}
	})
}
