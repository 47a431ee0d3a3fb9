package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/service"
)

// QuoteHandler handles HTTP requests for the live quote proxy.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependency.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// QuoteResponse is the quote proxy response. Price is 0 whenever Error is set.
type QuoteResponse struct {
	Price float64 `json:"price"`
	Error string  `json:"error,omitempty"`
}

// Quote handles GET requests for a single latest-price quote.
//
// Endpoint: GET /api/quote?symbol=<ticker>
// Response: 200 OK with the price, or with price 0 and an error message when
// the provider had no usable quote (an ordinary outcome, not a failure).
// Error: 400 Bad Request if symbol is missing, 500 on transport failure.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")

	price, err := h.quoteService.GetQuote(r.Context(), symbol)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, QuoteResponse{Price: price})
	case errors.Is(err, apperrors.ErrMissingSymbol):
		respondJSON(w, http.StatusBadRequest, QuoteResponse{Price: 0, Error: "Missing symbol"})
	case errors.Is(err, apperrors.ErrNoQuote):
		respondJSON(w, http.StatusOK, QuoteResponse{Price: 0, Error: fmt.Sprintf("No quote for %q from Yahoo.", symbol)})
	default:
		respondJSON(w, http.StatusInternalServerError, QuoteResponse{Price: 0, Error: fmt.Sprintf("Yahoo: %v", err)})
	}
}
