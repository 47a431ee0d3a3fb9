package handlers

import (
	"net/http"
	"time"

	"github.com/fireflyapp/firefly-server/internal/service"
)

// PriceCacheHandler handles HTTP requests for the cached-prices read path.
type PriceCacheHandler struct {
	priceCacheService *service.PriceCacheService
}

// NewPriceCacheHandler creates a new PriceCacheHandler with the provided service dependency.
func NewPriceCacheHandler(priceCacheService *service.PriceCacheService) *PriceCacheHandler {
	return &PriceCacheHandler{
		priceCacheService: priceCacheService,
	}
}

// CachedPricesResponse maps tickers to their last cached price. Updated is
// the freshest cache timestamp, or null when nothing is cached yet.
type CachedPricesResponse struct {
	Prices  map[string]float64 `json:"prices"`
	Updated *string            `json:"updated"`
}

// CachedPrices handles GET requests for the full price cache.
//
// Endpoint: GET /api/cached-prices
// Response: 200 OK with {prices: {ticker: price}, updated: timestamp|null}
// Error: 500 Internal Server Error if retrieval fails
func (h *PriceCacheHandler) CachedPrices(w http.ResponseWriter, r *http.Request) {
	prices, updated, err := h.priceCacheService.CachedPrices()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to load price cache",
		})
		return
	}

	response := CachedPricesResponse{Prices: prices}
	if updated != nil {
		formatted := updated.UTC().Format(time.RFC3339)
		response.Updated = &formatted
	}

	respondJSON(w, http.StatusOK, response)
}
