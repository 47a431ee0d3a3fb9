package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/service"
)

// HoldingsHandler handles HTTP requests for the client's holdings sync.
type HoldingsHandler struct {
	holdingsService *service.HoldingsService
}

// NewHoldingsHandler creates a new HoldingsHandler with the provided service dependency.
func NewHoldingsHandler(holdingsService *service.HoldingsService) *HoldingsHandler {
	return &HoldingsHandler{
		holdingsService: holdingsService,
	}
}

// syncHoldingsRequest is the sync body. UkHoldings must be present and a
// list; a pointer distinguishes "missing" from "empty".
type syncHoldingsRequest struct {
	UkHoldings *[]model.Holding `json:"ukHoldings"`
}

// SyncHoldings handles POST requests that replace the stored holdings
// snapshot wholesale.
//
// Endpoint: POST /api/sync-holdings
// Body: {"ukHoldings": [Holding, ...]}
// Response: 200 OK with {ok: true}
// Error: 400 Bad Request if the body isn't a ukHoldings list,
// 500 Internal Server Error if the write fails
func (h *HoldingsHandler) SyncHoldings(w http.ResponseWriter, r *http.Request) {
	var req syncHoldingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UkHoldings == nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Body must include ukHoldings array",
		})
		return
	}

	if err := h.holdingsService.Sync(*req.UkHoldings); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to sync holdings",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
