package handlers

import (
	"net/http"

	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/service"
)

// SnapshotHandler handles HTTP requests for portfolio snapshots: the
// historical list and the manual daily-job trigger.
type SnapshotHandler struct {
	snapshotRepo    *repository.SnapshotRepository
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided dependencies.
func NewSnapshotHandler(snapshotRepo *repository.SnapshotRepository, snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotRepo:    snapshotRepo,
		snapshotService: snapshotService,
	}
}

// Snapshots handles GET requests for the full snapshot history.
//
// Endpoint: GET /api/snapshots
// Response: 200 OK with an array of {date, valueGBP}, ascending by date
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotRepo.List()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to load snapshots",
		})
		return
	}

	respondJSON(w, http.StatusOK, snapshots)
}

// RecordDaily handles POST requests that trigger the daily snapshot job
// synchronously, outside its schedule. Provided for manual and test use.
//
// Endpoint: POST /api/record-daily
// Response: 200 OK with {ok: true}
// Error: 500 Internal Server Error with the job error message
func (h *SnapshotHandler) RecordDaily(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.RecordDailySnapshot(r.Context()); err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
