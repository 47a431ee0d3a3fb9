package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/service"
	"github.com/fireflyapp/firefly-server/internal/testutil"
)

func setupSnapshotHandler(t *testing.T, mock *testutil.MockQuoteClient) (*SnapshotHandler, *repository.HoldingsRepository, *repository.SnapshotRepository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	holdingsRepo := repository.NewHoldingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	snapshotService := service.NewSnapshotService(holdingsRepo, snapshotRepo, mock, 0)
	return NewSnapshotHandler(snapshotRepo, snapshotService), holdingsRepo, snapshotRepo
}

func TestSnapshotHandler_Snapshots(t *testing.T) {
	t.Run("returns stored snapshots ascending by date", func(t *testing.T) {
		handler, _, snapshotRepo := setupSnapshotHandler(t, testutil.NewMockQuoteClient())

		if err := snapshotRepo.Upsert("2026-08-29", 6000); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
		if err := snapshotRepo.Upsert("2026-08-28", 5900); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/snapshots", nil)
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.PortfolioSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(response))
		}
		if response[0].Date != "2026-08-28" || response[1].Date != "2026-08-29" {
			t.Errorf("Expected ascending dates, got %+v", response)
		}
	})

	t.Run("returns empty array when no snapshots exist", func(t *testing.T) {
		handler, _, _ := setupSnapshotHandler(t, testutil.NewMockQuoteClient())

		req := httptest.NewRequest(http.MethodGet, "/api/snapshots", nil)
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected empty JSON array, got %q", body)
		}
	})
}

func TestSnapshotHandler_RecordDaily(t *testing.T) {
	t.Run("runs the daily job synchronously", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().WithPrice("VUAG.L", 101.20)
		handler, holdingsRepo, snapshotRepo := setupSnapshotHandler(t, mock)

		holdings := []model.Holding{
			testutil.NewHolding("VUAG").WithUnits(50).Build(),
			testutil.NewCashHolding(500).Build(),
		}
		if err := holdingsRepo.Save(holdings); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/record-daily", nil)
		w := httptest.NewRecorder()

		handler.RecordDaily(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]bool
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)
		if !response["ok"] {
			t.Error("Expected ok:true response")
		}

		snapshots, err := snapshotRepo.List()
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		today := time.Now().Format("2006-01-02")
		if len(snapshots) != 1 || snapshots[0].Date != today {
			t.Errorf("Expected one snapshot for today, got %+v", snapshots)
		}
	})

	t.Run("is a 200 no-op when nothing is synced", func(t *testing.T) {
		handler, _, snapshotRepo := setupSnapshotHandler(t, testutil.NewMockQuoteClient())

		req := httptest.NewRequest(http.MethodPost, "/api/record-daily", nil)
		w := httptest.NewRecorder()

		handler.RecordDaily(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		snapshots, _ := snapshotRepo.List()
		if len(snapshots) != 0 {
			t.Errorf("Expected no snapshots, got %d", len(snapshots))
		}
	})
}
