package repository

import (
	"errors"
	"testing"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/testutil"
)

func TestHoldingsRepository_Get(t *testing.T) {
	t.Run("returns ErrNoHoldingsSynced before first sync", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewHoldingsRepository(db)

		_, err := repo.Get()
		if !errors.Is(err, apperrors.ErrNoHoldingsSynced) {
			t.Errorf("Expected ErrNoHoldingsSynced, got %v", err)
		}
	})

	t.Run("round-trips saved holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewHoldingsRepository(db)

		holdings := []model.Holding{
			testutil.NewHolding("VUAG").WithUnits(50).Build(),
			testutil.NewCashHolding(500).Build(),
		}
		if err := repo.Save(holdings); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		sync, err := repo.Get()
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(sync.Holdings) != 2 {
			t.Fatalf("Expected 2 holdings, got %d", len(sync.Holdings))
		}
		if sync.Holdings[0].Symbol != "VUAG" || sync.Holdings[0].Units != 50 {
			t.Errorf("Unexpected first holding: %+v", sync.Holdings[0])
		}
		if sync.UpdatedAt.IsZero() {
			t.Error("Expected updated timestamp to be set")
		}
	})
}

func TestHoldingsRepository_Save(t *testing.T) {
	t.Run("replaces the snapshot wholesale", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewHoldingsRepository(db)

		first := []model.Holding{testutil.NewHolding("VUAG").Build()}
		if err := repo.Save(first); err != nil {
			t.Fatalf("First save failed: %v", err)
		}

		second := []model.Holding{
			testutil.NewHolding("EQQQ").Build(),
			testutil.NewHolding("SGLN").Build(),
		}
		if err := repo.Save(second); err != nil {
			t.Fatalf("Second save failed: %v", err)
		}

		sync, err := repo.Get()
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(sync.Holdings) != 2 {
			t.Fatalf("Expected 2 holdings after overwrite, got %d", len(sync.Holdings))
		}
		if sync.Holdings[0].Symbol != "EQQQ" {
			t.Errorf("Expected overwritten holdings, got %+v", sync.Holdings)
		}

		// Singleton invariant: still exactly one row.
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM holdings_sync").Scan(&count); err != nil {
			t.Fatalf("Count query failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected singleton row, got %d rows", count)
		}
	})

	t.Run("accepts an empty list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := NewHoldingsRepository(db)

		if err := repo.Save([]model.Holding{}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		sync, err := repo.Get()
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(sync.Holdings) != 0 {
			t.Errorf("Expected empty holdings, got %d", len(sync.Holdings))
		}
	})
}
