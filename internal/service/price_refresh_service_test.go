package service

import (
	"context"
	"testing"

	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/testutil"
)

func setupRefreshService(t *testing.T, mock *testutil.MockQuoteClient) (*PriceRefreshService, *repository.HoldingsRepository, *repository.PriceCacheRepository) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	holdingsRepo := repository.NewHoldingsRepository(db)
	cacheRepo := repository.NewPriceCacheRepository(db)
	svc := NewPriceRefreshService(holdingsRepo, cacheRepo, mock, 0)
	return svc, holdingsRepo, cacheRepo
}

func TestPriceRefreshService_RefreshPrices(t *testing.T) {
	t.Run("caches a price for every successful quote", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().
			WithPrice("VUAG.L", 444.29).
			WithPrice("EQQQ.L", 412.50)
		svc, holdingsRepo, cacheRepo := setupRefreshService(t, mock)

		holdings := []model.Holding{
			testutil.NewHolding("VUAG").Build(),
			testutil.NewHolding("EQQQ").Build(),
		}
		if err := holdingsRepo.Save(holdings); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := svc.RefreshPrices(context.Background()); err != nil {
			t.Fatalf("RefreshPrices failed: %v", err)
		}

		entries, err := cacheRepo.GetAll()
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("Expected 2 cached prices, got %d", len(entries))
		}
	})

	t.Run("skips cash and non-GBP holdings entirely", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().WithPrice("VUAG.L", 444.29)
		svc, holdingsRepo, cacheRepo := setupRefreshService(t, mock)

		holdings := []model.Holding{
			testutil.NewCashHolding(500).Build(),
			testutil.NewHolding("AAPL").OnVenue(model.VenueNASDAQ).InCurrency("USD").Build(),
			testutil.NewHolding("VUAG").Build(),
		}
		if err := holdingsRepo.Save(holdings); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := svc.RefreshPrices(context.Background()); err != nil {
			t.Fatalf("RefreshPrices failed: %v", err)
		}

		if mock.CallCount() != 1 {
			t.Errorf("Expected a single quote call, got %v", mock.Calls)
		}

		entries, _ := cacheRepo.GetAll()
		if len(entries) != 1 || entries[0].Ticker != "VUAG.L" {
			t.Errorf("Expected only VUAG.L cached, got %+v", entries)
		}
	})

	t.Run("drops failed quotes without writing", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient().WithPrice("VUAG.L", 444.29)
		svc, holdingsRepo, cacheRepo := setupRefreshService(t, mock)

		holdings := []model.Holding{
			testutil.NewHolding("VUAG").Build(),
			testutil.NewHolding("NOPE").Build(), // no price configured: no-quote
		}
		if err := holdingsRepo.Save(holdings); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if err := svc.RefreshPrices(context.Background()); err != nil {
			t.Fatalf("RefreshPrices must not fail on a no-quote: %v", err)
		}

		entries, _ := cacheRepo.GetAll()
		if len(entries) != 1 || entries[0].Ticker != "VUAG.L" {
			t.Errorf("Expected failed ticker omitted from cache, got %+v", entries)
		}
	})

	t.Run("no-op when nothing synced", func(t *testing.T) {
		mock := testutil.NewMockQuoteClient()
		svc, _, cacheRepo := setupRefreshService(t, mock)

		if err := svc.RefreshPrices(context.Background()); err != nil {
			t.Fatalf("Expected silent no-op, got %v", err)
		}

		entries, _ := cacheRepo.GetAll()
		if len(entries) != 0 {
			t.Errorf("Expected empty cache, got %d entries", len(entries))
		}
		if mock.CallCount() != 0 {
			t.Errorf("Expected zero quote calls, got %d", mock.CallCount())
		}
	})
}
