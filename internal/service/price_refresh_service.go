package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/ticker"
	"github.com/fireflyapp/firefly-server/internal/yahoo"
)

// PriceRefreshService keeps the price cache fresh so clients can read a
// recent price without waiting on a live provider fetch.
type PriceRefreshService struct {
	holdingsRepo *repository.HoldingsRepository
	cacheRepo    *repository.PriceCacheRepository
	quoteClient  yahoo.Client
	limiter      *rate.Limiter
}

// NewPriceRefreshService creates a new PriceRefreshService. requestDelay is
// the minimum spacing between consecutive quote requests during a run.
func NewPriceRefreshService(
	holdingsRepo *repository.HoldingsRepository,
	cacheRepo *repository.PriceCacheRepository,
	quoteClient yahoo.Client,
	requestDelay time.Duration,
) *PriceRefreshService {
	return &PriceRefreshService{
		holdingsRepo: holdingsRepo,
		cacheRepo:    cacheRepo,
		quoteClient:  quoteClient,
		limiter:      rate.NewLimiter(rate.Every(requestDelay), 1),
	}
}

// RefreshPrices fetches a quote for every synced non-cash GBP holding and
// writes a cache entry for each one that returned a positive price. Holdings
// whose fetch failed are dropped without a fallback write; the cache simply
// stays stale for them until the next cycle. Iteration is strictly
// sequential and throttled, same as the daily job.
func (s *PriceRefreshService) RefreshPrices(ctx context.Context) error {
	sync, err := s.holdingsRepo.Get()
	if errors.Is(err, apperrors.ErrNoHoldingsSynced) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load holdings sync: %w", err)
	}

	count := 0

	for _, h := range sync.Holdings {
		if h.IsCash() || h.Currency != model.HomeCurrency {
			continue
		}

		resolved := ticker.Resolve(h.Symbol, h.ListingVenue())
		if resolved == "" {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		price, err := s.quoteClient.FetchQuote(ctx, resolved)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNoQuote) {
				log.Printf("[price-refresh] quote fetch failed for %s: %v", resolved, err)
			}
			continue
		}

		if err := s.cacheRepo.Upsert(resolved, price, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to cache price for %s: %w", resolved, err)
		}
		count++
	}

	if count > 0 {
		log.Printf("[price-refresh] cached %d prices", count)
	}
	return nil
}
