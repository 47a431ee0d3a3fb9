package service

import (
	"time"

	"github.com/fireflyapp/firefly-server/internal/repository"
)

// PriceCacheService exposes the cached prices in the shape the client reads:
// a ticker-to-price map plus the timestamp of the freshest entry.
type PriceCacheService struct {
	cacheRepo *repository.PriceCacheRepository
}

// NewPriceCacheService creates a new PriceCacheService
func NewPriceCacheService(cacheRepo *repository.PriceCacheRepository) *PriceCacheService {
	return &PriceCacheService{cacheRepo: cacheRepo}
}

// CachedPrices returns all cached prices keyed by ticker and the most recent
// update timestamp across entries. updated is nil when the cache is empty;
// consumers must treat absence as "no data", never as a zero price.
func (s *PriceCacheService) CachedPrices() (map[string]float64, *time.Time, error) {
	entries, err := s.cacheRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}

	prices := make(map[string]float64, len(entries))
	var updated *time.Time

	for _, e := range entries {
		prices[e.Ticker] = e.Price
		if updated == nil || e.UpdatedAt.After(*updated) {
			t := e.UpdatedAt
			updated = &t
		}
	}

	return prices, updated, nil
}
