package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fireflyapp/firefly-server/internal/model"
)

// PriceCacheRepository provides data access methods for the price_cache
// table: one best-effort last-known price per resolved ticker.
type PriceCacheRepository struct {
	db *sql.DB
}

// NewPriceCacheRepository creates a new PriceCacheRepository with the provided database connection.
func NewPriceCacheRepository(db *sql.DB) *PriceCacheRepository {
	return &PriceCacheRepository{db: db}
}

// Upsert writes the latest price for a ticker, replacing any existing entry.
func (r *PriceCacheRepository) Upsert(ticker string, price float64, updatedAt time.Time) error {
	query := `INSERT OR REPLACE INTO price_cache (ticker, price, updated_at) VALUES (?, ?, ?)`

	if _, err := r.db.Exec(query, ticker, price, updatedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to upsert price cache for %s: %w", ticker, err)
	}

	return nil
}

// GetAll retrieves every cached price entry.
// Returns an empty slice if the cache is empty.
func (r *PriceCacheRepository) GetAll() ([]model.PriceCacheEntry, error) {
	query := `SELECT ticker, price, updated_at FROM price_cache`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_cache table: %w", err)
	}
	defer rows.Close()

	entries := []model.PriceCacheEntry{}

	for rows.Next() {
		var e model.PriceCacheEntry
		var updatedAtStr string

		if err := rows.Scan(&e.Ticker, &e.Price, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan price_cache table results: %w", err)
		}

		e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price cache timestamp: %w", err)
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_cache table: %w", err)
	}

	return entries, nil
}
