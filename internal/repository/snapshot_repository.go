package repository

import (
	"database/sql"
	"fmt"

	"github.com/fireflyapp/firefly-server/internal/model"
)

// SnapshotRepository provides data access methods for the snapshots table,
// which holds one finalized portfolio valuation per calendar date.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Upsert writes the valuation for a date, replacing any existing row for that
// date. The date PRIMARY KEY guarantees at most one row per calendar day even
// if a job run is accidentally repeated.
func (r *SnapshotRepository) Upsert(date string, valueGBP float64) error {
	query := `INSERT OR REPLACE INTO snapshots (date, value_gbp) VALUES (?, ?)`

	if _, err := r.db.Exec(query, date, valueGBP); err != nil {
		return fmt.Errorf("failed to upsert snapshot for %s: %w", date, err)
	}

	return nil
}

// List retrieves all snapshots ordered ascending by date.
// Returns an empty slice if no snapshots exist.
func (r *SnapshotRepository) List() ([]model.PortfolioSnapshot, error) {
	query := `SELECT date, value_gbp FROM snapshots ORDER BY date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.PortfolioSnapshot{}

	for rows.Next() {
		var s model.PortfolioSnapshot
		if err := rows.Scan(&s.Date, &s.ValueGBP); err != nil {
			return nil, fmt.Errorf("failed to scan snapshots table results: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots table: %w", err)
	}

	return snapshots, nil
}
