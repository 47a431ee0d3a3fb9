package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/model"
)

// HoldingsRepository provides data access methods for the holdings_sync
// table. The table holds exactly one row: the latest full holdings list
// pushed by the client, stored as JSON.
type HoldingsRepository struct {
	db *sql.DB
}

// NewHoldingsRepository creates a new HoldingsRepository with the provided database connection.
func NewHoldingsRepository(db *sql.DB) *HoldingsRepository {
	return &HoldingsRepository{db: db}
}

// Save replaces the holdings snapshot wholesale. The fixed id keeps the table
// a singleton regardless of how often the client syncs.
func (r *HoldingsRepository) Save(holdings []model.Holding) error {
	data, err := json.Marshal(holdings)
	if err != nil {
		return fmt.Errorf("failed to marshal holdings: %w", err)
	}

	query := `INSERT OR REPLACE INTO holdings_sync (id, data, updated_at) VALUES (1, ?, ?)`
	updatedAt := time.Now().UTC().Format(time.RFC3339)

	if _, err := r.db.Exec(query, string(data), updatedAt); err != nil {
		return fmt.Errorf("failed to save holdings sync: %w", err)
	}

	return nil
}

// Get retrieves the latest holdings snapshot. Returns
// apperrors.ErrNoHoldingsSynced when the client has never synced.
func (r *HoldingsRepository) Get() (*model.HoldingsSyncSnapshot, error) {
	query := `SELECT data, updated_at FROM holdings_sync WHERE id = 1`

	var data, updatedAtStr string
	err := r.db.QueryRow(query).Scan(&data, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNoHoldingsSynced
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings_sync table: %w", err)
	}

	var holdings []model.Holding
	if err := json.Unmarshal([]byte(data), &holdings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal holdings sync data: %w", err)
	}

	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holdings sync timestamp: %w", err)
	}

	return &model.HoldingsSyncSnapshot{
		Holdings:  holdings,
		UpdatedAt: updatedAt,
	}, nil
}
