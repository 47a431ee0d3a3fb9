package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/repository"
)

// HoldingsService handles the client's holdings sync: validation and the
// wholesale replacement of the singleton holdings snapshot.
type HoldingsService struct {
	holdingsRepo *repository.HoldingsRepository
}

// NewHoldingsService creates a new HoldingsService
func NewHoldingsService(holdingsRepo *repository.HoldingsRepository) *HoldingsService {
	return &HoldingsService{holdingsRepo: holdingsRepo}
}

// Sync validates the pushed holdings and replaces the stored snapshot.
// Holdings that arrive without an ID get one assigned so later syncs and
// client-side references stay stable.
func (s *HoldingsService) Sync(holdings []model.Holding) error {
	for i := range holdings {
		h := &holdings[i]

		if h.Units < 0 {
			return fmt.Errorf("holding %q: %w", h.Symbol, apperrors.ErrNegativeUnits)
		}
		if h.AverageCost < 0 {
			return fmt.Errorf("holding %q: %w", h.Symbol, apperrors.ErrNegativeCost)
		}

		if h.ID == "" {
			h.ID = uuid.NewString()
		}
	}

	return s.holdingsRepo.Save(holdings)
}

// Latest returns the most recently synced holdings snapshot, or
// apperrors.ErrNoHoldingsSynced when the client has never synced.
func (s *HoldingsService) Latest() (*model.HoldingsSyncSnapshot, error) {
	return s.holdingsRepo.Get()
}
