package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/fireflyapp/firefly-server/internal/apperrors"
	"github.com/fireflyapp/firefly-server/internal/model"
	"github.com/fireflyapp/firefly-server/internal/repository"
	"github.com/fireflyapp/firefly-server/internal/ticker"
	"github.com/fireflyapp/firefly-server/internal/yahoo"
)

// SnapshotService produces the end-of-day portfolio valuation: it reads the
// synced holdings, values each position, and records exactly one snapshot row
// per calendar date.
type SnapshotService struct {
	holdingsRepo *repository.HoldingsRepository
	snapshotRepo *repository.SnapshotRepository
	quoteClient  yahoo.Client
	limiter      *rate.Limiter
}

// NewSnapshotService creates a new SnapshotService. requestDelay is the
// minimum spacing between consecutive quote requests during a run.
func NewSnapshotService(
	holdingsRepo *repository.HoldingsRepository,
	snapshotRepo *repository.SnapshotRepository,
	quoteClient yahoo.Client,
	requestDelay time.Duration,
) *SnapshotService {
	return &SnapshotService{
		holdingsRepo: holdingsRepo,
		snapshotRepo: snapshotRepo,
		quoteClient:  quoteClient,
		limiter:      rate.NewLimiter(rate.Every(requestDelay), 1),
	}
}

// RecordDailySnapshot computes the total GBP value of the synced holdings and
// upserts it into the snapshots table keyed by today's local date.
//
// Valuation rules, applied to each holding in list order:
//   - cash positions contribute units x average cost, with no quote fetch
//   - holdings not denominated in GBP are excluded from the total
//   - everything else is resolved to a ticker and quoted; when no usable
//     quote comes back the holding falls back to units x its last known
//     unit price, so a provider hiccup never zeroes a position
//
// Holdings are processed strictly sequentially with a throttled quote fetch;
// that ordering is what keeps the request rate under the provider's limit.
// A repeat run on the same date replaces the earlier row with the same key.
func (s *SnapshotService) RecordDailySnapshot(ctx context.Context) error {
	sync, err := s.holdingsRepo.Get()
	if errors.Is(err, apperrors.ErrNoHoldingsSynced) {
		log.Println("[daily] no holdings synced; skipping snapshot")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load holdings sync: %w", err)
	}
	if len(sync.Holdings) == 0 {
		log.Println("[daily] no holdings synced; skipping snapshot")
		return nil
	}

	total := decimal.Zero

	for _, h := range sync.Holdings {
		units := decimal.NewFromFloat(h.Units)

		if h.IsCash() {
			total = total.Add(units.Mul(decimal.NewFromFloat(h.AverageCost)))
			continue
		}

		if h.Currency != model.HomeCurrency {
			// Only GBP holdings count toward the UK portfolio snapshot.
			log.Printf("[daily] skipping %s: currency %s", h.Symbol, h.Currency)
			continue
		}

		resolved := ticker.Resolve(h.Symbol, h.ListingVenue())
		price, ok := s.fetchQuote(ctx, resolved)
		if ok {
			total = total.Add(units.Mul(price))
		} else {
			total = total.Add(units.Mul(decimal.NewFromFloat(h.UnitPrice)))
		}
	}

	total = total.Round(2)
	date := time.Now().Format("2006-01-02")

	if err := s.snapshotRepo.Upsert(date, total.InexactFloat64()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	log.Printf("[daily] snapshot saved: %s = £%s", date, total.StringFixed(2))
	return nil
}

// fetchQuote performs one throttled quote fetch. It reports ok=false for an
// empty ticker, a no-quote outcome, or a transport error; only transport
// errors are logged, since no-quote is an ordinary condition.
func (s *SnapshotService) fetchQuote(ctx context.Context, resolved string) (decimal.Decimal, bool) {
	if resolved == "" {
		return decimal.Zero, false
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return decimal.Zero, false
	}

	price, err := s.quoteClient.FetchQuote(ctx, resolved)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoQuote) {
			log.Printf("[daily] quote fetch failed for %s: %v", resolved, err)
		}
		return decimal.Zero, false
	}

	return decimal.NewFromFloat(price), true
}
