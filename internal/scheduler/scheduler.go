// Package scheduler drives the two background jobs from a single in-process
// cron runtime: the daily snapshot at a fixed wall-clock time and the price
// refresh on a fixed interval.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fireflyapp/firefly-server/internal/service"
)

// Scheduler owns the cron runtime and the per-process daily-firing guard.
type Scheduler struct {
	cron        *cron.Cron
	snapshotSvc *service.SnapshotService
	refreshSvc  *service.PriceRefreshService

	snapshotHour    int
	snapshotMinute  int
	refreshInterval time.Duration

	mu sync.Mutex
	// lastRunDate is the local calendar date of the last daily-job dispatch.
	// It is set at dispatch time, not on completion, so a slow run cannot be
	// double-fired within the same minute. It is held in memory only and
	// resets on process restart.
	lastRunDate string
}

// New creates a Scheduler. snapshotTime is the local wall-clock trigger for
// the daily job in HH:MM form.
func New(
	snapshotSvc *service.SnapshotService,
	refreshSvc *service.PriceRefreshService,
	snapshotTime string,
	refreshInterval time.Duration,
) (*Scheduler, error) {
	hour, minute, err := parseClockTime(snapshotTime)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cron:            cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		snapshotSvc:     snapshotSvc,
		refreshSvc:      refreshSvc,
		snapshotHour:    hour,
		snapshotMinute:  minute,
		refreshInterval: refreshInterval,
	}, nil
}

// Start registers both triggers and starts the cron runtime. The price
// refresh runs once immediately, then on its interval; the daily trigger is a
// per-minute check that fires the snapshot job at most once per calendar
// date. Job failures are logged and never stop future scheduling.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.checkDaily); err != nil {
		return fmt.Errorf("failed to schedule daily check: %w", err)
	}

	refreshSpec := fmt.Sprintf("@every %s", s.refreshInterval)
	if _, err := s.cron.AddFunc(refreshSpec, s.runRefresh); err != nil {
		return fmt.Errorf("failed to schedule price refresh: %w", err)
	}

	go s.runRefresh()

	s.cron.Start()

	log.Printf("[daily] scheduled %02d:%02d snapshot job", s.snapshotHour, s.snapshotMinute)
	log.Printf("[price-refresh] scheduled every %s", s.refreshInterval)
	return nil
}

// Stop stops the cron runtime. Jobs already in flight run to completion.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// checkDaily runs every minute and dispatches the daily job when the trigger
// minute is reached and it has not fired yet today.
func (s *Scheduler) checkDaily() {
	if !s.shouldFire(time.Now()) {
		return
	}
	s.runDaily()
}

// shouldFire reports whether the daily job should be dispatched at now, and
// marks the date as fired when it does. The guard is best-effort and
// single-process; the date-keyed snapshot upsert tolerates the duplicate run
// a restart near the trigger minute could cause.
func (s *Scheduler) shouldFire(now time.Time) bool {
	if now.Hour() != s.snapshotHour || now.Minute() != s.snapshotMinute {
		return false
	}

	today := now.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRunDate == today {
		return false
	}
	s.lastRunDate = today
	return true
}

func (s *Scheduler) runDaily() {
	if err := s.snapshotSvc.RecordDailySnapshot(context.Background()); err != nil {
		log.Printf("[daily] error: %v", err)
	}
}

func (s *Scheduler) runRefresh() {
	if err := s.refreshSvc.RefreshPrices(context.Background()); err != nil {
		log.Printf("[price-refresh] error: %v", err)
	}
}

// parseClockTime parses an HH:MM wall-clock time.
func parseClockTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid snapshot time %q: want HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid snapshot hour in %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid snapshot minute in %q", value)
	}

	return hour, minute, nil
}
