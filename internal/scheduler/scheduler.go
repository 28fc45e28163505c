package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// RateRefresher reloads the cached marketplace rate table.
type RateRefresher interface {
	RefreshRateCache(ctx context.Context) error
}

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron      *cron.Cron
	refresher RateRefresher
	logger    *slog.Logger
	timeout   time.Duration
}

// NewScheduler registers the rate refresh job under spec, a standard cron
// expression or descriptor such as "@every 15m".
func NewScheduler(spec string, refresher RateRefresher, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron:      c,
		refresher: refresher,
		logger:    logger.With(slog.String("component", "scheduler")),
		timeout:   30 * time.Second,
	}

	if _, err := s.cron.AddFunc(spec, s.RefreshRates); err != nil {
		return nil, fmt.Errorf("failed to register rate refresh job %q: %w", spec, err)
	}
	return s, nil
}

// RefreshRates runs the rate refresh job once.
func (s *Scheduler) RefreshRates() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.refresher.RefreshRateCache(ctx); err != nil {
		s.logger.Error("Rate cache refresh failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("Rate cache refreshed")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has jobs registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
