package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/harvestnet/platform/internal/platform/store"
)

// DefaultHousekeepingInterval is used when no positive interval is given.
const DefaultHousekeepingInterval = time.Hour

// HousekeepingService periodically prunes stale weather cache rows so the
// append-only table does not grow between runs of the cleanup job.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	MaxAge   time.Duration
	Now      func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the worker. A non-positive interval means
// DefaultHousekeepingInterval and a non-positive maxAge means DefaultCacheWindow.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, maxAge time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultCacheWindow
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		MaxAge:   maxAge,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background loop. It is non-blocking; call Stop to end it.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "max_age", s.MaxAge)
}

// Stop ends the loop and waits for an in-progress prune to finish.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.PruneOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.PruneOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// PruneOnce deletes cache rows older than MaxAge and returns how many went.
func (s *HousekeepingService) PruneOnce(ctx context.Context) int64 {
	cutoff := now(s.Now).Add(-s.MaxAge)
	n, err := s.Store.WeatherCache().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to prune weather cache", "error", err)
		return 0
	}
	s.Logger.Debug("pruned weather cache", "deleted", n, "cutoff", cutoff)
	return n
}
