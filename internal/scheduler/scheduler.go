package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_sync/internal/domain"
)

// Syncer defines the interface for sync runs.
type Syncer interface {
	RunSync(ctx context.Context, strategy domain.Strategy, targetMonth string) (*domain.Result, error)
}

// Scheduler triggers incremental runs on a fixed interval.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if _, err := s.syncer.RunSync(syncCtx, domain.StrategyIncremental, ""); err != nil {
		s.logger.Error("scheduled sync failed", "error", err)
	}
}
