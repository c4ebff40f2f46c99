package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// cycleTimeout bounds a single scheduled cycle, fetches included.
const cycleTimeout = 5 * time.Minute

// CycleRunner is the unit of work the scheduler drives.
type CycleRunner interface {
	RunCycle(ctx context.Context) error
}

// Scheduler triggers extraction cycles on a fixed interval.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    CycleRunner
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a Scheduler driving the runner every interval.
func New(runner CycleRunner, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		runner:    runner,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the cycle job, runs it once immediately, and starts the
// scheduler in the background.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()

		if err := s.runner.RunCycle(ctx); err != nil {
			s.logger.Error("scheduled cycle failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("scheduler started", "interval", s.interval)
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler; a cycle already in flight finishes.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
