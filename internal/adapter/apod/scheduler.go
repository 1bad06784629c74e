package apod

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DailySchedule refreshes shortly after midnight.
const DailySchedule = "5 0 * * *"

const refreshTimeout = 2 * time.Minute

// Refresher is what the scheduler refreshes.
type Refresher interface {
	Refresh(ctx context.Context) (*Media, error)
}

// Scheduler refreshes the picture on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	logger    *slog.Logger
}

// NewScheduler registers the refresh job on spec in loc.
func NewScheduler(refresher Refresher, spec string, loc *time.Location, logger *slog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		refresher: refresher,
		logger:    logger,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running refresh or ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error("scheduled apod refresh failed", slog.Any("error", err))
	}
}
