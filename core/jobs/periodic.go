package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

// Periodic runs a task on a fixed interval until its context is cancelled.
type Periodic struct {
	name     string
	interval time.Duration
	task     Task
	logger   *zap.Logger
}

// NewPeriodic creates a periodic job. It does nothing until Run is called.
func NewPeriodic(name string, interval time.Duration, task Task, logger *zap.Logger) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.With(zap.String("job", name)),
	}
}

// Run blocks, invoking the task every interval. Ticks are not queued: a run that
// overlaps the next tick skips it. A failing run is logged and the schedule goes on.
func (p *Periodic) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("Periodic job scheduled", zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Periodic job stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := p.task(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				p.logger.Error("Periodic job failed", zap.Error(err))
				continue
			}
			p.logger.Info("Periodic job completed", zap.Duration("duration", time.Since(start)))
		}
	}
}
