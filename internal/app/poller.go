package app

import (
	"context"
	"time"

	"github.com/riskibarqy/match-center/internal/platform/logging"
	"github.com/riskibarqy/match-center/internal/usecase"
)

// CycleRunner runs one enrichment cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (usecase.CycleResult, error)
}

// Poller drives enrichment cycles on a fixed interval. A failed cycle is
// logged and the next tick retries; only context cancellation stops the
// loop.
type Poller struct {
	runner   CycleRunner
	interval time.Duration
	logger   *logging.Logger
}

func NewPoller(runner CycleRunner, interval time.Duration, logger *logging.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Poller{runner: runner, interval: interval, logger: logger}
}

func (p *Poller) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "poller starting", "interval", p.interval)
	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "poller stopping")
			return ctx.Err()
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

func (p *Poller) cycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	result, err := p.runner.RunCycle(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "enrichment cycle failed", "error", err, "duration_ms", time.Since(started).Milliseconds())
		return
	}
	p.logger.InfoContext(ctx, "enrichment cycle complete",
		"matches", len(result.Summaries),
		"in_play", result.Report.InPlayMatches,
		"duration_ms", time.Since(started).Milliseconds(),
	)
}
