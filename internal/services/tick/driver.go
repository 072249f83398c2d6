package tick

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/stopwatch/internal/dependencies/clock"
	"github.com/mcoot/stopwatch/internal/stopwatch"
)

// Target is advanced on every tick
type Target interface {
	TickAll(ctx context.Context, delta time.Duration) (int, error)
}

// Driver advances running clocks at a fixed interval.
// Each tick passes the time since the previous tick, so a late tick does
// not lose time.
type Driver struct {
	target   Target
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
}

// NewDriver creates a Driver. A non-positive interval uses
// stopwatch.DefaultTickInterval.
func NewDriver(target Target, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Driver {
	if interval <= 0 {
		interval = stopwatch.DefaultTickInterval
	}
	return &Driver{
		target:   target,
		clock:    clk,
		interval: interval,
		logger:   logger.With(slog.String("component", "tick")),
	}
}

// Interval returns the tick period
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run ticks until ctx is cancelled
func (d *Driver) Run(ctx context.Context) {
	last := d.clock.Now()
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("tick driver started", slog.Duration("interval", d.interval))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("tick driver stopped")
			return
		case now := <-ticker.C():
			delta := now.Sub(last)
			last = now

			if _, err := d.target.TickAll(ctx, delta); err != nil {
				d.logger.Warn("tick failed", slog.String("error", err.Error()))
			}
		}
	}
}
