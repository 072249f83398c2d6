package stopwatch

import "time"

// DefaultTickInterval is the period at which a running clock is advanced.
// It bounds displayed precision to hundredths of a second.
const DefaultTickInterval = 10 * time.Millisecond

// ClockState is a point-in-time view of a Clock
type ClockState struct {
	Elapsed time.Duration
	Running bool
	Penalty int // whole seconds
}

// Clock tracks elapsed running time and a pending penalty.
// Elapsed only advances through Tick while running. Clock does no locking;
// callers serialize access.
type Clock struct {
	elapsed time.Duration
	running bool
	penalty int
}

// NewClock creates a stopped clock at zero
func NewClock() *Clock {
	return &Clock{}
}

// Start sets the clock running. No-op if already running.
func (c *Clock) Start() {
	c.running = true
}

// Pause stops the clock. No-op if already paused.
func (c *Clock) Pause() {
	c.running = false
}

// Toggle flips between running and paused
func (c *Clock) Toggle() {
	c.running = !c.running
}

// Tick advances elapsed by delta if the clock is running.
// Non-positive deltas are ignored so elapsed never decreases.
func (c *Clock) Tick(delta time.Duration) {
	if !c.running || delta <= 0 {
		return
	}
	c.elapsed += delta
}

// SetPenalty sets the penalty in whole seconds. Negative values clamp to zero.
func (c *Clock) SetPenalty(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.penalty = seconds
}

// Reset zeroes elapsed and penalty and stops the clock
func (c *Clock) Reset() {
	c.elapsed = 0
	c.running = false
	c.penalty = 0
}

// RecordedValue returns elapsed plus the penalty, the value logged when a
// time is recorded
func (c *Clock) RecordedValue() time.Duration {
	return c.elapsed + c.PenaltyDuration()
}

// Elapsed returns the running time excluding penalty
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Running reports whether the clock is advancing
func (c *Clock) Running() bool {
	return c.running
}

// Penalty returns the penalty in whole seconds
func (c *Clock) Penalty() int {
	return c.penalty
}

// PenaltyDuration returns the penalty as a duration
func (c *Clock) PenaltyDuration() time.Duration {
	return time.Duration(c.penalty) * time.Second
}

// Recordable reports whether the clock is paused with some elapsed time,
// the only state in which a penalty or a recorded time makes sense
func (c *Clock) Recordable() bool {
	return !c.running && c.elapsed != 0
}

// State returns a snapshot of the clock
func (c *Clock) State() ClockState {
	return ClockState{
		Elapsed: c.elapsed,
		Running: c.running,
		Penalty: c.penalty,
	}
}

// Clone returns an independent copy of the clock
func (c *Clock) Clone() *Clock {
	cp := *c
	return &cp
}
