package core

import "time"

// DefaultInterval is the reference delay between automatic iterations.
const DefaultInterval = 100 * time.Millisecond

// Pacer reports when a fixed wall-clock interval has elapsed. At most one
// tick is reported per call, so slow frames never trigger a burst of steps.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer that fires every interval.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pacer{interval: interval}
}

// Reset makes now the start of the next interval. A zero time defers the
// start to the next Ready call.
func (p *Pacer) Reset(now time.Time) { p.last = now }

// Ready reports whether at least one interval has passed since the last tick
// and, if so, restarts the interval at now.
func (p *Pacer) Ready(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
		return false
	}
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}
