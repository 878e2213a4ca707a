// Package feedback clears transient feedback messages after a delay.
package feedback

import (
	"sync"
	"time"
)

// DefaultTTL is how long a feedback message stays visible.
const DefaultTTL = 3 * time.Second

// Expirer runs clear(seq) once the TTL elapses after the latest Schedule.
// Scheduling again cancels the pending clear, so only the newest message
// is ever cleared by this Expirer.
type Expirer struct {
	ttl   time.Duration
	clear func(seq uint64)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewExpirer returns an Expirer. A non-positive ttl uses DefaultTTL.
func NewExpirer(ttl time.Duration, clear func(seq uint64)) *Expirer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Expirer{ttl: ttl, clear: clear}
}

// TTL returns the configured delay.
func (e *Expirer) TTL() time.Duration {
	return e.ttl
}

// Schedule arranges for seq to be cleared after the TTL.
func (e *Expirer) Schedule(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.ttl, func() { e.clear(seq) })
}

// Cancel drops the pending clear, if any.
func (e *Expirer) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// Stop cancels the pending clear and ignores later Schedule calls.
func (e *Expirer) Stop() {
	e.Cancel()
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}
