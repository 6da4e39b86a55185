package physics

import (
	"sync"
	"time"
)

// Clock is the physics time. While paused, real time is ignored and only
// explicit AdvanceBy calls move it forward.
type Clock struct {
	mu      sync.RWMutex
	paused  bool
	pending time.Duration
	delta   time.Duration
	elapsed time.Duration
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

func (c *Clock) Unpause() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

func (c *Clock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// AdvanceBy queues d to be simulated on the next Tick, paused or not.
func (c *Clock) AdvanceBy(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.pending += d
	c.mu.Unlock()
}

// Tick consumes queued advances plus, when running, the real frame delta.
// It returns the physics delta to simulate this frame.
func (c *Clock) Tick(real time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.pending
	c.pending = 0
	if !c.paused && real > 0 {
		d += real
	}
	c.delta = d
	c.elapsed += d
	return d
}

// Delta is the physics delta of the last Tick.
func (c *Clock) Delta() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delta
}

// Elapsed is the total physics time simulated so far.
func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}
