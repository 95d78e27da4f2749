package clocks

import (
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System is the wall clock, always in UTC.
var System Clock = systemClock{}

// MutableClock is a virtual clock that only moves when told to. Safe for concurrent use.
type MutableClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMutableClock(start time.Time) *MutableClock {
	return &MutableClock{now: start.UTC()}
}

func (c *MutableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MutableClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t.UTC()
	c.mu.Unlock()
}

// Advance moves the clock by d, which may be negative.
func (c *MutableClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
