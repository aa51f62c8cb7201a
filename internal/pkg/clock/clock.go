package clock

import (
	"sync"
	"time"
)

// Clock is injected wherever a timestamp is persisted so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewRealClock returns wall-clock time in UTC, the zone every stored timestamp uses.
func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock safe for use from the scheduler goroutine.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
