package game

import (
	"sync"
	"time"
)

// Clock is the wall-time source the loop paces itself with.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock uses the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock provides a controllable time source for testing. Sleep
// advances the clock instead of blocking.
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
	slept   time.Duration
}

// NewManualClock creates a clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

func (m *ManualClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	m.slept += d
}

// Slept is the total duration passed to Sleep.
func (m *ManualClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
