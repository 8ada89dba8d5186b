package game

import "time"

// Timer fires every Interval of simulated time while running.
type Timer struct {
	Interval time.Duration

	next    time.Duration
	running bool
}

func NewTimer(interval time.Duration) Timer {
	return Timer{Interval: interval}
}

// Start (re)arms the timer so it first fires Interval after now.
func (t *Timer) Start(now time.Duration) {
	t.running = true
	t.next = now + t.Interval
}

func (t *Timer) Stop() { t.running = false }

func (t *Timer) Running() bool { return t.running }

// Fire returns how many intervals elapsed up to now and reschedules.
// A stopped timer never fires.
func (t *Timer) Fire(now time.Duration) int {
	if !t.running || t.Interval <= 0 {
		return 0
	}
	n := 0
	for now >= t.next {
		n++
		t.next += t.Interval
	}
	return n
}
