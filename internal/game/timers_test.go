package game

import (
	"testing"
	"time"
)

func TestTimer(t *testing.T) {
	tm := NewTimer(450 * time.Millisecond)
	if got := tm.Fire(time.Hour); got != 0 {
		t.Fatalf("stopped timer fired %d times", got)
	}

	tm.Start(time.Second)
	if got := tm.Fire(time.Second + 449*time.Millisecond); got != 0 {
		t.Errorf("fired early: %d", got)
	}
	if got := tm.Fire(time.Second + 450*time.Millisecond); got != 1 {
		t.Errorf("fires = %d, want 1", got)
	}
	if got := tm.Fire(time.Second + 1800*time.Millisecond); got != 3 {
		t.Errorf("catch-up fires = %d, want 3", got)
	}

	tm.Stop()
	if got := tm.Fire(time.Hour); got != 0 {
		t.Errorf("stopped timer fired %d times", got)
	}
}

func TestHUDHeartFlip(t *testing.T) {
	var h HUD
	p := NewPlayer()
	h.Update(p, 0)
	first := h.HeartFrame
	for i := 0; i < HeartFlipHold-1; i++ {
		h.Update(p, 0)
		if h.HeartFrame != first {
			t.Fatalf("heart flipped after %d updates", i+2)
		}
	}
	h.Update(p, 0)
	if h.HeartFrame == first {
		t.Errorf("heart did not flip after %d updates", HeartFlipHold+1)
	}
	if got := h.HeartRect(2).X0; got != 120 {
		t.Errorf("third heart x = %v, want 120", got)
	}
	if got := h.StaminaRect().W(); got != 200 {
		t.Errorf("stamina width = %v, want 200", got)
	}
}

func TestMenuIntroSlide(t *testing.T) {
	var m MenuIntro
	ticks := 0
	for !m.Done() {
		m.Tick()
		ticks++
	}
	if ticks != 30 {
		t.Errorf("slide took %d ticks, want 30", ticks)
	}
	m.Tick()
	if m.Right != MenuWidth {
		t.Errorf("right edge = %v after finishing, want %v", m.Right, MenuWidth)
	}
}
