package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedFrontend struct {
	inputs   []InputState
	polls    int
	presents int
	pollErr  error
	presErr  error
	closed   bool
}

func (f *scriptedFrontend) Poll() (InputState, error) {
	if f.pollErr != nil {
		return InputState{}, f.pollErr
	}
	var in InputState
	if f.polls < len(f.inputs) {
		in = f.inputs[f.polls]
	}
	f.polls++
	return in, nil
}

func (f *scriptedFrontend) Present(*Session) error {
	f.presents++
	return f.presErr
}

func (f *scriptedFrontend) Close() error {
	f.closed = true
	return nil
}

func newTestLoop(t *testing.T, fe Frontend) (*Loop, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return &Loop{Session: newTestSession(t), Frontend: fe, Clock: clock}, clock
}

func TestLoopQuitsCleanly(t *testing.T) {
	fe := &scriptedFrontend{inputs: []InputState{{}, {}, {Quit: true}}}
	loop, _ := newTestLoop(t, fe)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fe.presents != 2 {
		t.Errorf("presents = %d, want 2", fe.presents)
	}
	if got := loop.Session.Ticks(); got != 2 {
		t.Errorf("ticks = %d, want 2", got)
	}
}

func TestLoopPacesToTickRate(t *testing.T) {
	fe := &scriptedFrontend{}
	loop, clock := newTestLoop(t, fe)
	loop.MaxTicks = 60

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The last tick returns before sleeping.
	if got, want := clock.Slept(), 59*TickDuration; got != want {
		t.Errorf("slept %v, want %v", got, want)
	}
}

func TestLoopErrQuitIsNotAnError(t *testing.T) {
	fe := &scriptedFrontend{presErr: ErrQuit}
	loop, _ := newTestLoop(t, fe)
	if err := loop.Run(context.Background()); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}

func TestLoopWrapsFrontendErrors(t *testing.T) {
	boom := errors.New("boom")
	fe := &scriptedFrontend{pollErr: boom}
	loop, _ := newTestLoop(t, fe)
	err := loop.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want wrapped boom", err)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fe := &scriptedFrontend{}
	loop, _ := newTestLoop(t, fe)
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fe.polls != 0 {
		t.Errorf("polled %d times after cancel", fe.polls)
	}
}

func TestLoopDrivesMenuToActive(t *testing.T) {
	fe := &scriptedFrontend{inputs: []InputState{{}, {Left: true}, {}, {Quit: true}}}
	loop, _ := newTestLoop(t, fe)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loop.Session.Mode() != ModeActive {
		t.Errorf("mode = %v, want active", loop.Session.Mode())
	}
}
