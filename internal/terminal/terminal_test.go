package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"spidersmash/internal/game"
)

func newSimFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	f, err := NewWithScreen(sim, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(90, 46)
	t.Cleanup(func() { f.Close() })
	return f, sim
}

// pollUntil polls until cond holds; events reach the frontend through a
// goroutine so the first poll may come back empty.
func pollUntil(t *testing.T, f *Frontend, cond func(game.InputState) bool) game.InputState {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in, err := f.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if cond(in) {
			return in
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
	return game.InputState{}
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCellFieldMapping(t *testing.T) {
	f, _ := newSimFrontend(t)

	tests := []struct {
		x, y   int
		wantPt game.Vec2
	}{
		{0, 1, game.Vec2{X: 5, Y: 5}},
		{45, 23, game.Vec2{X: 455, Y: 225}},
		{89, 45, game.Vec2{X: 895, Y: 445}},
	}
	for _, tt := range tests {
		got := f.cellToField(tt.x, tt.y)
		if !got.Eq(tt.wantPt, 1e-9) {
			t.Errorf("cellToField(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.wantPt)
		}
		x, y, ok := f.fieldToCell(got)
		if !ok || x != tt.x || y != tt.y {
			t.Errorf("fieldToCell(%v) = %d,%d,%v, want %d,%d,true", got, x, y, ok, tt.x, tt.y)
		}
	}

	if _, _, ok := f.fieldToCell(game.Vec2{X: -40, Y: 100}); ok {
		t.Error("point left of the field should not map to a cell")
	}
}

func TestPollMouse(t *testing.T) {
	f, sim := newSimFrontend(t)

	sim.InjectMouse(45, 23, tcell.Button1, tcell.ModNone)
	in := pollUntil(t, f, func(in game.InputState) bool { return in.Left })
	if !in.Pointer.Eq(game.Vec2{X: 455, Y: 225}, 1e-9) {
		t.Errorf("pointer = %v, want {455 225}", in.Pointer)
	}
	if in.Right {
		t.Error("right button reported without being pressed")
	}

	sim.InjectMouse(10, 10, tcell.Button2, tcell.ModNone)
	in = pollUntil(t, f, func(in game.InputState) bool { return in.Right })
	if in.Left {
		t.Error("left button still held after release")
	}
}

func TestPollKeys(t *testing.T) {
	f, sim := newSimFrontend(t)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	pollUntil(t, f, func(in game.InputState) bool { return in.Space })

	// Space lasts a single poll.
	in, err := f.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if in.Space {
		t.Error("space still pressed on the following poll")
	}

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	pollUntil(t, f, func(in game.InputState) bool { return in.Quit })
}

func TestPresentMenu(t *testing.T) {
	f, sim := newSimFrontend(t)
	s, err := game.NewSession(game.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for !s.Menu().Done() {
		s.Tick(game.InputState{})
	}
	if err := f.Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}

	_, h := sim.Size()
	if got := rowText(sim, h/2-1); !strings.Contains(got, "SPIDER SMASH") {
		t.Errorf("title row = %q, want it to contain the title", got)
	}
}

func TestPresentActive(t *testing.T) {
	f, sim := newSimFrontend(t)
	s, err := game.NewSession(game.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Tick(game.InputState{Space: true})
	s.Tick(game.InputState{Pointer: game.Vec2{X: game.PlayerStartX, Y: game.PlayerStartY}})
	if s.Mode() != game.ModeActive {
		t.Fatalf("mode = %v, want Active", s.Mode())
	}
	if err := f.Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}

	hud := rowText(sim, 0)
	if !strings.Contains(hud, "score 0") {
		t.Errorf("hud = %q, want score 0", hud)
	}
	if got := strings.Count(hud, "♥") + strings.Count(hud, "♡"); got != game.PlayerMaxHearts {
		t.Errorf("hud shows %d hearts, want %d", got, game.PlayerMaxHearts)
	}

	x, y, _ := f.fieldToCell(s.Player().Pos)
	r, _, _, _ := sim.GetContent(x, y)
	if r != glyphPlayer[s.Player().Facing] {
		t.Errorf("cell under player = %q, want %q", r, glyphPlayer[s.Player().Facing])
	}
}

func TestHurtFlashDrawsBorder(t *testing.T) {
	f, sim := newSimFrontend(t)
	bus := game.NewEventBus()
	f.Attach(bus)
	s, err := game.NewSession(game.WithSeed(1), game.WithEventBus(bus))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Tick(game.InputState{Space: true})

	bus.Emit(game.Event{Type: game.EventPlayerHurt})
	if err := f.Present(s); err != nil {
		t.Fatalf("Present: %v", err)
	}
	r, _, _, _ := sim.GetContent(0, 10)
	if r != '│' {
		t.Errorf("left border = %q, want '│'", r)
	}
}
