package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"spidersmash/internal/game"
)

// hudRows is the number of rows above the field reserved for the HUD.
const hudRows = 1

// Frontend renders the field as character cells and reads the mouse.
// Terminals report no key releases, so Space counts as pressed for a
// single poll.
type Frontend struct {
	screen tcell.Screen
	events chan tcell.Event
	log    zerolog.Logger

	pointer game.Vec2
	left    bool
	right   bool
	space   bool
	quit    bool

	hurtFlash int
}

var _ game.Frontend = (*Frontend)(nil)

// New opens the controlling terminal.
func New(log zerolog.Logger) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(screen, log)
}

// NewWithScreen initialises s and starts forwarding its events. Tests pass
// a simulation screen.
func NewWithScreen(s tcell.Screen, log zerolog.Logger) (*Frontend, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.Clear()

	f := &Frontend{
		screen:  s,
		events:  make(chan tcell.Event, 100),
		log:     log,
		pointer: game.Vec2{X: game.PlayerStartX, Y: game.PlayerStartY},
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(f.events)
				return
			}
			f.events <- ev
		}
	}()

	w, h := s.Size()
	log.Info().Int("cols", w).Int("rows", h).Msg("terminal ready")
	return f, nil
}

// Attach subscribes the frontend to session events it reacts to.
func (f *Frontend) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventPlayerHurt, func(game.Event) { f.hurtFlash = 12 })
}

// Poll drains pending terminal events without blocking.
func (f *Frontend) Poll() (game.InputState, error) {
	f.space = false
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				return game.InputState{}, game.ErrQuit
			}
			f.handle(ev)
			continue
		default:
		}
		break
	}
	return game.InputState{
		Pointer: f.pointer,
		Left:    f.left,
		Right:   f.right,
		Space:   f.space,
		Quit:    f.quit,
	}, nil
}

func (f *Frontend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			f.quit = true
		case ev.Key() == tcell.KeyEnter:
			f.space = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			f.space = true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			f.quit = true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.pointer = f.cellToField(x, y)
		b := ev.Buttons()
		f.left = b&tcell.Button1 != 0
		f.right = b&tcell.Button2 != 0
	case *tcell.EventResize:
		f.screen.Sync()
		w, h := f.screen.Size()
		f.log.Debug().Int("cols", w).Int("rows", h).Msg("terminal resized")
	}
}

func (f *Frontend) Close() error {
	f.screen.Fini()
	return nil
}

// fieldToCell maps a field point onto the character grid below the HUD.
func (f *Frontend) fieldToCell(p game.Vec2) (int, int, bool) {
	w, h := f.screen.Size()
	rows := h - hudRows
	if w <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(p.X * float64(w) / game.FieldWidth)
	y := hudRows + int(p.Y*float64(rows)/game.FieldHeight)
	if p.X < 0 || p.Y < 0 || x >= w || y >= h {
		return x, y, false
	}
	return x, y, true
}

// cellToField maps a cell to the field point at its centre.
func (f *Frontend) cellToField(x, y int) game.Vec2 {
	w, h := f.screen.Size()
	rows := h - hudRows
	if w <= 0 || rows <= 0 {
		return f.pointer
	}
	return game.Vec2{
		X: (float64(x) + 0.5) * game.FieldWidth / float64(w),
		Y: (float64(y-hudRows) + 0.5) * game.FieldHeight / float64(rows),
	}
}
