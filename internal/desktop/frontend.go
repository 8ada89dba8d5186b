package desktop

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"spidersmash/internal/game"
)

const (
	hurtShake    = 6.0  // field pixels
	hurtShakeFor = 0.25 // seconds
	maxFrameDt   = 0.1
)

type Options struct {
	Title string
	Scale float64
	Seed  uint64
}

// Frontend is the glfw/OpenGL window. glfw requires every call on the
// main OS thread, so the caller locks it before New.
type Frontend struct {
	window *glfw.Window
	rend   *Renderer
	input  *Input
	cam    Camera
	rng    *game.Rand
	log    zerolog.Logger

	frame frameSprites
	hud   []float32
	last  float64
	fbW   int
	fbH   int
}

var _ game.Frontend = (*Frontend)(nil)

func New(opts Options, log zerolog.Logger) (*Frontend, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	window, err := openWindow(opts.Title, opts.Scale)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("window ready")

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	f := &Frontend{
		window: window,
		rend:   rend,
		input:  NewInput(),
		rng:    game.NewRand(opts.Seed ^ 0x5AFE),
		log:    log,
		last:   glfw.GetTime(),
	}
	f.fbW, f.fbH = window.GetFramebufferSize()
	f.cam.Fit(f.fbW, f.fbH)
	return f, nil
}

// Attach shakes the camera whenever the player loses a heart.
func (f *Frontend) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventPlayerHurt, func(game.Event) {
		f.cam.AddShake(hurtShake, hurtShakeFor)
	})
}

// Poll pumps glfw events. Closing the window ends the game.
func (f *Frontend) Poll() (game.InputState, error) {
	glfw.PollEvents()
	if f.window.ShouldClose() {
		return game.InputState{}, game.ErrQuit
	}
	f.fbW, f.fbH = f.window.GetFramebufferSize()
	f.cam.Fit(f.fbW, f.fbH)
	return f.input.Read(f.window, &f.cam, f.fbW, f.fbH), nil
}

func (f *Frontend) Present(s *game.Session) error {
	if f.fbW <= 0 || f.fbH <= 0 {
		// Minimised.
		return nil
	}
	now := glfw.GetTime()
	dt := min(now-f.last, maxFrameDt)
	f.last = now
	f.cam.UpdateShake(dt, f.rng)

	f.rend.BeginFrame(&f.cam, f.fbW, f.fbH)
	f.hud = f.hud[:0]
	switch s.Mode() {
	case game.ModeMenu:
		f.hud = menuSprites(f.hud, s.Menu())
	case game.ModeActive:
		f.frame.build(s)
		f.hud = hudSprites(f.hud, s.HUD())
	case game.ModeOver:
		f.frame.build(s)
	}
	if s.Mode() != game.ModeMenu {
		f.rend.DrawSprites(f.frame.Normal, &f.cam, f.fbW, f.fbH, false)
		f.rend.DrawSprites(f.frame.Glow, &f.cam, f.fbW, f.fbH, true)
	}
	f.rend.DrawSprites(f.hud, &f.cam, f.fbW, f.fbH, false)

	for _, line := range overlayText(s) {
		scale := line.Scale * float32(f.cam.Zoom)
		cx, cy := f.cam.ToScreen(game.Vec2{X: game.FieldWidth / 2, Y: line.Y}, f.fbW, f.fbH)
		x := float32(cx) - TextWidth(line.Text, scale)/2
		y := float32(cy) - float32(glyphH)*scale/2
		f.rend.DrawString(line.Text, x, y, scale, line.Color)
	}
	f.rend.FlushText(f.fbW, f.fbH)

	f.window.SwapBuffers()
	return nil
}

func (f *Frontend) Close() error {
	f.rend.Destroy()
	f.window.Destroy()
	glfw.Terminate()
	return nil
}
