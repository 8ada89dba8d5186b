package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"spidersmash/internal/game"
)

// Input samples the glfw window once per poll.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// JustPressed reports a key going down since the previous call.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Read builds the tick's input. The cursor is scaled from window to
// framebuffer pixels before the camera maps it onto the field.
func (in *Input) Read(window *glfw.Window, cam *Camera, fbW, fbH int) game.InputState {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	return game.InputState{
		Pointer: cursorField(cx, cy, winW, winH, fbW, fbH, cam),
		Left:    window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:   window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Space:   window.GetKey(glfw.KeySpace) == glfw.Press,
		Quit:    in.JustPressed(window, glfw.KeyEscape),
	}
}
