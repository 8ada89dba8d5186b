package desktop

import "spidersmash/internal/game"

// cursorField maps a cursor position in window coordinates onto the field.
// On HiDPI displays the framebuffer is larger than the window.
func cursorField(cx, cy float64, winW, winH, fbW, fbH int, cam *Camera) game.Vec2 {
	if winW <= 0 || winH <= 0 {
		return game.Vec2{X: cam.X, Y: cam.Y}
	}
	fx := cx * float64(fbW) / float64(winW)
	fy := cy * float64(fbH) / float64(winH)
	return cam.ToField(fx, fy, fbW, fbH)
}
