package game

import "errors"

// ErrQuit is returned by a frontend when the user closed the window or
// asked to leave. The loop treats it as a clean exit.
var ErrQuit = errors.New("quit requested")

// InputState is one tick's worth of input, already mapped into field
// coordinates. Left and Space confirm in the menu and fire while Active;
// Right is the run modifier. Edges are detected by the session.
type InputState struct {
	Pointer Vec2
	Left    bool
	Right   bool
	Space   bool
	Quit    bool
}

// Frontend owns the window or screen. Poll must not block; Present draws
// the session and may read it freely since it runs on the loop goroutine.
type Frontend interface {
	Poll() (InputState, error)
	Present(s *Session) error
	Close() error
}
