package game

// MenuIntro slides the menu backdrop in from the left until its right
// edge reaches the right side of the field.
type MenuIntro struct {
	Right float64
}

func (m *MenuIntro) Tick() {
	if m.Right < MenuWidth {
		m.Right += MenuSlideSpeed
	}
}

// Done reports whether the slide has finished.
func (m MenuIntro) Done() bool { return m.Right >= MenuWidth }

// Rect is the backdrop's current box, vertically centred on the field.
func (m MenuIntro) Rect() RectF {
	return RectF{X0: m.Right - MenuWidth, Y0: 0, X1: m.Right, Y1: FieldHeight}
}
