package game

// RectF is an axis-aligned rectangle in field-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// RectFromCenter builds a w×h rectangle centred on c.
func RectFromCenter(c Vec2, w, h float64) RectF {
	return RectF{X0: c.X - w/2, Y0: c.Y - h/2, X1: c.X + w/2, Y1: c.Y + h/2}
}

// RectFromTopLeft builds a w×h rectangle whose top-left corner is (x, y).
func RectFromTopLeft(x, y, w, h float64) RectF {
	return RectF{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r RectF) W() float64 { return r.X1 - r.X0 }
func (r RectF) H() float64 { return r.Y1 - r.Y0 }

func (r RectF) Center() Vec2 {
	return Vec2{X: (r.X0 + r.X1) * 0.5, Y: (r.Y0 + r.Y1) * 0.5}
}

// Intersects reports overlap with positive area; touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// ContainsPoint is inclusive on every edge.
func (r RectF) ContainsPoint(p Vec2) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Intersection returns the overlapping region and whether it is non-empty.
func (r RectF) Intersection(o RectF) (RectF, bool) {
	out := RectF{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.X0 >= out.X1 || out.Y0 >= out.Y1 {
		return RectF{}, false
	}
	return out, true
}
