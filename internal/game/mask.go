package game

import "math"

// Mask is a per-pixel opacity mask laid over an entity's hitbox. The
// fine collision phase only reports contact where opaque pixels meet.
type Mask struct {
	W, H int
	bits []bool
}

// EllipseMask marks the ellipse inscribed in a w×h box as opaque.
func EllipseMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			m.bits[y*w+x] = dx*dx+dy*dy <= 1
		}
	}
	return m
}

func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Overlap reports whether m placed at a and o placed at b share an opaque
// pixel. Both rectangles give the mask's top-left corner in field space.
func (m *Mask) Overlap(a RectF, o *Mask, b RectF) bool {
	ax, ay := int(math.Floor(a.X0)), int(math.Floor(a.Y0))
	bx, by := int(math.Floor(b.X0)), int(math.Floor(b.Y0))
	x0, y0 := max(ax, bx), max(ay, by)
	x1, y1 := min(ax+m.W, bx+o.W), min(ay+m.H, by+o.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x-ax, y-ay) && o.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
