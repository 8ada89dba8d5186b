package game

import "math"

// Vec2 is a point or displacement in field space. Y grows downward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }
func (v Vec2) Rounded() Vec2        { return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)} }
func (v Vec2) Eq(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Steer returns the step that moves center toward target at the given
// speed. Inside the dead zone the step is zero.
func Steer(target, center Vec2, deadZone, speed float64) Vec2 {
	d := target.Sub(center)
	dist := d.Len()
	if dist <= deadZone || dist == 0 {
		return Vec2{}
	}
	return d.Scale(speed / dist)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
