package desktop

import "spidersmash/internal/game"

// Camera maps field pixels to framebuffer pixels. The whole field is
// always visible; shake only moves the draw transform.
type Camera struct {
	X, Y float64 // field space, camera centre
	Zoom float64 // framebuffer pixels per field pixel

	ShakeX, ShakeY float64
	ShakeTimer     float64 // seconds left
	ShakeIntensity float64 // max offset in field pixels
}

// Fit letterboxes the field into a framebuffer of fbW×fbH.
func (c *Camera) Fit(fbW, fbH int) {
	zw := float64(fbW) / game.FieldWidth
	zh := float64(fbH) / game.FieldHeight
	c.Zoom = min(zw, zh)
	c.X = game.FieldWidth / 2
	c.Y = game.FieldHeight / 2
}

// AddShake keeps the stronger and longer of the running and new shake.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays the shake and picks new offsets from rng.
func (c *Camera) UpdateShake(dt float64, rng *game.Rand) {
	if c.ShakeTimer <= 0 {
		c.ShakeX, c.ShakeY = 0, 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer = max(c.ShakeTimer-dt, 0)
	t := c.ShakeTimer
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rng.RangeF(-mag, mag)
	c.ShakeY = rng.RangeF(-mag, mag)
}

// EffectivePos is the camera centre with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// ToField converts a framebuffer point to field coordinates, ignoring shake.
func (c *Camera) ToField(fx, fy float64, fbW, fbH int) game.Vec2 {
	if c.Zoom <= 0 {
		return game.Vec2{X: c.X, Y: c.Y}
	}
	return game.Vec2{
		X: c.X + (fx-float64(fbW)*0.5)/c.Zoom,
		Y: c.Y + (fy-float64(fbH)*0.5)/c.Zoom,
	}
}

// ToScreen converts a field point to framebuffer pixels, ignoring shake.
func (c *Camera) ToScreen(p game.Vec2, fbW, fbH int) (float64, float64) {
	return (p.X-c.X)*c.Zoom + float64(fbW)*0.5, (p.Y-c.Y)*c.Zoom + float64(fbH)*0.5
}
