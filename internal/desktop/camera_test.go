package desktop

import (
	"math"
	"testing"

	"spidersmash/internal/game"
)

func TestCameraFit(t *testing.T) {
	tests := []struct {
		name     string
		fbW, fbH int
		wantZoom float64
	}{
		{"exact", 900, 450, 1},
		{"hidpi", 1800, 900, 2},
		{"tall", 900, 900, 1},
		{"wide", 1800, 450, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			c.Fit(tt.fbW, tt.fbH)
			if c.Zoom != tt.wantZoom {
				t.Errorf("zoom = %v, want %v", c.Zoom, tt.wantZoom)
			}
			x, y := c.ToScreen(game.Vec2{X: game.FieldWidth / 2, Y: game.FieldHeight / 2}, tt.fbW, tt.fbH)
			if x != float64(tt.fbW)/2 || y != float64(tt.fbH)/2 {
				t.Errorf("field centre drawn at (%v,%v), want framebuffer centre", x, y)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	var c Camera
	c.Fit(1280, 720)
	for _, p := range []game.Vec2{{}, {X: 900, Y: 450}, {X: 123.5, Y: 321}} {
		x, y := c.ToScreen(p, 1280, 720)
		if got := c.ToField(x, y, 1280, 720); !got.Eq(p, 1e-9) {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

func TestCursorFieldHiDPI(t *testing.T) {
	var c Camera
	c.Fit(1800, 900)
	// Window is half the framebuffer size.
	got := cursorField(450, 225, 900, 450, 1800, 900, &c)
	if !got.Eq(game.Vec2{X: 450, Y: 225}, 1e-9) {
		t.Errorf("cursorField = %v, want {450 225}", got)
	}
	if got := cursorField(10, 10, 0, 0, 1800, 900, &c); !got.Eq(game.Vec2{X: c.X, Y: c.Y}, 0) {
		t.Errorf("zero-size window should map to the camera centre, got %v", got)
	}
}

func TestShakeDecays(t *testing.T) {
	var c Camera
	c.Fit(900, 450)
	rng := game.NewRand(3)
	c.AddShake(hurtShake, hurtShakeFor)
	c.AddShake(1, 0.1) // weaker shake does not shorten the running one

	if c.ShakeIntensity != hurtShake || c.ShakeTimer != hurtShakeFor {
		t.Fatalf("shake = %v for %v, want %v for %v", c.ShakeIntensity, c.ShakeTimer, hurtShake, hurtShakeFor)
	}
	for i := 0; i < 10; i++ {
		c.UpdateShake(1.0/60, rng)
		if math.Abs(c.ShakeX) > hurtShake || math.Abs(c.ShakeY) > hurtShake {
			t.Fatalf("offset (%v,%v) exceeds intensity", c.ShakeX, c.ShakeY)
		}
	}
	for i := 0; i < 30; i++ {
		c.UpdateShake(1.0/60, rng)
	}
	if x, y := c.EffectivePos(); x != c.X || y != c.Y {
		t.Errorf("shake still applied after it ran out: (%v,%v)", x, y)
	}
}
