package desktop

import (
	"fmt"

	"spidersmash/internal/game"
)

const menuTile = 50

// hudSprites appends the hearts and the stamina bar in field space.
func hudSprites(buf []float32, h game.HUD) []float32 {
	for i := 0; i < h.MaxHearts; i++ {
		c := game.Palette.Heart
		size := float64(game.HeartSize)
		if i >= h.Hearts {
			c = game.Palette.HeartDim
		} else if h.HeartFrame == 1 {
			size *= 0.85
		}
		buf = appendSprite(buf, h.HeartRect(i).Center(), size, c, 1, 0, shapeHeart)
	}

	// The bar is a run of squares; point sprites cannot be stretched.
	const full = game.PlayerMaxStamina * game.StaminaScale
	back := game.RectFromTopLeft(game.StaminaLeft, game.StaminaTop, full, game.StaminaHeight)
	buf = appendBar(buf, back, game.Palette.StaminaBack)
	if bar := h.StaminaRect(); bar.W() > 0 {
		buf = appendBar(buf, bar, game.BarColor(h.Stamina/game.PlayerMaxStamina))
	}
	return buf
}

func appendBar(buf []float32, r game.RectF, c game.RGB) []float32 {
	side := r.H()
	if r.W() < side {
		return appendSprite(buf, r.Center(), r.W(), c, 1, 0, shapeSquare)
	}
	y := r.Y0 + side/2
	for x := r.X0 + side/2; x <= r.X1-side/2; x += 2 {
		buf = appendSprite(buf, game.Vec2{X: x, Y: y}, side, c, 1, 0, shapeSquare)
	}
	return appendSprite(buf, game.Vec2{X: r.X1 - side/2, Y: y}, side, c, 1, 0, shapeSquare)
}

// menuSprites tiles the sliding backdrop over the visible part of the field.
func menuSprites(buf []float32, m game.MenuIntro) []float32 {
	field := game.RectF{X1: game.FieldWidth, Y1: game.FieldHeight}
	r, ok := m.Rect().Intersection(field)
	if !ok {
		return buf
	}
	for y := r.Y0; y < r.Y1; y += menuTile {
		for x := r.X0; x < r.X1; x += menuTile {
			at := game.Vec2{X: x + menuTile/2, Y: y + menuTile/2}
			buf = appendSprite(buf, at, menuTile+1, game.Palette.Backdrop, 1, 0, shapeSquare)
		}
	}
	return buf
}

// textLine is one centred line of overlay text.
type textLine struct {
	Text  string
	Y     float64 // field space
	Scale float32
	Color game.RGB
}

// overlayText lists the text drawn for the session's mode.
func overlayText(s *game.Session) []textLine {
	mid := game.FieldHeight / 2.0
	switch s.Mode() {
	case game.ModeMenu:
		if !s.Menu().Done() {
			return nil
		}
		return []textLine{
			{Text: "SPIDER SMASH", Y: mid - 60, Scale: 4, Color: game.Palette.Title},
			{Text: "Click or press SPACE to start", Y: mid + 20, Scale: 1.5, Color: game.Palette.Text},
			{Text: "Right button runs", Y: mid + 50, Scale: 1, Color: game.Palette.Text.Mul(180)},
		}
	case game.ModeActive:
		return []textLine{
			{Text: fmt.Sprintf("%d", s.Score()), Y: game.HeartTop + game.HeartSize/2, Scale: 2, Color: game.Palette.Text},
		}
	case game.ModeOver:
		return []textLine{
			{Text: "GAME OVER", Y: mid - 40, Scale: 4, Color: game.Palette.Title},
			{Text: fmt.Sprintf("Score %d   Kills %d", s.Score(), s.Kills()), Y: mid + 20, Scale: 1.5, Color: game.Palette.Text},
			{Text: "Press ESC to quit", Y: mid + 50, Scale: 1, Color: game.Palette.Text.Mul(180)},
		}
	}
	return nil
}
