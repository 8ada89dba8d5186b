package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"spidersmash/internal/game"
)

var (
	glyphAdult     = [2]rune{'X', 'x'}
	glyphBaby      = [2]rune{'*', '+'}
	glyphPlayer    = map[game.Facing]rune{game.FacingFront: 'v', game.FacingBack: '^', game.FacingLeft: '<', game.FacingRight: '>'}
	glyphSplash    = []rune{'.', 'o', 'O', '@', '%', ':'}
	glyphHeart     = [game.HeartFrames]rune{'♥', '♡'}
	glyphFootprint = ','
	glyphSplat     = '~'
	glyphShot      = '•'
)

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fg(c game.RGB) tcell.Style       { return tcell.StyleDefault.Foreground(color(c)) }
func fgBg(c, bg game.RGB) tcell.Style { return fg(c).Background(color(bg)) }

// Present draws one frame of s.
func (f *Frontend) Present(s *game.Session) error {
	f.screen.Clear()
	switch s.Mode() {
	case game.ModeMenu:
		f.drawMenu(s.Menu())
	case game.ModeActive:
		f.drawField(s)
		f.drawHUD(s.HUD())
	case game.ModeOver:
		f.drawField(s)
		f.drawOver(s)
	}
	if f.hurtFlash > 0 {
		f.hurtFlash--
		f.drawBorder(fg(game.Palette.Blood))
	}
	f.screen.Show()
	return nil
}

func (f *Frontend) drawMenu(m game.MenuIntro) {
	w, h := f.screen.Size()
	r := m.Rect()
	x0, _, _ := f.fieldToCell(game.Vec2{X: max(r.X0, 0)})
	x1, _, _ := f.fieldToCell(game.Vec2{X: min(r.X1, game.FieldWidth-1)})
	back := fgBg(game.Palette.Text, game.Palette.Backdrop)
	for y := 0; y < h; y++ {
		for x := x0; x <= x1 && x < w; x++ {
			f.screen.SetContent(x, y, ' ', nil, back)
		}
	}
	if !m.Done() {
		return
	}
	title := fgBg(game.Palette.Title, game.Palette.Backdrop).Bold(true)
	f.drawCentered(h/2-1, "SPIDER SMASH", title)
	f.drawCentered(h/2+1, "click or press space to start", back)
	f.drawCentered(h/2+2, "right button runs, esc quits", back.Dim(true))
}

func (f *Frontend) drawField(s *game.Session) {
	w, h := f.screen.Size()
	ground := fgBg(game.Palette.GroundSpeck, game.Palette.Ground)
	for y := hudRows; y < h; y++ {
		for x := 0; x < w; x++ {
			r := ' '
			if (x*7+y*13)%23 == 0 {
				r = '.'
			}
			f.screen.SetContent(x, y, r, nil, ground)
		}
	}

	for _, e := range s.Effects() {
		f.drawEffect(e)
	}
	for _, sp := range s.Spiders() {
		f.drawSpider(sp)
	}
	for _, p := range s.Projectiles() {
		f.put(p.Center, glyphShot, game.Palette.Projectile)
	}
	if p := s.Player(); p != nil {
		c := game.Palette.Player
		if p.Invulnerable(s.Now()) && s.Ticks()%8 < 4 {
			c = game.Palette.PlayerHurt
		}
		f.put(p.Pos, glyphPlayer[p.Facing], c)
	}
}

func (f *Frontend) drawEffect(e game.Effect) {
	switch e.Kind {
	case game.EffectBloodSplash:
		f.put(e.Pos, glyphSplash[e.Frame()%len(glyphSplash)], game.Palette.Blood)
	case game.EffectBloodSplat:
		c := game.Palette.Blood.Mul(e.Opacity())
		if e.Opacity() < 128 {
			c = game.Palette.BloodDark
		}
		// Splats cover a patch of cells so the trail mechanic stays readable.
		b := e.Bounds()
		for _, p := range []game.Vec2{{X: b.X0, Y: e.Pos.Y}, e.Pos, {X: b.X1, Y: e.Pos.Y}} {
			f.put(p, glyphSplat, c)
		}
	case game.EffectFootprint:
		f.put(e.Pos, glyphFootprint, game.Palette.BloodDark)
	}
}

func (f *Frontend) drawSpider(sp *game.Spider) {
	glyph := glyphAdult[sp.Frame%2]
	c := game.Palette.SpiderAdult
	if sp.Kind == game.SpiderBaby {
		glyph = glyphBaby[sp.Frame%2]
		c = game.Palette.SpiderBaby
	}
	if sp.Attacking {
		c = game.Palette.SpiderAttack
	}
	x, y, ok := f.fieldToCell(sp.Pos)
	if !ok {
		return
	}
	f.screen.SetContent(x, y, glyph, nil, fgBg(c, game.Palette.Ground).Bold(true))
}

func (f *Frontend) put(p game.Vec2, r rune, c game.RGB) {
	x, y, ok := f.fieldToCell(p)
	if !ok {
		return
	}
	f.screen.SetContent(x, y, r, nil, fgBg(c, game.Palette.Ground))
}

func (f *Frontend) drawHUD(h game.HUD) {
	w, _ := f.screen.Size()
	bar := fgBg(game.Palette.Text, game.Palette.Backdrop)
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, 0, ' ', nil, bar)
	}

	x := 1
	for i := 0; i < h.MaxHearts; i++ {
		st := fgBg(game.Palette.Heart, game.Palette.Backdrop)
		r := glyphHeart[h.HeartFrame%game.HeartFrames]
		if i >= h.Hearts {
			st = fgBg(game.Palette.HeartDim, game.Palette.Backdrop)
			r = glyphHeart[1]
		}
		f.screen.SetContent(x, 0, r, nil, st)
		x += 2
	}

	score := fmt.Sprintf("score %d", h.Score)
	f.drawText(x+1, 0, score, bar)

	// Ten cells, one per ten points of stamina.
	const cells = 10
	filled := int(h.Stamina / game.PlayerMaxStamina * cells)
	sx := w - cells - 2
	fill := fgBg(game.BarColor(h.Stamina/game.PlayerMaxStamina), game.Palette.StaminaBack)
	empty := fgBg(game.Palette.StaminaBack, game.Palette.StaminaBack)
	for i := 0; i < cells; i++ {
		st := empty
		if i < filled {
			st = fill
		}
		f.screen.SetContent(sx+i, 0, '█', nil, st)
	}
}

func (f *Frontend) drawOver(s *game.Session) {
	_, h := f.screen.Size()
	st := fgBg(game.Palette.Title, game.Palette.Backdrop).Bold(true)
	text := fgBg(game.Palette.Text, game.Palette.Backdrop)
	f.drawCentered(h/2-1, " GAME OVER ", st)
	f.drawCentered(h/2+1, fmt.Sprintf(" score %d  kills %d ", s.Score(), s.Kills()), text)
	f.drawCentered(h/2+2, " esc to quit ", text.Dim(true))
}

func (f *Frontend) drawBorder(st tcell.Style) {
	w, h := f.screen.Size()
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, hudRows, '─', nil, st)
		f.screen.SetContent(x, h-1, '─', nil, st)
	}
	for y := hudRows; y < h; y++ {
		f.screen.SetContent(0, y, '│', nil, st)
		f.screen.SetContent(w-1, y, '│', nil, st)
	}
}

func (f *Frontend) drawCentered(y int, s string, st tcell.Style) {
	w, _ := f.screen.Size()
	f.drawText((w-len([]rune(s)))/2, y, s, st)
}

func (f *Frontend) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, st)
	}
}
