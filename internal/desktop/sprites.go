package desktop

import (
	"spidersmash/internal/game"
)

const (
	spriteFloats = 9
	maxSprites   = 4096

	shadowAlpha  = 0.35
	shadowOffset = 6
	haloSize     = 56
)

// Sprite shapes, drawn procedurally by spriteFragSrc.
const (
	shapeSquare float32 = iota
	shapeDisc
	shapeSpider
	shapePlayer
	shapeHeart
)

func appendSprite(buf []float32, p game.Vec2, size float64, c game.RGB, alpha, rot float64, shape float32) []float32 {
	return append(buf,
		float32(p.X), float32(p.Y), float32(size),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(alpha),
		float32(rot), shape,
	)
}

// frameSprites holds one frame's sprite buffers in draw order.
type frameSprites struct {
	Normal []float32
	Glow   []float32
}

func (f *frameSprites) reset() {
	f.Normal = f.Normal[:0]
	f.Glow = f.Glow[:0]
}

// build fills f from the session's field. Blood lies under the shadows,
// shadows under the actors, projectiles over spiders and the player last.
func (f *frameSprites) build(s *game.Session) {
	f.reset()
	for _, e := range s.Effects() {
		f.Normal = appendEffect(f.Normal, e)
	}

	p := s.Player()
	for _, sp := range s.Spiders() {
		f.Normal = appendShadow(f.Normal, sp.Pos, sp.Kind.Size())
	}
	if p != nil {
		f.Normal = appendShadow(f.Normal, p.Pos, game.PlayerSize)
	}

	for _, sp := range s.Spiders() {
		c := game.Palette.SpiderAdult
		if sp.Kind == game.SpiderBaby {
			c = game.Palette.SpiderBaby
		}
		if sp.Attacking && sp.Frame%2 == 1 {
			c = game.Palette.SpiderAttack
		}
		f.Normal = appendSprite(f.Normal, sp.Pos, sp.Kind.Size(), c, 1, sp.Facing.Angle(), shapeSpider)
	}

	for _, pr := range s.Projectiles() {
		f.Normal = appendSprite(f.Normal, pr.Center, game.ProjectileSize/2, game.Palette.Projectile, 1, 0, shapeDisc)
		f.Glow = appendSprite(f.Glow, pr.Center, haloSize, game.Palette.Projectile.Mul(90), 1, 0, shapeDisc)
	}

	if p != nil {
		c := game.Palette.Player
		alpha := 1.0
		if p.Invulnerable(s.Now()) && s.Ticks()%8 < 4 {
			c = game.Palette.PlayerHurt
			alpha = 0.6
		}
		f.Normal = appendSprite(f.Normal, p.Pos, game.PlayerSize, c, alpha, p.Heading.Angle(), shapePlayer)
	}
}

func appendShadow(buf []float32, p game.Vec2, size float64) []float32 {
	at := game.Vec2{X: p.X, Y: p.Y + shadowOffset}
	return appendSprite(buf, at, size*0.9, game.RGB{}, shadowAlpha, 0, shapeDisc)
}

func appendEffect(buf []float32, e game.Effect) []float32 {
	alpha := float64(e.Opacity()) / 255
	switch e.Kind {
	case game.EffectBloodSplash:
		// The splash grows over its frames.
		grow := 0.4 + 0.6*float64(e.Frame()+1)/game.SplashFrames
		return appendSprite(buf, e.Pos, e.Size()*grow, game.Palette.Blood, alpha, e.Rot, shapeDisc)
	case game.EffectBloodSplat:
		return appendSprite(buf, e.Pos, e.Size(), game.Palette.BloodDark, alpha, e.Rot, shapeDisc)
	}
	return appendSprite(buf, e.Pos, e.Size(), game.Palette.BloodDark, alpha, e.Dir.Angle(), shapeDisc)
}
