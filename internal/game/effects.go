package game

import "math"

// EffectKind identifies a cosmetic, self-expiring effect.
type EffectKind uint8

const (
	EffectBloodSplash EffectKind = iota
	EffectBloodSplat
	EffectFootprint
)

// Effect sizes (field pixels) used for drawing and for splat overlap.
const (
	SplashSize    = 48.0
	SplatSize     = 40.0
	FootprintSize = 8.0
)

// Effect is a non-interactive visual entity. Age counts ticks since it was
// added; the effect is dropped once Age reaches its kind's lifetime.
type Effect struct {
	Kind EffectKind
	Pos  Vec2
	Dir  Direction
	Rot  float64
	Age  int

	seq uint64
}

func (e Effect) Lifetime() int {
	switch e.Kind {
	case EffectBloodSplash:
		return SplashTicks
	case EffectBloodSplat:
		return SplatTicks
	case EffectFootprint:
		return FootprintTicks
	}
	return 1
}

func (e Effect) Expired() bool { return e.Age >= e.Lifetime() }

// Frame is the animation frame of a blood splash.
func (e Effect) Frame() int {
	if e.Kind != EffectBloodSplash {
		return 0
	}
	f := e.Age * SplashFrames / SplashTicks
	if f >= SplashFrames {
		f = SplashFrames - 1
	}
	return f
}

// Opacity in 0..255. Splats fade one step per tick; footprints fade over
// their last half.
func (e Effect) Opacity() uint8 {
	switch e.Kind {
	case EffectBloodSplat:
		return uint8(clampF(float64(255-e.Age), 0, 255))
	case EffectFootprint:
		half := FootprintTicks / 2
		if e.Age < half {
			return 200
		}
		return uint8(200 * float64(FootprintTicks-e.Age) / float64(half))
	}
	return 255
}

func (e Effect) Size() float64 {
	switch e.Kind {
	case EffectBloodSplash:
		return SplashSize
	case EffectBloodSplat:
		return SplatSize
	}
	return FootprintSize
}

func (e Effect) Bounds() RectF {
	s := e.Size()
	return RectFromCenter(e.Pos, s, s)
}

// EffectSystem owns every live effect. When full, a new effect replaces
// the one added longest ago. E is unordered.
type EffectSystem struct {
	Max  int
	E    []Effect
	next uint64
}

func NewEffectSystem(maxEffects int) *EffectSystem {
	if maxEffects <= 0 {
		maxEffects = MaxEffects
	}
	return &EffectSystem{
		Max: maxEffects,
		E:   make([]Effect, 0, maxEffects),
	}
}

func (fx *EffectSystem) Clear() {
	fx.E = fx.E[:0]
}

func (fx *EffectSystem) Len() int { return len(fx.E) }

func (fx *EffectSystem) Add(e Effect) {
	e.seq = fx.next
	fx.next++
	if len(fx.E) < fx.Max {
		fx.E = append(fx.E, e)
		return
	}
	oldest := 0
	for i := range fx.E {
		if fx.E[i].seq < fx.E[oldest].seq {
			oldest = i
		}
	}
	fx.E[oldest] = e
}

// SpawnBlood drops a splash over a splat at pos.
func (fx *EffectSystem) SpawnBlood(pos Vec2, rng *Rand) {
	rot := rng.RangeF(0, 2*math.Pi)
	fx.Add(Effect{Kind: EffectBloodSplat, Pos: pos, Rot: rot})
	fx.Add(Effect{Kind: EffectBloodSplash, Pos: pos, Rot: rot})
}

// Tick ages every effect and swap-removes the expired ones.
func (fx *EffectSystem) Tick() {
	for i := 0; i < len(fx.E); {
		fx.E[i].Age++
		if fx.E[i].Expired() {
			last := len(fx.E) - 1
			fx.E[i] = fx.E[last]
			fx.E = fx.E[:last]
			continue
		}
		i++
	}
}
