package game

import "math"

// SpiderKind tags the two spider variants.
type SpiderKind uint8

const (
	SpiderAdult SpiderKind = iota
	SpiderBaby
	spiderKindCount
)

func (k SpiderKind) String() string {
	if k == SpiderBaby {
		return "baby"
	}
	return "adult"
}

type spiderStats struct {
	Size         float64
	Speed        float64
	IdleFrames   int
	AttackFrames int
	IdleHold     int
	AttackHold   int
	Hatches      bool
	IdleSet      string
	AttackSet    string
}

var spiderTable = [spiderKindCount]spiderStats{
	SpiderAdult: {
		Size: 32, Speed: 2,
		IdleFrames: 7, AttackFrames: 4,
		IdleHold: 6, AttackHold: 12,
		Hatches: true,
		IdleSet: SetSpiderAdultIdle, AttackSet: SetSpiderAdultAttack,
	},
	SpiderBaby: {
		Size: 24, Speed: 3,
		IdleFrames: 7, AttackFrames: 4,
		IdleHold: 3, AttackHold: 6,
		IdleSet: SetSpiderBabyIdle, AttackSet: SetSpiderBabyAttack,
	},
}

// Size is the hitbox edge length for the kind.
func (k SpiderKind) Size() float64 { return spiderTable[k].Size }

// Spider chases the player. Its hitbox is fixed by kind; rotation only
// changes how it is drawn.
type Spider struct {
	Kind      SpiderKind
	Pos       Vec2
	Spawn     Vec2
	Facing    Direction
	Attacking bool
	Frame     int

	hold   int
	strips Strips
	dead   bool
}

func NewSpider(kind SpiderKind, pos Vec2) *Spider {
	return &Spider{Kind: kind, Pos: pos, Spawn: pos, Facing: DirS}
}

// UseStrips makes the animation wrap on the resolved strip lengths.
func (s *Spider) UseStrips(st Strips) { s.strips = st }

func (s *Spider) stats() *spiderStats { return &spiderTable[s.Kind] }

func (s *Spider) Bounds() RectF {
	sz := s.stats().Size
	return RectFromCenter(s.Pos, sz, sz)
}

func (s *Spider) Alive() bool { return !s.dead }
func (s *Spider) Kill()       { s.dead = true }

// Tick steers toward the player. A spider inside its dead zone stops and
// attacks; attack and idle strips advance at their own cadence.
func (s *Spider) Tick(player Vec2) {
	st := s.stats()
	step := Steer(player, s.Pos, SpiderDeadZone, st.Speed)
	s.Pos = s.Pos.Add(step)

	attacking := step.IsZero()
	if attacking != s.Attacking {
		s.Attacking = attacking
		s.Frame = 0
		s.hold = 0
	}

	off := player.Sub(s.Pos)
	if d := ClassifyDirection(off.X, off.Y); d != DirNone {
		s.Facing = d
	}

	hold, frames := st.IdleHold, st.IdleFrames
	if s.Attacking {
		hold, frames = st.AttackHold, st.AttackFrames
	}
	frames = s.strips.Len(SpiderSet(s), frames)
	s.hold++
	if s.hold >= hold {
		s.hold = 0
		s.Frame++
	}
	s.Frame %= frames
}

// OnDeath leaves blood where the spider died. An Adult hatches 1-5 Babies
// with probability 1/OffspringOdds; Babies never hatch anything.
func (s *Spider) OnDeath(rng *Rand, fx *EffectSystem) []*Spider {
	fx.SpawnBlood(s.Pos, rng)
	if !s.stats().Hatches || rng.Intn(OffspringOdds) != 0 {
		return nil
	}
	n := rng.Range(OffspringMin, OffspringMax)
	babies := make([]*Spider, 0, n)
	phase := rng.RangeF(0, 2*math.Pi)
	for i := 0; i < n; i++ {
		a := phase + float64(i)*2*math.Pi/float64(n)
		off := Vec2{X: OffspringRadius * math.Cos(a), Y: OffspringRadius * math.Sin(a)}
		babies = append(babies, NewSpider(SpiderBaby, s.Pos.Add(off)))
	}
	return babies
}
