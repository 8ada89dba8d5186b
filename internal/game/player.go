package game

import "time"

// Facing is the four-way sprite orientation of the player.
type Facing uint8

const (
	FacingFront Facing = iota
	FacingBack
	FacingLeft
	FacingRight
)

// facingFor maps an eight-way heading onto the player's four sprite
// orientations. DirNone keeps the previous facing.
func facingFor(d Direction, prev Facing) Facing {
	switch d {
	case DirE, DirNE, DirSE:
		return FacingRight
	case DirW, DirNW, DirSW:
		return FacingLeft
	case DirN:
		return FacingBack
	case DirS:
		return FacingFront
	}
	return prev
}

// AnimState selects which sprite strip the player is cycling through.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimStateCount
)

var animHold = [AnimStateCount]int{
	AnimIdle: PlayerIdleHold,
	AnimWalk: PlayerWalkHold,
	AnimRun:  PlayerRunHold,
}

// Player is the pointer-steered survivor.
type Player struct {
	Pos      Vec2
	Velocity float64
	Stamina  float64
	Hearts   Hearts
	Facing   Facing
	Heading  Direction
	Anim     AnimState
	Frame    int
	Step     Vec2

	hold         int
	invulnUntil  time.Duration
	invulnerable bool

	trailTicks int
	trailClock int

	strips Strips
	dead   bool
}

// NewPlayer places a fresh player in the middle of the field. Animation
// wraps on PlayerAnimFrames until UseStrips supplies resolved sets.
func NewPlayer() *Player {
	return &Player{
		Pos:      Vec2{X: PlayerStartX, Y: PlayerStartY},
		Velocity: PlayerWalkSpeed,
		Stamina:  PlayerMaxStamina,
		Hearts:   NewHearts(PlayerMaxHearts),
		Facing:   FacingFront,
	}
}

func (p *Player) UseStrips(s Strips) { p.strips = s }

func (p *Player) Bounds() RectF { return RectFromCenter(p.Pos, PlayerSize, PlayerSize) }
func (p *Player) Alive() bool   { return !p.dead }
func (p *Player) Kill()         { p.dead = true }

// Invulnerable reports whether damage would currently be ignored.
func (p *Player) Invulnerable(now time.Duration) bool {
	return p.invulnerable && now < p.invulnUntil
}

// Tick steers the player toward the pointer and advances stamina,
// facing, invulnerability and animation by one tick.
func (p *Player) Tick(pointer Vec2, runHeld bool, now time.Duration) {
	step := Steer(pointer, p.Pos, PlayerDeadZone, p.Velocity)

	if runHeld && p.Stamina > 0 {
		p.Velocity = PlayerRunSpeed
		p.Stamina -= PlayerRunDrain
	} else {
		p.Velocity = PlayerWalkSpeed
		if !runHeld {
			p.Stamina += PlayerStaminaRegen
		}
	}
	p.Stamina = clampF(p.Stamina, 0, PlayerMaxStamina)

	p.Pos = p.Pos.Add(step)
	p.Step = step

	off := pointer.Sub(p.Pos)
	if d := ClassifyDirection(off.X, off.Y); d != DirNone {
		p.Heading = d
		p.Facing = facingFor(d, p.Facing)
	}

	if p.invulnerable && now >= p.invulnUntil {
		p.invulnerable = false
	}

	p.animate(step)

	if p.trailTicks > 0 {
		p.trailTicks--
		p.trailClock++
	}
}

func (p *Player) animate(step Vec2) {
	state := AnimWalk
	switch {
	case step.IsZero():
		state = AnimIdle
	case p.Velocity == PlayerRunSpeed:
		state = AnimRun
	}
	if state != p.Anim {
		p.Anim = state
		p.Frame = 0
		p.hold = 0
		return
	}
	frames := p.strips.Len(PlayerSet(p.Facing, state), PlayerAnimFrames)
	p.hold++
	if p.hold >= animHold[state] {
		p.hold = 0
		p.Frame++
	}
	p.Frame %= frames
}

// TakeDamage removes one heart and starts the invulnerability window.
// It is a no-op while invulnerable or once hearts are exhausted.
func (p *Player) TakeDamage(now time.Duration) bool {
	if p.Invulnerable(now) || p.Hearts.Empty() {
		return false
	}
	p.Hearts.Lose()
	p.invulnerable = true
	p.invulnUntil = now + InvulnerableFor
	return true
}

// SteppedInBlood refreshes the blood trail.
func (p *Player) SteppedInBlood() {
	if p.trailTicks == 0 {
		p.trailClock = 0
	}
	p.trailTicks = BloodTrailTicks
}

// HasBloodTrail reports whether the player is still leaving footprints.
func (p *Player) HasBloodTrail() bool { return p.trailTicks > 0 }

// LeaveTrail drops a footprint at the player's feet every FootprintEvery
// ticks while the blood trail lasts.
func (p *Player) LeaveTrail(fx *EffectSystem) bool {
	if p.trailTicks <= 0 || p.Step.IsZero() || p.trailClock%FootprintEvery != 0 {
		return false
	}
	feet := Vec2{X: p.Pos.X, Y: p.Pos.Y + FootprintFeetShift}
	fx.Add(Effect{Kind: EffectFootprint, Pos: feet, Dir: p.Heading})
	return true
}
