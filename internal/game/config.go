package game

import "time"

// Field dimensions (in field pixels). All gameplay coordinates live here.
const (
	FieldWidth  = 900
	FieldHeight = 450
)

// Loop timing.
const (
	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond
)

// Player tuning.
const (
	PlayerStartX       = 450.0
	PlayerStartY       = 225.0
	PlayerSize         = 32.0
	PlayerWalkSpeed    = 3.0
	PlayerRunSpeed     = 7.0
	PlayerDeadZone     = 10.0
	PlayerMaxStamina   = 100.0
	PlayerRunDrain     = 1.0
	PlayerStaminaRegen = 0.2
	PlayerMaxHearts    = 5
	InvulnerableFor    = 1200 * time.Millisecond
)

// Player animation cadence (ticks per frame).
const (
	PlayerAnimFrames = 8
	PlayerIdleHold   = 4
	PlayerWalkHold   = 4
	PlayerRunHold    = 2
)

// Blood trail.
const (
	BloodTrailTicks    = 100
	FootprintEvery     = 16
	FootprintFeetShift = 12.0
)

// Spider tuning.
const (
	SpiderDeadZone   = 15.0
	SpawnMinX        = -100
	SpawnMaxX        = 1000
	SpawnMinY        = -100
	SpawnMaxY        = 550
	SpawnMaxDraws    = 64
	OffspringOdds    = 3
	OffspringMin     = 1
	OffspringMax     = 5
	OffspringRadius  = 10.0
	SpawnInterval    = 450 * time.Millisecond
	ScorePerSecond   = 1
	ScorePerMinute   = 100
	ScorePerKill     = 5
	DirectionMargin  = 60.0
	ProjectileSpeed  = 20.0
	ProjectileSize   = 16.0
	ProjectileMargin = 5.0
)

// Spawn exclusion zone: a fresh Adult must lie outside this rectangle.
var SpawnExclusion = RectF{X0: -32, Y0: -32, X1: 982, Y1: 582}

// Effect lifetimes (ticks).
const (
	SplashTicks    = 24
	SplashFrames   = 6
	SplatTicks     = 255
	FootprintTicks = 120
	MaxEffects     = 512
)

// HUD layout.
const (
	HeartSpacing  = 50
	HeartLeft     = 20
	HeartTop      = 20
	HeartSize     = 20
	HeartFrames   = 2
	HeartFlipHold = 15
	StaminaLeft   = 670
	StaminaTop    = 20
	StaminaScale  = 2.0
	StaminaHeight = 18
	StaminaIconX  = 660
)

// Menu intro.
const (
	MenuSlideSpeed = 30.0
	MenuWidth      = 900.0
)
