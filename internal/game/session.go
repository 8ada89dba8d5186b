package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Session owns every piece of simulation state. It is driven one tick at
// a time by Loop and read by the frontend between ticks.
type Session struct {
	mode     Mode
	handlers map[Mode]modeHandler

	player      *Player
	spiders     []*Spider
	projectiles []*Projectile
	effects     *EffectSystem
	collider    *Collider

	score int
	kills int

	spawnTimer  Timer
	secondTimer Timer
	minuteTimer Timer

	hud  HUD
	menu MenuIntro

	ticks       int64
	rng         *Rand
	bus         *EventBus
	log         zerolog.Logger
	audio       AudioPlayer
	assets      AssetProvider
	sets        Strips
	finePhase   bool
	seed        uint64
	prevConfirm bool
	pointer     Vec2
}

// Option configures a Session.
type Option func(*Session)

func WithSeed(seed uint64) Option { return func(s *Session) { s.seed = seed } }

func WithAudio(a AudioPlayer) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// WithFinePhase enables per-pixel mask confirmation of collisions.
func WithFinePhase(on bool) Option { return func(s *Session) { s.finePhase = on } }

// WithEventBus lets the caller subscribe before the first mode entry.
func WithEventBus(b *EventBus) Option {
	return func(s *Session) {
		if b != nil {
			s.bus = b
		}
	}
}

func WithAssets(p AssetProvider) Option {
	return func(s *Session) {
		if p != nil {
			s.assets = p
		}
	}
}

// NewSession resolves assets, wires audio and logging to the event bus
// and enters the menu.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		seed:        1,
		log:         zerolog.Nop(),
		audio:       NopAudio{},
		bus:         NewEventBus(),
		spawnTimer:  NewTimer(SpawnInterval),
		secondTimer: NewTimer(time.Second),
		minuteTimer: NewTimer(time.Minute),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.assets == nil {
		s.assets = NewProceduralAssets()
	}

	sets, err := ResolveAssets(s.assets)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s.sets = sets
	s.rng = NewRand(s.seed)
	s.effects = NewEffectSystem(MaxEffects)
	s.collider = NewCollider(s.finePhase)
	s.handlers = s.buildHandlers()

	WireSoundCues(s.bus, s.audio)
	WireEventLog(s.bus, s.log)

	s.log.Debug().Uint64("seed", s.seed).Bool("fine_phase", s.finePhase).Int("asset_sets", len(sets)).Msg("session created")
	s.enter(ModeMenu)
	return s, nil
}

// Tick advances the simulation by one fixed step.
func (s *Session) Tick(in InputState) {
	confirm := in.Left || in.Space
	edge := confirm && !s.prevConfirm
	s.prevConfirm = confirm
	s.pointer = in.Pointer

	s.ticks++
	s.handlers[s.mode].tick(in, edge)
}

// Now is the simulated time: ticks elapsed at exactly TicksPerSecond.
func (s *Session) Now() time.Duration {
	return time.Duration(s.ticks) * time.Second / TicksPerSecond
}

func (s *Session) Mode() Mode                 { return s.mode }
func (s *Session) Ticks() int64               { return s.ticks }
func (s *Session) Score() int                 { return s.score }
func (s *Session) Kills() int                 { return s.kills }
func (s *Session) Player() *Player            { return s.player }
func (s *Session) Spiders() []*Spider         { return s.spiders }
func (s *Session) Projectiles() []*Projectile { return s.projectiles }
func (s *Session) Effects() []Effect          { return s.effects.E }
func (s *Session) HUD() HUD                   { return s.hud }
func (s *Session) Menu() MenuIntro            { return s.menu }
func (s *Session) Pointer() Vec2              { return s.pointer }
func (s *Session) Events() *EventBus          { return s.bus }

// FrameSet returns a resolved sprite set; ok is false for unknown names.
func (s *Session) FrameSet(name string) (FrameSet, bool) {
	set, ok := s.sets[name]
	return set, ok
}
