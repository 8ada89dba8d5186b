package game

// Mode is the top-level game state.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeActive
	ModeOver
)

var modeNames = [...]string{"menu", "active", "over"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

type modeHandler struct {
	enter func()
	tick  func(in InputState, confirm bool)
	leave func()
}

func (s *Session) buildHandlers() map[Mode]modeHandler {
	return map[Mode]modeHandler{
		ModeMenu: {
			enter: func() { s.menu = MenuIntro{} },
			tick:  s.tickMenu,
		},
		ModeActive: {
			enter: s.enterActive,
			tick:  s.tickActive,
			leave: s.leaveActive,
		},
		ModeOver: {
			tick: func(InputState, bool) {},
		},
	}
}

// transition moves to m, running leave/enter hooks. Over is terminal and
// re-entering the current mode is a no-op.
func (s *Session) transition(m Mode) {
	if m == s.mode || s.mode == ModeOver {
		return
	}
	if h := s.handlers[s.mode]; h.leave != nil {
		h.leave()
	}
	s.enter(m)
}

func (s *Session) enter(m Mode) {
	s.mode = m
	if h := s.handlers[m]; h.enter != nil {
		h.enter()
	}
	s.bus.Emit(Event{Type: EventModeChanged, Data: int(m)})
}

func (s *Session) tickMenu(_ InputState, confirm bool) {
	s.menu.Tick()
	if confirm {
		s.transition(ModeActive)
	}
}

func (s *Session) enterActive() {
	now := s.Now()
	s.player = NewPlayer()
	s.player.UseStrips(s.sets)
	s.spiders = s.spiders[:0]
	s.projectiles = s.projectiles[:0]
	s.effects.Clear()
	s.score = 0
	s.kills = 0
	s.spawnTimer.Start(now)
	s.secondTimer.Start(now)
	s.minuteTimer.Start(now)
	s.hud.Update(s.player, s.score)
}

func (s *Session) leaveActive() {
	s.spawnTimer.Stop()
	s.secondTimer.Stop()
	s.minuteTimer.Stop()
	clear(s.spiders)
	s.spiders = s.spiders[:0]
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	s.log.Info().Int("score", s.score).Int("kills", s.kills).Msg("run ended")
}

func (s *Session) tickActive(in InputState, fire bool) {
	now := s.Now()

	for range s.spawnTimer.Fire(now) {
		sp := SpawnAdult(s.rng)
		sp.UseStrips(s.sets)
		s.spiders = append(s.spiders, sp)
		s.bus.Emit(Event{Type: EventSpiderSpawned, X: sp.Pos.X, Y: sp.Pos.Y})
	}
	s.score += s.secondTimer.Fire(now) * ScorePerSecond
	s.score += s.minuteTimer.Fire(now) * ScorePerMinute

	s.effects.Tick()

	for _, sp := range s.spiders {
		sp.Tick(s.player.Pos)
	}

	s.player.Tick(in.Pointer, in.Right, now)
	s.player.LeaveTrail(s.effects)

	for _, pr := range s.projectiles {
		pr.Tick()
	}
	if fire {
		pr := NewProjectile(s.player.Pos, in.Pointer)
		s.projectiles = append(s.projectiles, pr)
		s.bus.Emit(Event{Type: EventProjectileFired, X: pr.Pos.X, Y: pr.Pos.Y})
	}

	if s.collider.ResolvePlayerVsEnemies(s.player, s.spiders, now) {
		s.bus.Emit(Event{Type: EventPlayerHurt, X: s.player.Pos.X, Y: s.player.Pos.Y, Data: s.player.Hearts.Current})
	}
	kills := s.collider.ResolveProjectilesVsEnemies(s.projectiles, s.spiders)
	s.score += kills * ScorePerKill
	s.kills += kills
	s.collider.ResolvePlayerVsBlood(s.player, s.effects)

	s.cleanup()

	s.hud.Update(s.player, s.score)

	if s.player.Hearts.Empty() {
		s.transition(ModeOver)
	}
}

// cleanup runs death effects for spiders killed this tick, then drops
// dead spiders and projectiles. Hatched babies join after the sweep.
func (s *Session) cleanup() {
	var hatched []*Spider
	for _, sp := range s.spiders {
		if sp.Alive() {
			continue
		}
		s.bus.Emit(Event{Type: EventSpiderKilled, X: sp.Pos.X, Y: sp.Pos.Y, Data: int(sp.Kind)})
		babies := sp.OnDeath(s.rng, s.effects)
		if len(babies) > 0 {
			s.bus.Emit(Event{Type: EventBabiesHatched, X: sp.Pos.X, Y: sp.Pos.Y, Data: len(babies)})
			for _, b := range babies {
				b.UseStrips(s.sets)
			}
			hatched = append(hatched, babies...)
		}
	}
	s.spiders = append(removeDead(s.spiders), hatched...)
	s.projectiles = removeDead(s.projectiles)
}
