package game

import "github.com/rs/zerolog"

type EventType int

const (
	EventModeChanged EventType = iota
	EventProjectileFired
	EventPlayerHurt
	EventSpiderSpawned
	EventSpiderKilled
	EventBabiesHatched
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (new mode, hearts left, babies hatched).
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order, on the
// goroutine that emits them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// WireSoundCues maps session events onto audio cues, including the music
// changes on every mode entry.
func WireSoundCues(bus *EventBus, audio AudioPlayer) {
	bus.Subscribe(EventModeChanged, func(e Event) {
		switch Mode(e.Data) {
		case ModeMenu:
			audio.PlayLooping(MusicMenu)
		case ModeActive:
			audio.Stop(MusicMenu)
			audio.PlayOnce(SoundMenuSelect)
			audio.PlayLooping(MusicGame)
		case ModeOver:
			audio.Stop(MusicGame)
			audio.PlayOnce(SoundGameOver)
		}
	})
	bus.Subscribe(EventProjectileFired, func(Event) { audio.PlayOnce(SoundFire) })
	bus.Subscribe(EventPlayerHurt, func(Event) { audio.PlayOnce(SoundHurt) })
	bus.Subscribe(EventSpiderKilled, func(Event) { audio.PlayOnce(SoundSplatter) })
}

// WireEventLog logs session events. Per-entity events go out at debug.
func WireEventLog(bus *EventBus, log zerolog.Logger) {
	bus.Subscribe(EventModeChanged, func(e Event) {
		log.Info().Stringer("mode", Mode(e.Data)).Msg("mode changed")
	})
	bus.Subscribe(EventPlayerHurt, func(e Event) {
		log.Debug().Int("hearts", e.Data).Float64("x", e.X).Float64("y", e.Y).Msg("player hurt")
	})
	bus.Subscribe(EventSpiderKilled, func(e Event) {
		log.Debug().Float64("x", e.X).Float64("y", e.Y).Msg("spider killed")
	})
	bus.Subscribe(EventBabiesHatched, func(e Event) {
		log.Debug().Int("babies", e.Data).Float64("x", e.X).Float64("y", e.Y).Msg("babies hatched")
	})
}
