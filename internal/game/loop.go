package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// maxLag bounds how far the loop may fall behind before it drops ticks
// instead of trying to catch up.
const maxLag = 100 * time.Millisecond

// Loop drives a Session at a fixed TicksPerSecond through a Frontend.
type Loop struct {
	Session  *Session
	Frontend Frontend
	Clock    Clock
	Log      zerolog.Logger

	// MaxTicks stops the loop after that many ticks; zero runs forever.
	MaxTicks int64
}

// Run polls, ticks, presents and then sleeps to the next tick boundary
// until the user quits, ctx is cancelled or the frontend fails. Quitting
// is not an error.
func (l *Loop) Run(ctx context.Context) error {
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	next := clock.Now()
	var ticks int64

	for {
		select {
		case <-ctx.Done():
			l.Log.Info().Msg("loop cancelled")
			return nil
		default:
		}

		in, err := l.Frontend.Poll()
		if err != nil {
			return quitOr(err, "poll input")
		}
		if in.Quit {
			l.Log.Info().Int64("ticks", ticks).Msg("quit")
			return nil
		}

		l.Session.Tick(in)
		ticks++

		if err := l.Frontend.Present(l.Session); err != nil {
			return quitOr(err, "present")
		}
		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			return nil
		}

		next = next.Add(TickDuration)
		now := clock.Now()
		if d := next.Sub(now); d > 0 {
			clock.Sleep(d)
		} else if -d > maxLag {
			l.Log.Debug().Dur("behind", -d).Msg("dropping ticks")
			next = now
		}
	}
}

func quitOr(err error, op string) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
