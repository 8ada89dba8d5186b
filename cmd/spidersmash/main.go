package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"spidersmash/internal/audio"
	"spidersmash/internal/config"
	"spidersmash/internal/desktop"
	"spidersmash/internal/game"
	"spidersmash/internal/logging"
	"spidersmash/internal/terminal"
)

// glfw and GL calls must stay on the main thread.
func init() { runtime.LockOSThread() }

type flags struct {
	config    string
	frontend  string
	seed      uint64
	mute      bool
	logLevel  string
	finePhase bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.StringVar(&f.frontend, "frontend", "", "desktop or terminal")
	fs.Uint64Var(&f.seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	fs.BoolVar(&f.mute, "mute", false, "disable audio")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&f.finePhase, "fine-phase", false, "confirm collisions against sprite masks")
	err := fs.Parse(args)
	return f, err
}

// apply overlays the flags the user actually set.
func (f flags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frontend":
			cfg.Frontend = f.frontend
		case "seed":
			cfg.Seed = f.seed
		case "mute":
			cfg.Audio.Enabled = !f.mute
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "fine-phase":
			cfg.Collision.FinePhase = f.finePhase
		}
	})
}

type frontend interface {
	game.Frontend
	Attach(bus *game.EventBus)
}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := run(os.Args[1:], &log); err != nil {
		log.Fatal().Err(err).Msg("spidersmash")
	}
}

func run(args []string, log *zerolog.Logger) error {
	fs := flag.NewFlagSet("spidersmash", flag.ContinueOnError)
	fl, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(fl.config)
	if err != nil {
		return err
	}
	fl.apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	// The terminal frontend owns the tty; hold log lines until it closes.
	var held bytes.Buffer
	var out io.Writer = os.Stderr
	if cfg.Frontend == config.FrontendTerminal {
		out = &held
	}
	l, err := logging.New(cfg.LogLevel, out)
	if err != nil {
		return err
	}
	*log = l
	defer func() {
		os.Stderr.Write(held.Bytes())
		*log, _ = logging.New(cfg.LogLevel, os.Stderr)
	}()
	log.Info().Str("frontend", cfg.Frontend).Uint64("seed", cfg.Seed).Msg("starting")

	var player game.AudioPlayer = game.NopAudio{}
	if cfg.Audio.Enabled {
		a, err := audio.New(audio.Options{
			MusicVolume: cfg.Audio.MusicVolume,
			SFXVolume:   cfg.Audio.SFXVolume,
			Log:         log.With().Str("component", "audio").Logger(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			defer a.Close()
			player = a
		}
	}

	fe, err := openFrontend(cfg, *log)
	if err != nil {
		return err
	}
	defer fe.Close()

	bus := game.NewEventBus()
	fe.Attach(bus)
	session, err := game.NewSession(
		game.WithSeed(cfg.Seed),
		game.WithAudio(player),
		game.WithLogger(log.With().Str("component", "session").Logger()),
		game.WithFinePhase(cfg.Collision.FinePhase),
		game.WithEventBus(bus),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.Loop{Session: session, Frontend: fe, Log: *log}
	if err := loop.Run(ctx); err != nil {
		return err
	}
	log.Info().Int("score", session.Score()).Int("kills", session.Kills()).Msg("bye")
	return nil
}

func openFrontend(cfg config.Config, log zerolog.Logger) (frontend, error) {
	log = log.With().Str("component", cfg.Frontend).Logger()
	if cfg.Frontend == config.FrontendTerminal {
		return terminal.New(log)
	}
	return desktop.New(desktop.Options{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
		Seed:  cfg.Seed,
	}, log)
}
