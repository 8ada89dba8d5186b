package main

import (
	"flag"
	"io"
	"testing"

	"spidersmash/internal/config"
)

func TestFlagsOverrideConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(c *config.Config)
	}{
		{"none", nil, func(*config.Config) {}},
		{"frontend", []string{"-frontend", "terminal"}, func(c *config.Config) { c.Frontend = config.FrontendTerminal }},
		{"seed", []string{"-seed", "42"}, func(c *config.Config) { c.Seed = 42 }},
		{"mute", []string{"-mute"}, func(c *config.Config) { c.Audio.Enabled = false }},
		{"unmute", []string{"-mute=false"}, func(c *config.Config) { c.Audio.Enabled = true }},
		{"level", []string{"-log-level", "debug"}, func(c *config.Config) { c.LogLevel = "debug" }},
		{"fine", []string{"-fine-phase"}, func(c *config.Config) { c.Collision.FinePhase = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fl, err := parseFlags(fs, tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}

			got := config.Default()
			got.Audio.Enabled = tt.name != "unmute"
			want := got
			tt.want(&want)

			fl.apply(fs, &got)
			if got != want {
				t.Errorf("config = %+v, want %+v", got, want)
			}
		})
	}
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fl, err := parseFlags(fs, []string{"-seed", "7"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg := config.Default()
	cfg.Frontend = config.FrontendTerminal
	cfg.LogLevel = "warn"
	fl.apply(fs, &cfg)

	if cfg.Frontend != config.FrontendTerminal || cfg.LogLevel != "warn" {
		t.Errorf("unset flags changed config: frontend %q level %q", cfg.Frontend, cfg.LogLevel)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
}

func TestBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseFlags(fs, []string{"-nope"}); err == nil {
		t.Error("unknown flag accepted")
	}
}
