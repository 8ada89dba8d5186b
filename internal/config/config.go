package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Frontends.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// SeedEnv overrides the RNG seed, like the -seed flag.
const SeedEnv = "SPIDERSMASH_SEED"

// DotenvFile is read from the working directory when present.
const DotenvFile = ".env"

// Config holds presentation and process settings. Nothing here changes
// spawn rates, speeds or damage.
type Config struct {
	Frontend  string    `yaml:"frontend"`
	Seed      uint64    `yaml:"seed"`
	LogLevel  string    `yaml:"log_level"`
	Window    Window    `yaml:"window"`
	Audio     Audio     `yaml:"audio"`
	Collision Collision `yaml:"collision"`
}

type Window struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

type Collision struct {
	FinePhase bool `yaml:"fine_phase"`
}

// Default is the configuration used when no file is given. A zero seed
// means "pick one at startup".
func Default() Config {
	return Config{
		Frontend: FrontendDesktop,
		LogLevel: "info",
		Window:   Window{Scale: 1, Title: "Spider Smash"},
		Audio:    Audio{Enabled: true, MusicVolume: 0.14, SFXVolume: 0.58},
	}
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load returns the defaults overlaid with the YAML file at path (if any)
// and then with the environment. The result is validated.
func Load(path string) (Config, error) {
	return load(path, DotenvFile)
}

func load(path, dotenv string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	lookup, err := envLookup(dotenv)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// envLookup reads the process environment, falling back to the dotenv
// file when it exists. Real environment variables win.
func envLookup(dotenv string) (func(string) (string, bool), error) {
	vars, err := godotenv.Read(dotenv)
	if errors.Is(err, fs.ErrNotExist) {
		return os.LookupEnv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dotenv, err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(SeedEnv); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", SeedEnv, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects values no frontend can honour.
func (c Config) Validate() error {
	var errs []error
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		errs = append(errs, fmt.Errorf("frontend %q: want %s or %s", c.Frontend, FrontendDesktop, FrontendTerminal))
	}
	if c.Window.Scale < 0.5 || c.Window.Scale > 4 {
		errs = append(errs, fmt.Errorf("window.scale %v: want 0.5..4", c.Window.Scale))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume %v: want 0..1", c.Audio.MusicVolume))
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.sfx_volume %v: want 0..1", c.Audio.SFXVolume))
	}
	return errors.Join(errs...)
}
