package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"spidersmash/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Options sets the mixer levels. Volumes are clamped to [0,1].
type Options struct {
	MusicVolume float64
	SFXVolume   float64
	Log         zerolog.Logger
}

// Player plays procedural cues through oto. It implements game.AudioPlayer;
// every method returns immediately.
type Player struct {
	ctx   *oto.Context
	ready chan struct{}
	log   zerolog.Logger

	musicVolume float64
	sfxVolume   float64

	mu      sync.Mutex
	music   map[game.Sound]oto.Player
	seed    uint64
	closed  bool
	pending sync.WaitGroup
}

var _ game.AudioPlayer = (*Player)(nil)

// New opens the audio device. Playback requests made before the device is
// ready are dropped.
func New(opts Options) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	p := &Player{
		ctx:         ctx,
		ready:       ready,
		log:         opts.Log,
		musicVolume: clampF(opts.MusicVolume, 0, 1),
		sfxVolume:   clampF(opts.SFXVolume, 0, 1),
		music:       make(map[game.Sound]oto.Player),
		seed:        uint64(time.Now().UnixNano()),
	}
	p.log.Debug().Int("sample_rate", SampleRate).Float64("music", p.musicVolume).Float64("sfx", p.sfxVolume).Msg("audio ready")
	return p, nil
}

func (p *Player) isReady() bool {
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// PlayOnce renders a one-shot effect and plays it on its own oto player.
func (p *Player) PlayOnce(s game.Sound) {
	if p.sfxVolume <= 0 || !p.isReady() {
		return
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.seed++
	samples := generateSound(s, p.seed)
	p.pending.Add(1)
	p.mu.Unlock()
	if len(samples) == 0 {
		p.pending.Done()
		return
	}
	go func() {
		defer p.pending.Done()
		reader := &soundReader{data: samples}
		player := p.ctx.NewPlayer(reader)
		player.SetVolume(p.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Debug().Err(err).Stringer("sound", s).Msg("close sfx player")
		}
	}()
}

// PlayLooping starts a music track, replacing any instance of the same
// track already playing.
func (p *Player) PlayLooping(s game.Sound) {
	if !p.isReady() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.stopLocked(s)

	var reader io.Reader
	switch s {
	case game.MusicMenu:
		reader = newMusicReader(&menuTrack, p.seed)
	case game.MusicGame:
		reader = newMusicReader(&gameTracks[p.seed%gameMusicStyles], p.seed)
	default:
		p.log.Warn().Stringer("sound", s).Msg("not a music track")
		return
	}
	player := p.ctx.NewPlayer(reader)
	player.SetVolume(p.musicVolume)
	player.Play()
	p.music[s] = player
}

func (p *Player) Stop(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(s)
}

func (p *Player) stopLocked(s game.Sound) {
	mp, ok := p.music[s]
	if !ok {
		return
	}
	delete(p.music, s)
	if err := mp.Close(); err != nil {
		p.log.Debug().Err(err).Stringer("sound", s).Msg("close music player")
	}
}

// Close stops every track and waits for in-flight effects to finish.
func (p *Player) Close() error {
	p.mu.Lock()
	p.closed = true
	for s := range p.music {
		p.stopLocked(s)
	}
	p.mu.Unlock()
	p.pending.Wait()
	return nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
