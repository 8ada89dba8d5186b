package game

// Sound names a cue the session can ask the audio backend for.
type Sound int

const (
	SoundFire Sound = iota
	SoundHurt
	SoundSplatter
	SoundMenuSelect
	SoundGameOver
	MusicMenu
	MusicGame
)

var soundNames = [...]string{"fire", "hurt", "splatter", "menu_select", "game_over", "music_menu", "music_game"}

func (s Sound) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// AudioPlayer plays cues. Implementations must not block the caller.
type AudioPlayer interface {
	PlayLooping(Sound)
	PlayOnce(Sound)
	Stop(Sound)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlayLooping(Sound) {}
func (NopAudio) PlayOnce(Sound)    {}
func (NopAudio) Stop(Sound)        {}
