package audio

import (
	"math"

	"spidersmash/internal/game"
)

const tau = 2 * math.Pi

// putFrame writes one stereo frame of float32 LE samples in [-1,1].
func putFrame(buf []byte, i int, left, right float64) {
	for c, v := range [2]float64{left, right} {
		bits := math.Float32bits(float32(v))
		o := i*8 + c*4
		buf[o] = byte(bits)
		buf[o+1] = byte(bits >> 8)
		buf[o+2] = byte(bits >> 16)
		buf[o+3] = byte(bits >> 24)
	}
}

// softSat bends peaks instead of clipping. The output stays in [-1,1].
func softSat(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 - 0.5/x
	}
	return x - x*x*x/3
}

// env is a linear attack, exponential decay envelope over progress p in [0,1].
func env(p, attack, decay float64) float64 {
	if p < attack {
		return p / attack
	}
	return math.Exp(-(p - attack) * decay)
}

// gate is an attack/decay/sustain/release envelope over one step.
func gate(p, attack, decay, sustain, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (p-attack)/decay*(1-sustain)
	case p < 1-release:
		return sustain
	}
	return sustain * (1 - (p-(1-release))/release)
}

// fm is a two-operator FM voice.
func fm(t, carrier, ratio, index float64) float64 {
	return math.Sin(tau*carrier*t + index*math.Sin(tau*carrier*ratio*t))
}

// noise is a PCG-style white noise source.
type noise uint64

func (n *noise) next() float64 {
	*n = *n*6364136223846793005 + 1442695040888963407
	return float64(int64(uint64(*n)>>33)-(1<<30)) / (1 << 30)
}

// lowpass is a one-pole smoother; k near 1 keeps more of the previous value.
type lowpass struct{ y, k float64 }

func (l *lowpass) step(x float64) float64 {
	l.y = l.y*l.k + x*(1-l.k)
	return l.y
}

// render fills dur seconds of mono sound from fn, called with the time and
// the progress through the cue.
func render(dur float64, seed uint64, fn func(t, p float64, n *noise) float64) []byte {
	frames := int(dur * SampleRate)
	buf := make([]byte, frames*8)
	n := noise(seed)
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		s := softSat(fn(t, float64(i)/float64(frames), &n))
		putFrame(buf, i, s, s)
	}
	return buf
}

// generateSound renders a one-shot cue. seed varies the noise and picks the
// splatter variant so repeated cues do not sound identical.
func generateSound(s game.Sound, seed uint64) []byte {
	switch s {
	case game.SoundFire:
		return fireCue(seed)
	case game.SoundHurt:
		return hurtCue(seed)
	case game.SoundSplatter:
		return splatterCue(seed)
	case game.SoundMenuSelect:
		return selectCue()
	case game.SoundGameOver:
		return gameOverCue()
	}
	return nil
}

// fireCue is a rising zap over a hiss.
func fireCue(seed uint64) []byte {
	var hp lowpass
	hp.k = 0.6
	return render(0.14, seed, func(t, p float64, n *noise) float64 {
		x := n.next()
		hiss := (x - hp.step(x)) * env(p, 0.01, 14) * 0.35
		zap := fm(t, 600+900*p, 2, 1.4*(1-p)) * env(p, 0.02, 7) * 0.4
		return hiss + zap
	})
}

// hurtCue is a falling growl with a crunch on the attack.
func hurtCue(seed uint64) []byte {
	return render(0.22, seed, func(t, p float64, n *noise) float64 {
		f := 170 - 80*p
		f *= 1 + 0.04*math.Sin(tau*28*t)
		growl := fm(t, f, 1.5, 3*(1-p)) * gate(p, 0.02, 0.4, 0.35, 0.3) * 0.55
		crunch := n.next() * env(p, 0.001, 30) * 0.3
		return growl + crunch
	})
}

// splat parameterises one squish variant.
type splat struct {
	dur    float64
	thump  float64 // start frequency of the body
	fall   float64 // how far the body drops over the cue
	smooth float64 // lowpass coefficient for the wet noise
	crack  float64 // length of the chitin crack as a fraction of dur
	wobble float64 // body vibrato rate, 0 for none
}

var splats = [...]splat{
	{dur: 0.15, thump: 95, fall: 40, smooth: 0.55},
	{dur: 0.11, thump: 140, fall: 70, smooth: 0.62, crack: 0.2},
	{dur: 0.19, thump: 70, fall: 25, smooth: 0.74, wobble: 3.2},
	{dur: 0.09, thump: 210, fall: 120, smooth: 0.4, crack: 0.1},
}

// splatterCue is the spider death squish.
func splatterCue(seed uint64) []byte {
	v := splats[seed%uint64(len(splats))]
	wet := lowpass{k: v.smooth}
	phase := 0.0
	return render(v.dur, seed, func(t, p float64, n *noise) float64 {
		f := v.thump - v.fall*p
		if v.wobble > 0 {
			f *= 1 + 0.5*math.Sin(tau*v.wobble*p)
		}
		phase += tau * f / SampleRate
		s := math.Sin(phase) * env(p, 0.005, 12) * 0.45
		s += wet.step(n.next()) * env(p, 0.002, 10) * 0.5
		if p < v.crack {
			s += n.next() * (1 - p/v.crack) * 0.4
		}
		return s * 0.8
	})
}

// selectCue is a two-note blip.
func selectCue() []byte {
	return render(0.09, 0, func(t, p float64, _ *noise) float64 {
		f := 880.0
		if p >= 0.45 {
			f = 1320
		}
		step := math.Mod(p, 0.45) / 0.45
		return fm(t, f, 1, 0.5) * gate(step, 0.05, 0.4, 0.2, 0.3) * 0.35
	})
}

// gameOverNotes fall a minor triad onto a low drone.
var gameOverNotes = []struct{ freq, at float64 }{
	{311.1, 0.00}, // Eb4
	{246.9, 0.16}, // B3
	{207.7, 0.32}, // Ab3
	{103.8, 0.48}, // Ab2
}

// gameOverCue plays the falling notes, each ringing to the end.
func gameOverCue() []byte {
	const dur = 1.1
	return render(dur, 0, func(t, p float64, _ *noise) float64 {
		s := 0.0
		for _, note := range gameOverNotes {
			start := note.at / dur
			if p < start {
				continue
			}
			np := (p - start) / (1 - start)
			f := note.freq * (1 - 0.02*np)
			s += fm(t, f, 2, 1.8*(1-np)) * env(np, 0.01, 4) * 0.28
		}
		return s
	})
}
