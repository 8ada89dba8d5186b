package audio

import "math"

// gameMusicStyles is the number of in-run arrangements; one is picked per
// run.
const gameMusicStyles = 2

// track is a looping arrangement. Steps are sixteenth notes; each pattern
// holds one bar. Chords change every chordBeats beats.
type track struct {
	bpm        float64
	chords     [][]float64 // Hz, root first
	chordBeats int

	kick  uint16 // bit i set = hit on step i
	snare uint16
	hats  uint16
	bass  uint16

	arp     []int     // chord tone per eighth note; nil = no arpeggio
	lead    []float64 // ratio to the chord's third per beat; nil = no lead
	skitter float64   // probability per step of a high tick, 0 = none

	padGain float64
	arpGain float64
}

// pattern builds a step mask from a 16-char string where 'x' is a hit.
func pattern(s string) uint16 {
	var m uint16
	for i := 0; i < len(s) && i < 16; i++ {
		if s[i] == 'x' {
			m |= 1 << i
		}
	}
	return m
}

func hit(mask uint16, step int) bool { return mask&(1<<(step%16)) != 0 }

var menuTrack = track{
	bpm: 84,
	chords: [][]float64{
		{110.0, 130.8, 164.8}, // Am
		{116.5, 146.8, 174.6}, // Bb
		{110.0, 130.8, 155.6}, // Adim
		{103.8, 123.5, 164.8}, // E/G#
	},
	chordBeats: 8,
	kick:       pattern("x.......x.x....."),
	bass:       pattern("x.....x.x......."),
	arp:        []int{0, 2, 1, 2, 0, 2, 1, 0},
	skitter:    0.08,
	padGain:    0.9,
	arpGain:    0.14,
}

var gameTracks = [gameMusicStyles]track{
	{ // crawl: heavy and minor
		bpm: 128,
		chords: [][]float64{
			{82.4, 98.0, 123.5}, // Em
			{87.3, 103.8, 130.8},
			{73.4, 87.3, 110.0},
			{77.8, 92.5, 116.5},
		},
		chordBeats: 4,
		kick:       pattern("x...x...x...x..x"),
		snare:      pattern("....x.......x..."),
		hats:       pattern("x.x.x.x.x.x.x.x."),
		bass:       pattern("x.xxx.x.x.xxx.x."),
		arp:        []int{2, 1, 0, 1, 2, 1, 0, 1},
		skitter:    0.15,
		padGain:    0.7,
		arpGain:    0.4,
	},
	{ // swarm: fast, with a lead
		bpm: 152,
		chords: [][]float64{
			{110.0, 130.8, 164.8},
			{98.0, 116.5, 146.8},
			{87.3, 110.0, 130.8},
			{82.4, 103.8, 123.5},
		},
		chordBeats: 2,
		kick:       pattern("x..x..x.x..x..x."),
		snare:      pattern("....x.......x..x"),
		hats:       pattern("xxxxxxxxxxxxxxxx"),
		bass:       pattern("x.x.x.x.x.x.x.x."),
		arp:        []int{0, 1, 2, 1, 0, 2, 1, 2},
		lead:       []float64{1, 1.19, 1.5, 1.19},
		skitter:    0.25,
		padGain:    0.55,
		arpGain:    0.5,
	},
}

// musicReader synthesizes a track forever. oto pulls from it on its own
// goroutine; nothing else touches a reader once it is playing.
type musicReader struct {
	t    float64
	trk  *track
	n    noise
	step int // last sixteenth seen, for per-step decisions
	tick bool
}

func newMusicReader(trk *track, seed uint64) *musicReader {
	return &musicReader{trk: trk, n: noise(seed), step: -1}
}

func (m *musicReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	for i := 0; i < frames; i++ {
		m.t += 1.0 / SampleRate
		l, r := m.sample()
		putFrame(p, i, l, r)
	}
	return frames * 8, nil
}

func (m *musicReader) sample() (float64, float64) {
	k := m.trk
	beats := m.t * k.bpm / 60
	beat := int(beats)
	beatP := beats - float64(beat)
	sixteenths := beats * 4
	step := int(sixteenths)
	stepP := sixteenths - float64(step)
	stepLen := 15 / k.bpm // seconds per sixteenth
	trig := stepP * stepLen
	bar := beat / 4

	if step != m.step {
		m.step = step
		m.tick = k.skitter > 0 && (m.n.next()+1)/2 < k.skitter
	}

	chord := k.chords[(beat/k.chordBeats)%len(k.chords)]
	s := pad(m.t, chord) * k.padGain * (0.6 + 0.4*math.Sin(tau*m.t/8))

	if hit(k.bass, step) {
		s += bassVoice(m.t, chord[0]/2, gate(stepP, 0.03, 0.5, 0.4, 0.2)) * 0.5
	}
	if hit(k.kick, step) {
		s += kickVoice(trig)
	}
	if hit(k.snare, step) {
		s += snareVoice(trig, &m.n) * 0.7
	}
	if hit(k.hats, step) {
		s += hatVoice(trig, &m.n) * 0.6
	}
	if m.tick {
		s += m.n.next() * math.Exp(-trig*300) * 0.05
	}
	if k.arp != nil {
		eighth := step / 2
		tone := chord[k.arp[eighth%len(k.arp)]%len(chord)] * 2
		p := math.Mod(sixteenths/2, 1)
		s += pluck(m.t, tone, gate(p, 0.01, 0.3, 0.15, 0.2)) * k.arpGain
	}
	if k.lead != nil && bar%4 >= 2 {
		f := chord[1] * 2 * k.lead[beat%len(k.lead)]
		s += leadVoice(m.t, f, gate(beatP, 0.02, 0.3, 0.25, 0.2)) * 0.35
	}

	// Duck the bed under every beat.
	s *= 1 - 0.15*math.Exp(-beatP*12)
	pan := 0.1 * math.Sin(tau*0.07*m.t)
	return softSat(s * (1 - pan)), softSat(s * (1 + pan))
}

func kickVoice(trig float64) float64 {
	if trig > 0.3 {
		return 0
	}
	f := 45 + 110*math.Exp(-trig*30)
	return math.Sin(tau*f*trig) * math.Exp(-trig*14) * 0.8
}

func snareVoice(trig float64, n *noise) float64 {
	if trig > 0.2 {
		return 0
	}
	tone := math.Sin(tau*190*trig) * 0.25
	return (tone + n.next()*0.5) * math.Exp(-trig*24)
}

func hatVoice(trig float64, n *noise) float64 {
	if trig > 0.05 {
		return 0
	}
	return n.next() * math.Exp(-trig*60) * 0.08
}

func bassVoice(t, f, e float64) float64 {
	return (fm(t, f, 0.5, 1.2*e)*0.5 + math.Sin(tau*f*t)*0.3) * e
}

// pad is three slightly detuned FM voices per chord tone.
func pad(t float64, chord []float64) float64 {
	s := 0.0
	for _, f := range chord {
		for _, d := range [3]float64{-0.003, 0, 0.004} {
			s += fm(t, f*(1+d), 1.5, 0.6) * 0.05
		}
	}
	return s
}

func pluck(t, f, e float64) float64 {
	return fm(t, f, 2, 3*e) * e * 0.3
}

func leadVoice(t, f, e float64) float64 {
	vib := 1 + 0.008*math.Sin(tau*5.5*t)
	return fm(t, f*vib, 1.5, 2.4*e) * e * 0.4
}
