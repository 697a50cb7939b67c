package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator generates a mono wave duplicated to both channels
// Frequency glides linearly from freq to endFreq over the duration
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(from*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   start,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, zero gain is expressed as silent
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return newVolume(NewEnvelope(osc, duration, attack, release, rate), gain)
}

// KickSound layers a thump, a pop and a snap, all scaled by the pitch hint
func KickSound(pitch float64, rate beep.SampleRate) beep.Streamer {
	if pitch <= 0 || math.IsNaN(pitch) {
		pitch = 1
	}
	waves := [...]WaveType{WaveTriangle, WaveSquare, WaveSine}
	layers := make([]beep.Streamer, len(parameter.KickLayerFreqs))
	for i, f := range parameter.KickLayerFreqs {
		layers[i] = tone(f*pitch, waves[i], parameter.KickSoundDuration,
			parameter.KickSoundAttack, parameter.KickSoundRelease, parameter.KickLayerVolumes[i], rate)
	}
	return beep.Take(rate.N(parameter.KickSoundDuration), beep.Mix(layers...))
}

// GoalSound plays the chord progression with short gaps
// Mixes are bounded with Take so the sequence advances on time
func GoalSound(rate beep.SampleRate) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(parameter.GoalChords)*2)
	for _, chord := range parameter.GoalChords {
		notes := make([]beep.Streamer, len(chord))
		for i, f := range chord {
			notes[i] = tone(f, WaveTriangle, parameter.GoalChordDuration,
				parameter.GoalChordAttack, parameter.GoalChordRelease, parameter.GoalChordVolume, rate)
		}
		chordLen := rate.N(parameter.GoalChordDuration)
		seq = append(seq, beep.Take(chordLen, beep.Mix(notes...)), beep.Silence(rate.N(parameter.GoalChordGap)))
	}
	return beep.Seq(seq...)
}

// BeepSound is the countdown cue; GO uses a higher frequency
func BeepSound(freq float64, rate beep.SampleRate) beep.Streamer {
	return tone(freq, WaveSine, parameter.BeepDuration, parameter.BeepAttack, parameter.BeepRelease, parameter.BeepVolume, rate)
}

// PowerUpSound is a rising square sweep
func PowerUpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.PowerUpSweepFrom, parameter.PowerUpSweepTo, parameter.PowerUpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.PowerUpSoundDuration, parameter.PowerUpSoundAttack, parameter.PowerUpSoundRelease, rate)
	return newVolume(shaped, parameter.PowerUpSoundVolume)
}
