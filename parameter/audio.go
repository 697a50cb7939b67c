package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer, bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond
	// AudioDefaultVolume is the master gain at startup
	AudioDefaultVolume = 0.3
	// AudioVolumeStep is the change per volume key press
	AudioVolumeStep = 0.1
)

// Kick: layered thump, pop and snap, frequencies scaled by the pitch hint
const (
	KickSoundDuration = 150 * time.Millisecond
	KickSoundAttack   = 10 * time.Millisecond
	KickSoundRelease  = 140 * time.Millisecond
)

var (
	KickLayerFreqs   = [...]float64{80, 200, 800}
	KickLayerVolumes = [...]float64{0.15, 0.1, 0.05}
)

// Goal: four-chord progression
const (
	GoalChordDuration = 250 * time.Millisecond
	GoalChordGap      = 50 * time.Millisecond
	GoalChordAttack   = 50 * time.Millisecond
	GoalChordRelease  = 200 * time.Millisecond
	GoalChordVolume   = 0.1
)

// GoalChords is C, F, G, C major
var GoalChords = [...][3]float64{
	{261.63, 329.63, 392.00},
	{174.61, 220.00, 261.63},
	{196.00, 246.94, 293.66},
	{261.63, 329.63, 392.00},
}

// Countdown and GO beeps
const (
	CountdownBeepFreq = 440.0
	GoBeepFreq        = 660.0
	BeepDuration      = 200 * time.Millisecond
	BeepAttack        = 50 * time.Millisecond
	BeepRelease       = 150 * time.Millisecond
	BeepVolume        = 0.08
)

// Power-up chime: rising square sweep
const (
	PowerUpSweepFrom     = 440.0
	PowerUpSweepTo       = 880.0
	PowerUpSoundDuration = 300 * time.Millisecond
	PowerUpSoundAttack   = 100 * time.Millisecond
	PowerUpSoundRelease  = 200 * time.Millisecond
	PowerUpSoundVolume   = 0.06
)
