package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// SoundManager synthesizes match cues into a speaker mixer
// It implements event.AudioSink; every cue is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64

	logger *zap.Logger
}

var _ event.AudioSink = (*SoundManager)(nil)

// NewSoundManager creates a manager from config, nil logger disables logging
func NewSoundManager(cfg Config, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		rate:   beep.SampleRate(rate),
		mixer:  mixer,
		master: newVolume(mixer, cfg.Volume),
		volume: vmath.Clamp(cfg.Volume, 0, 1),
		logger: logger,
	}
	sm.muted.Store(!cfg.Enabled)
	sm.applyMaster()
	return sm
}

// Initialize opens the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		sm.logger.Warn("audio unavailable, continuing silent", zap.Error(err))
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	sm.logger.Debug("audio initialized", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close stops playback and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// play queues a streamer, returns false when nothing will be heard
func (sm *SoundManager) play(s beep.Streamer) bool {
	if sm.muted.Load() {
		return false
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

func (sm *SoundManager) OnKick(pitch float64) { sm.play(KickSound(pitch, sm.rate)) }

func (sm *SoundManager) OnGoal() { sm.play(GoalSound(sm.rate)) }

func (sm *SoundManager) OnCountdownTick(int) {
	sm.play(BeepSound(parameter.CountdownBeepFreq, sm.rate))
}

func (sm *SoundManager) OnGoBeep() { sm.play(BeepSound(parameter.GoBeepFreq, sm.rate)) }

func (sm *SoundManager) OnPowerUp(event.PowerUpKind) { sm.play(PowerUpSound(sm.rate)) }

// ToggleMute flips mute, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return !muted
}

// SetMuted silences or restores output, including sounds already playing
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.applyMaster()
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// SetVolume sets master gain, clamped to [0, 1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = vmath.Clamp(vol, 0, 1)
	sm.applyMaster()
}

// AdjustVolume changes master gain by delta and returns the new value
func (sm *SoundManager) AdjustVolume(delta float64) float64 {
	sm.SetVolume(sm.Volume() + delta)
	return sm.Volume()
}

// Volume returns master gain
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Played returns the number of cues queued to the speaker
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// applyMaster rebuilds master gain; caller holds mu
func (sm *SoundManager) applyMaster() {
	next := newVolume(sm.mixer, sm.volume)
	if sm.muted.Load() {
		next.Silent = true
	}
	if sm.initialized {
		speaker.Lock()
	}
	sm.master.Volume = next.Volume
	sm.master.Silent = next.Silent
	if sm.initialized {
		speaker.Unlock()
	}
}
