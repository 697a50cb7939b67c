package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// Config controls the sound output
type Config struct {
	Enabled    bool
	Volume     float64 // Master gain in [0, 1]
	SampleRate int
}

// DefaultConfig returns audio enabled at the design volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadConfig overlays KICKOFF_AUDIO_* environment variables on the defaults
// Unparseable values are ignored
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("KICKOFF_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume as 0-100
	if volume := os.Getenv("KICKOFF_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if rate := os.Getenv("KICKOFF_AUDIO_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
