package match

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/kickoff/behavior"
	"github.com/lixenwraith/kickoff/parameter"
)

// Minimum pitch that still fits both goal mouths, kickoff positions are clamped into agent bounds
const (
	minFieldWidth  = 320.0
	minFieldHeight = 240.0
)

// ErrUnknownKeys is returned by LoadConfig when the file carries keys Config does not define
var ErrUnknownKeys = errors.New("unknown config keys")

// FieldConfig is the pitch size
type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Config holds session tuning loaded from TOML
type Config struct {
	Field             FieldConfig `toml:"field"`
	Personality       string      `toml:"personality"`
	Adaptive          bool        `toml:"adaptive"`
	TargetWinRate     float64     `toml:"target_win_rate"`
	Gain              float64     `toml:"gain"`
	InitialDifficulty float64     `toml:"initial_difficulty"`
	// Seed of 0 selects a time-based seed
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`
}

// DefaultConfig returns the design values
func DefaultConfig() Config {
	return Config{
		Field:             FieldConfig{Width: parameter.FieldWidth, Height: parameter.FieldHeight},
		Personality:       behavior.DefaultPersonality.String(),
		Adaptive:          true,
		TargetWinRate:     parameter.DifficultyTargetWinRate,
		Gain:              parameter.DifficultyGain,
		InitialDifficulty: parameter.DifficultyInitial,
	}
}

// LoadConfig decodes a TOML file over DefaultConfig, absent keys keep their defaults
// The result is not normalized
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Normalize clamps out-of-range values and substitutes defaults
// Returns a description of every adjustment for the caller to log
func (c *Config) Normalize() []string {
	var adjusted []string
	def := DefaultConfig()

	if invalidFloat(c.Field.Width) || c.Field.Width < minFieldWidth {
		adjusted = append(adjusted, fmt.Sprintf("field.width %v -> %v", c.Field.Width, def.Field.Width))
		c.Field.Width = def.Field.Width
	}
	if invalidFloat(c.Field.Height) || c.Field.Height < minFieldHeight {
		adjusted = append(adjusted, fmt.Sprintf("field.height %v -> %v", c.Field.Height, def.Field.Height))
		c.Field.Height = def.Field.Height
	}

	name, ok := behavior.ParsePersonality(c.Personality)
	if !ok {
		adjusted = append(adjusted, fmt.Sprintf("personality %q -> %q", c.Personality, name.String()))
	}
	c.Personality = name.String()

	if invalidFloat(c.TargetWinRate) || c.TargetWinRate <= 0 || c.TargetWinRate >= 1 {
		adjusted = append(adjusted, fmt.Sprintf("target_win_rate %v -> %v", c.TargetWinRate, def.TargetWinRate))
		c.TargetWinRate = def.TargetWinRate
	}
	if invalidFloat(c.Gain) || c.Gain <= 0 {
		adjusted = append(adjusted, fmt.Sprintf("gain %v -> %v", c.Gain, def.Gain))
		c.Gain = def.Gain
	}
	if invalidFloat(c.InitialDifficulty) {
		adjusted = append(adjusted, fmt.Sprintf("initial_difficulty %v -> %v", c.InitialDifficulty, def.InitialDifficulty))
		c.InitialDifficulty = def.InitialDifficulty
	} else if c.InitialDifficulty < parameter.DifficultyMin || c.InitialDifficulty > parameter.DifficultyMax {
		clamped := math.Min(math.Max(c.InitialDifficulty, parameter.DifficultyMin), parameter.DifficultyMax)
		adjusted = append(adjusted, fmt.Sprintf("initial_difficulty %v -> %v", c.InitialDifficulty, clamped))
		c.InitialDifficulty = clamped
	}

	return adjusted
}

func invalidFloat(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
