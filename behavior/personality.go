package behavior

import (
	"strings"

	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// PersonalityName is the closed set of opponent presets
type PersonalityName uint8

const (
	PersonalityEasy PersonalityName = iota
	PersonalityMedium
	PersonalityHard
	PersonalityFriendly

	personalityCount
)

// DefaultPersonality is used at startup and substituted for unknown names
const DefaultPersonality = PersonalityMedium

// Profile governs opponent movement, accuracy and mistake tendencies
type Profile struct {
	Speed         float64 // Movement units per tick before state scaling
	Accuracy      float64 // [0,1], 1 kicks dead center
	ReactionTicks float64 // Upper bound of a random reaction delay
	MistakeChance float64 // [0,1], per-tick probability of a jitter episode
	Aggression    float64 // [0,1], scales attacking speed
}

var profiles = [personalityCount]Profile{
	PersonalityEasy:     {Speed: 1.5, Accuracy: 0.3, ReactionTicks: 60, MistakeChance: 0.3, Aggression: 0.2},
	PersonalityMedium:   {Speed: 2.5, Accuracy: 0.6, ReactionTicks: 30, MistakeChance: 0.15, Aggression: 0.5},
	PersonalityHard:     {Speed: 3.5, Accuracy: 0.9, ReactionTicks: 10, MistakeChance: 0.05, Aggression: 0.8},
	PersonalityFriendly: {Speed: 2.0, Accuracy: 0.4, ReactionTicks: 45, MistakeChance: 0.4, Aggression: 0.3},
}

var personalityNames = [personalityCount]string{
	PersonalityEasy:     "easy",
	PersonalityMedium:   "medium",
	PersonalityHard:     "hard",
	PersonalityFriendly: "friendly",
}

func (n PersonalityName) String() string {
	if n < personalityCount {
		return personalityNames[n]
	}
	return "unknown"
}

// Valid reports whether n names a defined preset
func (n PersonalityName) Valid() bool {
	return n < personalityCount
}

// Profile returns the preset, falling back to the default for out-of-range values
func (n PersonalityName) Profile() Profile {
	if n >= personalityCount {
		return profiles[DefaultPersonality]
	}
	return profiles[n]
}

// ParsePersonality resolves a case-insensitive name
func ParsePersonality(s string) (PersonalityName, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range personalityNames {
		if name == s {
			return PersonalityName(i), true
		}
	}
	return DefaultPersonality, false
}

// Personalities lists presets in display order
func Personalities() []PersonalityName {
	out := make([]PersonalityName, personalityCount)
	for i := range out {
		out[i] = PersonalityName(i)
	}
	return out
}

// Effective blends a profile with the controller difficulty
// Raw values are returned unchanged when adaptive is off
func Effective(p Profile, difficulty float64, adaptive bool) Profile {
	if !adaptive {
		return p
	}
	d := difficulty
	return Profile{
		Speed:         p.Speed * (parameter.BlendSpeedBase + parameter.BlendSpeedSlope*d),
		Accuracy:      vmath.Clamp(p.Accuracy*(parameter.BlendAccuracyBase+parameter.BlendAccuracySlope*d), 0, 1),
		ReactionTicks: p.ReactionTicks * (parameter.BlendReactionBase + parameter.BlendReactionSlope*d),
		MistakeChance: vmath.Clamp(p.MistakeChance*(parameter.BlendMistakeBase+parameter.BlendMistakeSlope*d), 0, 1),
		Aggression:    vmath.Clamp(p.Aggression*(parameter.BlendAggressionBase+parameter.BlendAggressionSlope*d), 0, 1),
	}
}
