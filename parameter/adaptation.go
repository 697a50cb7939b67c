package parameter

// Closed-loop difficulty controller
const (
	// DifficultyInitial is the starting difficulty of a fresh controller
	DifficultyInitial = 0.5
	// DifficultyMin and DifficultyMax clamp every update
	DifficultyMin = 0.1
	DifficultyMax = 0.9

	// DifficultyTargetWinRate is the opponent goal share the controller steers toward
	DifficultyTargetWinRate = 0.4
	// DifficultyGain scales the win-rate error per goal
	DifficultyGain = 0.1

	// DifficultyHistorySize bounds the rolling sample window
	DifficultyHistorySize = 10
)

// Skill label thresholds, upper bounds exclusive
const (
	SkillBeginnerBelow     = 0.3
	SkillIntermediateBelow = 0.6
	SkillAdvancedBelow     = 0.8
)

// Effective personality blend coefficients: value * (Base + Slope*difficulty)
const (
	BlendSpeedBase       = 0.7
	BlendSpeedSlope      = 0.6
	BlendAccuracyBase    = 0.5
	BlendAccuracySlope   = 0.5
	BlendReactionBase    = 1.5
	BlendReactionSlope   = -0.8
	BlendAggressionBase  = 0.7
	BlendAggressionSlope = 0.6
	BlendMistakeBase     = 1.5
	BlendMistakeSlope    = -1.0
)
