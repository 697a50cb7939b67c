package parameter

// Power-up table values, ticks at 60 Hz
const (
	SpeedBoostFactor = 2.0
	SpeedBoostTicks  = 600

	BigGoalFactor = 1.5
	BigGoalTicks  = 900

	MagnetTicks = 750
)

// Parameter push clamps
const (
	SpeedMultiplierMin = 0.25
	SpeedMultiplierMax = 4.0

	GoalMultiplierMin = 0.5
	GoalMultiplierMax = 2.5

	// EffectMaxTicks caps any pushed duration
	EffectMaxTicks = 3600
)
