package parameter

// Field geometry, design values for an 800x600 pitch
const (
	// FieldWidth is the default pitch width in world units
	FieldWidth = 800.0
	// FieldHeight is the default pitch height in world units
	FieldHeight = 600.0

	// WallInset is the distance of each wall from the field edge
	WallInset = 20.0
	// AgentInset bounds agent centers, agents are rejected per-axis outside it
	AgentInset = 40.0
)

// Ball physics
const (
	BallRadius = 12.0

	// BallFriction scales velocity once per tick
	BallFriction = 0.95

	// BallBounceDamping scales the reflected normal component on wall contact
	BallBounceDamping = 0.7

	// VelocityEpsilon zeroes velocity components below this magnitude
	VelocityEpsilon = 0.1

	// KickPower is the ball speed in units/tick after any kick
	KickPower = 8.0
)

// Magnetism pulls the ball toward an agent only inside (MagnetMinRange, MagnetMaxRange)
const (
	MagnetMinRange        = 5.0
	MagnetMaxRange        = 100.0
	MagnetDefaultStrength = 0.3
	MagnetMaxStrength     = 1.0
)
