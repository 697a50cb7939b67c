package parameter

// Opponent tactical thresholds, world units
const (
	// OpponentAttackRange switches to attacking when the ball is closer than this
	OpponentAttackRange = 30.0
	// OpponentMarkRange switches to defending when the player is closer than this
	OpponentMarkRange = 50.0
	// OpponentChaseHoldRange stops chasing inside this distance
	OpponentChaseHoldRange = 50.0

	// OpponentDefendLineX is the x of the line the opponent retreats toward
	OpponentDefendLineX = 50.0
)

// Opponent movement scalars applied to effective speed
const (
	DefendSpeedScale   = 0.7
	PositionSpeedScale = 0.5
	ChaseSpeedScale    = 0.6
)

// Opponent timing, ticks
const (
	// RepositionInterval is the cadence at which positioning is considered
	RepositionInterval = 180
	// RepositionChance is the probability of choosing positioning at each interval
	RepositionChance = 0.3

	// ReactionDelayChance is the per-tick probability of starting a reaction delay
	ReactionDelayChance = 0.03
	// ReactionDelayFloor is added to the random reaction draw
	ReactionDelayFloor = 5

	// MistakeMaxTicks bounds the length of a jitter episode
	MistakeMaxTicks = 3
	// MistakeJitter is the half-width of the per-axis jitter range
	MistakeJitter = 1.0

	// CelebrationTicks is the opponent flourish length, 2s at 60 Hz
	CelebrationTicks = 120
	// CelebrationAngleStep advances the flourish angle per elapsed tick
	CelebrationAngleStep = 0.2
	// CelebrationRadiusX and CelebrationRadiusY shape the flourish ellipse
	CelebrationRadiusX = 2.0
	CelebrationRadiusY = 1.0
)

// Opponent kick aim, the target is the left goal mouth center with accuracy-scaled noise
const (
	KickAimX   = WallInset + GoalDepth/2
	KickNoiseX = 100.0
	KickNoiseY = 50.0
)

// Strategic anchors as fractions of the field, chosen by ball half
const (
	CounterAnchorFracX = 0.375
	SupportAnchorFracX = 0.625
	AnchorFracY        = 0.5
)
