package parameter

// Agent body
const (
	AgentRadius = 20.0

	// PlayerSpeed is human movement per axis per tick
	PlayerSpeed = 5.0

	// OpponentBaseSpeed is the nominal opponent speed, personality profiles override it
	OpponentBaseSpeed = 2.5
)

// Kickoff placement offsets relative to field center
const (
	// OpponentKickoffOffsetY places the opponent above center
	OpponentKickoffOffsetY = -100.0
	// BallKickoffOffsetY places the ball below center on restart
	BallKickoffOffsetY = 50.0
)

// Kick feedback hints for audio and effects collaborators
const (
	PlayerKickPitchBase     = 0.9
	PlayerKickPitchSpread   = 0.2
	PlayerKickIntensity     = 1.5
	OpponentKickPitchBase   = 0.8
	OpponentKickPitchSpread = 0.15
	OpponentKickIntensity   = 1.0
)
