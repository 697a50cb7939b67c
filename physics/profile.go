package physics

import (
	"github.com/lixenwraith/kickoff/parameter"
)

// Profiles - pre-defined for zero allocation in hot path

// AgentKick replaces ball velocity on agent contact
var AgentKick = KickProfile{
	Power: parameter.KickPower,
	Mode:  ImpulseOverride,
}

// BallMagnet is the magnetism annulus used by the magnet effect
var BallMagnet = MagnetProfile{
	MinRange: parameter.MagnetMinRange,
	MaxRange: parameter.MagnetMaxRange,
}
