package physics

import (
	"github.com/lixenwraith/kickoff/vmath"
)

// MagnetProfile defines the annulus in which attraction applies
type MagnetProfile struct {
	MinRange float64 // Inside this the pull is skipped to avoid jitter at contact
	MaxRange float64 // Beyond this the pull is skipped
}

// ApplyMagnetism accelerates the body toward target by strength units/tick
// Returns true if the pull was applied
func ApplyMagnetism(b *Body, target vmath.Vec2, strength float64, profile *MagnetProfile) bool {
	if strength <= 0 {
		return false
	}
	dist := vmath.V2Dist(b.Pos, target)
	if dist <= profile.MinRange || dist >= profile.MaxRange {
		return false
	}
	ApplyImpulse(b, vmath.V2Toward(b.Pos, target, strength))
	return true
}
