package physics

import (
	"github.com/lixenwraith/kickoff/vmath"
)

// ImpulseMode defines how impulse is applied to velocity
type ImpulseMode uint8

const (
	// ImpulseAdditive adds impulse to existing velocity
	ImpulseAdditive ImpulseMode = iota
	// ImpulseOverride replaces velocity with impulse
	ImpulseOverride
)

// KickProfile defines the impulse an agent imparts on contact
type KickProfile struct {
	Power float64     // Resulting speed along the kick direction, units/tick
	Mode  ImpulseMode // Additive or Override
}

// Collides reports whether two bodies overlap, touching does not count
func Collides(a, b *Body) bool {
	r := a.Radius + b.Radius
	return vmath.V2DistSq(a.Pos, b.Pos) < r*r
}

// ApplyKick normalizes dir and applies it to the target per profile
// Zero direction falls back to +X
func ApplyKick(target *Body, dir vmath.Vec2, profile *KickProfile) vmath.Vec2 {
	if vmath.V2IsZero(dir) {
		dir = vmath.V2(1, 0)
	}
	impulse := vmath.V2Scale(vmath.V2Normalize(dir), profile.Power)

	switch profile.Mode {
	case ImpulseAdditive:
		ApplyImpulse(target, impulse)
	case ImpulseOverride:
		SetImpulse(target, impulse)
	}
	return target.Vel
}
