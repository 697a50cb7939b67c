package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/kickoff/vmath"
)

// ErrInvariant marks a body whose state can no longer be integrated
var ErrInvariant = errors.New("physics invariant violated")

// Body is the shared position/velocity/radius primitive
// Velocity is expressed in world units per tick
type Body struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	last bodyState
}

type bodyState struct {
	pos    vmath.Vec2
	vel    vmath.Vec2
	radius float64
}

// NewBody creates a body at rest and records it as the last valid state
func NewBody(pos vmath.Vec2, radius float64) Body {
	b := Body{Pos: pos, Radius: radius}
	b.Commit()
	return b
}

// Integrate performs one fixed tick: v *= damping, sub-epsilon components zeroed, p += v
func Integrate(b *Body, damping, epsilon float64) {
	b.Vel.X = vmath.SnapZero(b.Vel.X*damping, epsilon)
	b.Vel.Y = vmath.SnapZero(b.Vel.Y*damping, epsilon)
	b.Pos = vmath.V2Add(b.Pos, b.Vel)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(b *Body, impulse vmath.Vec2) {
	b.Vel = vmath.V2Add(b.Vel, impulse)
}

// SetImpulse overrides velocity
func SetImpulse(b *Body, vel vmath.Vec2) {
	b.Vel = vel
}

// ReflectBoundsX handles vertical-wall contact, returns true if reflection occurred
// Contact when the circle touches or crosses minX/maxX; the normal component is negated and damped,
// position is clamped to the wall plus radius
func ReflectBoundsX(b *Body, minX, maxX, damping float64) bool {
	if b.Pos.X-b.Radius <= minX {
		b.Vel.X = -b.Vel.X * damping
		b.Pos.X = minX + b.Radius
		return true
	}
	if b.Pos.X+b.Radius >= maxX {
		b.Vel.X = -b.Vel.X * damping
		b.Pos.X = maxX - b.Radius
		return true
	}
	return false
}

// ReflectBoundsY handles horizontal-wall contact, returns true if reflection occurred
func ReflectBoundsY(b *Body, minY, maxY, damping float64) bool {
	if b.Pos.Y-b.Radius <= minY {
		b.Vel.Y = -b.Vel.Y * damping
		b.Pos.Y = minY + b.Radius
		return true
	}
	if b.Pos.Y+b.Radius >= maxY {
		b.Vel.Y = -b.Vel.Y * damping
		b.Pos.Y = maxY - b.Radius
		return true
	}
	return false
}

// Place teleports the body to pos at rest and commits it
func (b *Body) Place(pos vmath.Vec2) {
	b.Pos = pos
	b.Vel = vmath.Vec2{}
	b.Commit()
}

// Check returns a wrapped ErrInvariant when the body cannot be stepped safely
func (b *Body) Check() error {
	if b.Radius <= 0 {
		return fmt.Errorf("%w: radius %f", ErrInvariant, b.Radius)
	}
	if !vmath.V2IsFinite(b.Pos) {
		return fmt.Errorf("%w: position %+v", ErrInvariant, b.Pos)
	}
	if !vmath.V2IsFinite(b.Vel) {
		return fmt.Errorf("%w: velocity %+v", ErrInvariant, b.Vel)
	}
	return nil
}

// Commit records the current state as the last valid one
func (b *Body) Commit() {
	b.last = bodyState{pos: b.Pos, vel: b.Vel, radius: b.Radius}
}

// Restore snaps the body back to the last committed state
func (b *Body) Restore() {
	b.Pos = b.last.pos
	b.Vel = b.last.vel
	b.Radius = b.last.radius
}

// Settle commits a valid body or restores an invalid one, returning the violation if any
func (b *Body) Settle() error {
	if err := b.Check(); err != nil {
		b.Restore()
		return err
	}
	b.Commit()
	return nil
}
