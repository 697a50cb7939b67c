package physics

import (
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// Ball is the contested body: friction-damped, bounces off walls, velocity overwritten by kicks
// Created once per session and reset in place
type Ball struct {
	Body
	Friction      float64 // (0,1), applied once per tick
	BounceDamping float64 // (0,1), applied to the reflected normal component
}

// NewBall creates a ball at rest with design friction and damping
func NewBall(pos vmath.Vec2) *Ball {
	return &Ball{
		Body:          NewBody(pos, parameter.BallRadius),
		Friction:      parameter.BallFriction,
		BounceDamping: parameter.BallBounceDamping,
	}
}

// Step advances the ball by one tick and resolves wall contact
// Returns true if any wall was hit
func (b *Ball) Step(f Field) bool {
	Integrate(&b.Body, b.Friction, parameter.VelocityEpsilon)

	w := f.Walls()
	hitX := ReflectBoundsX(&b.Body, w.MinX, w.MaxX, b.BounceDamping)
	hitY := ReflectBoundsY(&b.Body, w.MinY, w.MaxY, b.BounceDamping)
	return hitX || hitY
}

// Kick replaces velocity with dir normalized to kick power
func (b *Ball) Kick(dir vmath.Vec2) vmath.Vec2 {
	return ApplyKick(&b.Body, dir, &AgentKick)
}

// Attract pulls the ball toward target when inside the magnet annulus
func (b *Ball) Attract(target vmath.Vec2, strength float64) bool {
	return ApplyMagnetism(&b.Body, target, strength, &BallMagnet)
}

// Speed returns current velocity magnitude
func (b *Ball) Speed() float64 {
	return vmath.V2Mag(b.Vel)
}
