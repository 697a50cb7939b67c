package physics

import (
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// Agent is a moving body that can kick the ball
// Player and Opponent share this shape and differ only in intent source
type Agent struct {
	Body
	BaseSpeed float64
	Effects   Effects

	lastMove vmath.Vec2
}

// NewAgent creates an agent at rest
func NewAgent(pos vmath.Vec2, baseSpeed float64) *Agent {
	return &Agent{
		Body:      NewBody(pos, parameter.AgentRadius),
		BaseSpeed: baseSpeed,
	}
}

// Move applies delta per axis, an axis whose result leaves bounds is skipped
// Non-zero deltas are remembered as the last move direction
func (a *Agent) Move(delta vmath.Vec2, bounds Rect) {
	if vmath.V2IsZero(delta) {
		return
	}
	if nx := a.Pos.X + delta.X; nx >= bounds.MinX && nx <= bounds.MaxX {
		a.Pos.X = nx
	}
	if ny := a.Pos.Y + delta.Y; ny >= bounds.MinY && ny <= bounds.MaxY {
		a.Pos.Y = ny
	}
	a.lastMove = delta
}

// Speed returns base speed scaled by an active speed effect
func (a *Agent) Speed() float64 {
	return a.BaseSpeed * a.SpeedMultiplier()
}

// SpeedMultiplier returns the active speed factor, 1 when none
func (a *Agent) SpeedMultiplier() float64 {
	if v, ok := a.Effects.Get(EffectSpeed); ok {
		return v
	}
	return 1
}

// MagnetStrength returns the active magnet pull, 0 when none
func (a *Agent) MagnetStrength() float64 {
	v, _ := a.Effects.Get(EffectMagnet)
	return v
}

// LastMove returns the last non-zero movement delta
func (a *Agent) LastMove() vmath.Vec2 {
	return a.lastMove
}

// KickDirection returns the normalized last move direction, (1,0) if the agent never moved
func (a *Agent) KickDirection() vmath.Vec2 {
	if vmath.V2IsZero(a.lastMove) {
		return vmath.V2(1, 0)
	}
	return vmath.V2Normalize(a.lastMove)
}

// CollidesWith reports strict overlap with another body
func (a *Agent) CollidesWith(b *Body) bool {
	return Collides(&a.Body, b)
}

// Reset places the agent at pos; last move direction and effects are kept
func (a *Agent) Reset(pos vmath.Vec2) {
	a.Place(pos)
}
