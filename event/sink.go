package event

import (
	"github.com/lixenwraith/kickoff/vmath"
)

// AudioSink receives fire-and-forget sound cues
// Implementations must not block the tick
type AudioSink interface {
	OnKick(pitch float64)
	OnGoal()
	OnCountdownTick(secondsRemaining int)
	OnGoBeep()
	OnPowerUp(kind PowerUpKind)
}

// EffectsSink receives positional cues for particles and flashes
type EffectsSink interface {
	OnKick(at vmath.Vec2, intensity float64)
	OnGoal(at vmath.Vec2)
}

// AchievementSink receives scoring and collection facts, nothing is read back
type AchievementSink interface {
	OnGoalEvent(p GoalPayload)
	OnPowerUpCollected(p PowerUpPayload)
}

// Listener receives every event in emission order
type Listener interface {
	HandleEvent(ev GameEvent)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(ev GameEvent)

func (f ListenerFunc) HandleEvent(ev GameEvent) { f(ev) }
