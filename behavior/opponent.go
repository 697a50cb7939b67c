package behavior

import (
	"math"

	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
	"github.com/lixenwraith/kickoff/vmath"
)

// TickContext is the read-only view handed to behavior each tick
type TickContext struct {
	Field      physics.Field
	Difficulty float64
	Adaptive   bool
	Rand       vmath.Rand
}

// Opponent drives the computer agent: tactical evaluation gated by reaction delay,
// mistake jitter and an uninterruptible celebration
// It owns no agent state; Update returns a movement delta for the caller to apply
type Opponent struct {
	personality PersonalityName
	effective   Profile

	tactical   State
	current    State
	stateTimer int

	delayTicks       int
	mistakeTicks     int
	celebrationTicks int
}

// NewOpponent creates behavior for the given preset
func NewOpponent(name PersonalityName) *Opponent {
	o := &Opponent{}
	o.SetPersonality(name)
	o.Reset()
	return o
}

// SetPersonality switches preset, invalid names fall back to the default
// Returns false if a fallback occurred
func (o *Opponent) SetPersonality(name PersonalityName) bool {
	ok := name.Valid()
	if !ok {
		name = DefaultPersonality
	}
	o.personality = name
	o.effective = name.Profile()
	return ok
}

// Personality returns the active preset
func (o *Opponent) Personality() PersonalityName {
	return o.personality
}

// Effective returns the profile used for the latest tick
func (o *Opponent) Effective() Profile {
	return o.effective
}

// State returns the behavior that governed the latest tick
func (o *Opponent) State() State {
	if o.celebrationTicks > 0 {
		return StateCelebrating
	}
	return o.current
}

// Reset clears timers and returns to chasing, preset is kept
func (o *Opponent) Reset() {
	o.tactical = StateChasing
	o.current = StateChasing
	o.stateTimer = 0
	o.delayTicks = 0
	o.mistakeTicks = 0
	o.celebrationTicks = 0
}

// Update evaluates one tick and returns the movement delta for self
func (o *Opponent) Update(ctx TickContext, self *physics.Agent, ball *physics.Ball, player *physics.Agent) vmath.Vec2 {
	o.effective = Effective(o.personality.Profile(), ctx.Difficulty, ctx.Adaptive)

	if o.celebrationTicks > 0 {
		o.celebrationTicks--
		return vmath.Vec2{}
	}

	if o.delayTicks > 0 {
		o.delayTicks--
		o.current = StateReactingDelay
		return vmath.Vec2{}
	}

	if o.mistakeTicks > 0 {
		o.mistakeTicks--
		o.current = StateReactingMistake
		return jitter(ctx.Rand)
	}

	o.evaluate(ctx, self, ball, player)

	var move vmath.Vec2
	if ctx.Rand.Float64() < o.effective.MistakeChance {
		// Episode includes this tick
		o.mistakeTicks = ctx.Rand.Intn(parameter.MistakeMaxTicks)
		o.current = StateReactingMistake
		move = jitter(ctx.Rand)
	} else {
		o.current = o.tactical
		move = o.movement(ctx, self, ball, player)
	}

	if ctx.Rand.Float64() < parameter.ReactionDelayChance {
		o.delayTicks = int(math.Floor(ctx.Rand.Float64()*o.effective.ReactionTicks)) + parameter.ReactionDelayFloor
	}

	return move
}

// evaluate updates the sticky tactical state
func (o *Opponent) evaluate(ctx TickContext, self *physics.Agent, ball *physics.Ball, player *physics.Agent) {
	o.stateTimer++

	ballDist := vmath.V2Dist(self.Pos, ball.Pos)
	playerDist := vmath.V2Dist(self.Pos, player.Pos)

	switch {
	case ballDist < parameter.OpponentAttackRange:
		o.tactical = StateAttacking
	case playerDist < parameter.OpponentMarkRange && ball.Pos.X > self.Pos.X:
		o.tactical = StateDefending
	case o.stateTimer%parameter.RepositionInterval == 0:
		if ctx.Rand.Float64() < parameter.RepositionChance {
			o.tactical = StatePositioning
		} else {
			o.tactical = StateChasing
		}
	}
}

func (o *Opponent) movement(ctx TickContext, self *physics.Agent, ball *physics.Ball, player *physics.Agent) vmath.Vec2 {
	speed := o.effective.Speed * self.SpeedMultiplier()

	switch o.tactical {
	case StateAttacking:
		return vmath.V2Toward(self.Pos, ball.Pos, speed*o.effective.Aggression)

	case StateDefending:
		// Halfway between the player and the defending line, not a full interception
		guard := vmath.V2(
			(player.Pos.X+parameter.OpponentDefendLineX)/2,
			(player.Pos.Y+ctx.Field.Height/2)/2,
		)
		return vmath.V2Toward(self.Pos, guard, speed*parameter.DefendSpeedScale)

	case StatePositioning:
		return vmath.V2Toward(self.Pos, anchor(ctx.Field, ball.Pos), speed*parameter.PositionSpeedScale)

	default:
		if vmath.V2Dist(self.Pos, ball.Pos) > parameter.OpponentChaseHoldRange {
			return vmath.V2Toward(self.Pos, ball.Pos, speed*parameter.ChaseSpeedScale)
		}
		return vmath.Vec2{}
	}
}

// anchor picks the counter-attack point when the ball is in the left half, support point otherwise
func anchor(f physics.Field, ball vmath.Vec2) vmath.Vec2 {
	y := f.Height * parameter.AnchorFracY
	if ball.X < f.Width/2 {
		return vmath.V2(f.Width*parameter.CounterAnchorFracX, y)
	}
	return vmath.V2(f.Width*parameter.SupportAnchorFracX, y)
}

func jitter(r vmath.Rand) vmath.Vec2 {
	return vmath.V2(
		vmath.Centered(r)*2*parameter.MistakeJitter,
		vmath.Centered(r)*2*parameter.MistakeJitter,
	)
}

// KickDirection aims at the left goal mouth center with noise scaled by (1 - accuracy)
func (o *Opponent) KickDirection(ctx TickContext, self *physics.Agent) vmath.Vec2 {
	miss := 1 - o.effective.Accuracy
	target := vmath.V2(
		parameter.KickAimX+vmath.Centered(ctx.Rand)*parameter.KickNoiseX*miss,
		ctx.Field.Height/2+vmath.Centered(ctx.Rand)*parameter.KickNoiseY*miss,
	)
	d := vmath.V2Sub(target, self.Pos)
	if vmath.V2IsZero(d) {
		return vmath.V2(-1, 0)
	}
	return vmath.V2Normalize(d)
}

// StartCelebration begins the fixed-length flourish, only the opponent's own goals trigger it
func (o *Opponent) StartCelebration() {
	o.celebrationTicks = parameter.CelebrationTicks
	o.delayTicks = 0
	o.mistakeTicks = 0
}

// Celebrate advances the flourish outside of play, no-op when not celebrating
func (o *Opponent) Celebrate() {
	if o.celebrationTicks > 0 {
		o.celebrationTicks--
	}
}

// CelebrationRemaining returns ticks left in the flourish
func (o *Opponent) CelebrationRemaining() int {
	return o.celebrationTicks
}

// Flourish returns the decorative circular offset for the current celebration tick
// Gameplay ignores it; renderers may draw it
func (o *Opponent) Flourish() vmath.Vec2 {
	if o.celebrationTicks <= 0 {
		return vmath.Vec2{}
	}
	angle := float64(parameter.CelebrationTicks-o.celebrationTicks) * parameter.CelebrationAngleStep
	return vmath.V2(math.Cos(angle)*parameter.CelebrationRadiusX, math.Sin(angle)*parameter.CelebrationRadiusY)
}
