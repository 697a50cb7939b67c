package match

import (
	"sync/atomic"

	"github.com/lixenwraith/kickoff/status"
)

// Status registry keys published every tick
const (
	KeyTick           = "match.tick"
	KeyScorePlayer    = "match.score.player"
	KeyScoreOpponent  = "match.score.opponent"
	KeyGoals          = "match.goals"
	KeyKicks          = "match.kicks"
	KeyPhase          = "match.phase"
	KeyAIState        = "ai.state"
	KeyAIPersonality  = "ai.personality"
	KeyAIDifficulty   = "ai.difficulty"
	KeyAIAdaptive     = "ai.adaptive"
	KeyBallSpeed      = "ball.speed"
	KeyGoalMultiplier = "effect.goal_multiplier"
)

// telemetry caches registry pointers so the tick path never looks keys up
type telemetry struct {
	tick          *atomic.Int64
	scorePlayer   *atomic.Int64
	scoreOpponent *atomic.Int64
	goals         *atomic.Int64
	kicks         *atomic.Int64
	phase         *status.AtomicString
	aiState       *status.AtomicString
	personality   *status.AtomicString
	difficulty    *status.AtomicFloat
	adaptive      *atomic.Bool
	ballSpeed     *status.AtomicFloat
	goalMult      *status.AtomicFloat
}

func newTelemetry(r *status.Registry) *telemetry {
	return &telemetry{
		tick:          r.Ints.Get(KeyTick),
		scorePlayer:   r.Ints.Get(KeyScorePlayer),
		scoreOpponent: r.Ints.Get(KeyScoreOpponent),
		goals:         r.Ints.Get(KeyGoals),
		kicks:         r.Ints.Get(KeyKicks),
		phase:         r.Strings.Get(KeyPhase),
		aiState:       r.Strings.Get(KeyAIState),
		personality:   r.Strings.Get(KeyAIPersonality),
		difficulty:    r.Floats.Get(KeyAIDifficulty),
		adaptive:      r.Bools.Get(KeyAIAdaptive),
		ballSpeed:     r.Floats.Get(KeyBallSpeed),
		goalMult:      r.Floats.Get(KeyGoalMultiplier),
	}
}

// publish stores the end-of-tick state; goals and kicks are counted where they happen
func (s *Session) publish() {
	t := s.stats
	t.tick.Store(s.tick)
	t.scorePlayer.Store(int64(s.playerScore))
	t.scoreOpponent.Store(int64(s.opponentScore))
	t.phase.Store(s.phase.String())
	t.aiState.Store(s.ai.State().String())
	t.personality.Store(s.ai.Personality().String())
	t.difficulty.Store(s.difficulty.Level())
	t.adaptive.Store(s.difficulty.Enabled())
	t.ballSpeed.Store(s.ball.Speed())
	t.goalMult.Store(s.goalSize.Factor())
}

// Status returns the registry the session publishes into
func (s *Session) Status() *status.Registry {
	return s.registry
}
