package match

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/adaptation"
	"github.com/lixenwraith/kickoff/behavior"
	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
	"github.com/lixenwraith/kickoff/status"
	"github.com/lixenwraith/kickoff/vmath"
)

// Session owns one match and advances it one fixed step per Tick
// Not safe for concurrent use; the caller's loop owns it and shares Snapshot copies
type Session struct {
	id     string
	cfg    Config
	field  physics.Field
	bounds physics.Rect

	ball     *physics.Ball
	player   *physics.Agent
	opponent *physics.Agent
	goalSize physics.ScalarEffect

	ai         *behavior.Opponent
	difficulty *adaptation.Controller

	phase      Phase
	phaseTicks int
	tick       int64

	playerScore   int
	opponentScore int

	rng      *vmath.FastRand
	events   *event.Dispatcher
	registry *status.Registry
	stats    *telemetry
	logger   *zap.Logger
	debug    bool
}

// New creates a session in countdown with agents and ball at kickoff
func New(cfg Config, opts ...Option) *Session {
	adjusted := cfg.Normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	field := physics.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	name, _ := behavior.ParsePersonality(cfg.Personality)

	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		field:  field,
		bounds: field.AgentBounds(),

		ball:     physics.NewBall(field.Center()),
		player:   physics.NewAgent(field.Center(), parameter.PlayerSpeed),
		opponent: physics.NewAgent(field.Center(), parameter.OpponentBaseSpeed),

		ai:         behavior.NewOpponent(name),
		difficulty: adaptation.NewControllerWith(cfg.InitialDifficulty, cfg.TargetWinRate, cfg.Gain),

		rng:      vmath.NewFastRand(seed),
		events:   event.NewDispatcher(),
		registry: status.NewRegistry(),
		logger:   zap.NewNop(),
		debug:    cfg.Debug,
	}
	s.difficulty.SetEnabled(cfg.Adaptive)

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(zap.String("session", s.id))
	s.events.OnFault = func(ev event.GameEvent, recovered any) {
		s.logger.Error("event collaborator panicked",
			zap.Stringer("event", ev.Type), zap.Any("recovered", recovered))
	}
	s.stats = newTelemetry(s.registry)

	for _, a := range adjusted {
		s.logger.Warn("config adjusted", zap.String("change", a))
	}

	s.placeKickoff()
	s.phase = PhaseCountdown
	s.phaseTicks = parameter.CountdownTicks
	s.publish()

	s.logger.Info("session created",
		zap.Stringer("personality", name),
		zap.Bool("adaptive", cfg.Adaptive),
		zap.Float64("field_width", field.Width),
		zap.Float64("field_height", field.Height),
	)
	return s
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Score returns goals for the current match
func (s *Session) Score() (player, opponent int) { return s.playerScore, s.opponentScore }

// Difficulty exposes the controller for read-only use
func (s *Session) Difficulty() *adaptation.Controller { return s.difficulty }

// Field returns the pitch geometry
func (s *Session) Field() physics.Field { return s.field }

// Subscribe adds a listener after construction
func (s *Session) Subscribe(l event.Listener) { s.events.Subscribe(l) }

// Tick advances the match one fixed step and returns the events it produced
// Events queued between ticks by setters are delivered with this tick
func (s *Session) Tick(in Input) []event.GameEvent {
	s.tick++
	s.difficulty.Tick()

	switch s.phase {
	case PhaseCountdown:
		s.stepCountdown()
	case PhaseCelebrating:
		s.stepCelebration()
	case PhasePlaying:
		s.stepPlay(in)
	}

	s.publish()
	return s.events.Flush()
}

func (s *Session) stepCountdown() {
	s.phaseTicks--
	for _, mark := range parameter.CountdownCueTicks {
		if s.phaseTicks == mark {
			s.emit(event.EventCountdownTick, &event.CountdownPayload{SecondsRemaining: mark / parameter.TickRate})
		}
	}
	if s.phaseTicks <= 0 {
		s.emit(event.EventGoBeep, nil)
		s.setPhase(PhasePlaying, 0)
	}
}

func (s *Session) stepCelebration() {
	s.phaseTicks--
	s.ai.Celebrate()
	if s.phaseTicks <= 0 {
		s.setPhase(PhaseCountdown, parameter.CountdownTicks)
	}
}

func (s *Session) stepPlay(in Input) {
	ctx := behavior.TickContext{
		Field:      s.field,
		Difficulty: s.difficulty.Level(),
		Adaptive:   s.difficulty.Enabled(),
		Rand:       s.rng,
	}

	s.player.Move(vmath.V2Scale(in.Direction(), s.player.Speed()), s.bounds)
	s.opponent.Move(s.ai.Update(ctx, s.opponent, s.ball, s.player), s.bounds)

	s.ball.Step(s.field)
	s.attract(s.player)
	s.attract(s.opponent)

	// Both kicks may land on one tick; the opponent's is resolved last and wins
	s.resolveKick(TeamPlayer, s.player, s.player.KickDirection)
	s.resolveKick(TeamOpponent, s.opponent, func() vmath.Vec2 { return s.ai.KickDirection(ctx, s.opponent) })

	s.settle(&s.ball.Body, "ball")
	s.settle(&s.player.Body, "player")
	s.settle(&s.opponent.Body, "opponent")

	if side, ok := detectGoal(s.ball, s.field, s.goalSize.Factor()); ok {
		s.scoreGoal(side)
	}

	// Pushes count down after use so an N-tick push applies on N play ticks
	s.player.Effects.Tick()
	s.opponent.Effects.Tick()
	s.goalSize.Tick()
}

func (s *Session) attract(a *physics.Agent) {
	if strength := a.MagnetStrength(); strength > 0 {
		s.ball.Attract(a.Pos, strength)
	}
}

// resolveKick overrides ball velocity on strict overlap; aim is only drawn on contact
func (s *Session) resolveKick(team Team, a *physics.Agent, aim func() vmath.Vec2) {
	if !a.CollidesWith(&s.ball.Body) {
		return
	}
	vel := s.ball.Kick(aim())

	pitch, intensity := parameter.PlayerKickPitchBase+s.rng.Float64()*parameter.PlayerKickPitchSpread, parameter.PlayerKickIntensity
	by := adaptation.TeamPlayer
	if team == TeamOpponent {
		pitch, intensity = parameter.OpponentKickPitchBase+s.rng.Float64()*parameter.OpponentKickPitchSpread, parameter.OpponentKickIntensity
		by = adaptation.TeamOpponent
	}
	s.difficulty.RecordPossession(by)
	s.stats.kicks.Add(1)

	s.emit(event.EventKick, &event.KickPayload{
		By:        team,
		Position:  s.ball.Pos,
		Velocity:  vel,
		Pitch:     pitch,
		Intensity: intensity,
	})
}

// settle enforces body invariants: debug sessions panic, others snap back and warn
func (s *Session) settle(b *physics.Body, name string) {
	err := b.Settle()
	if err == nil {
		return
	}
	if s.debug {
		panic(err)
	}
	s.logger.Warn("body restored to last valid state",
		zap.String("body", name), zap.Int64("tick", s.tick), zap.Error(err))
}

func (s *Session) scoreGoal(side event.Side) {
	scorer := scorerFor(side)
	at := s.ball.Pos

	if scorer == TeamOpponent {
		s.opponentScore++
		s.difficulty.RecordGoal(adaptation.TeamOpponent)
		s.ai.StartCelebration()
	} else {
		s.playerScore++
		s.difficulty.RecordGoal(adaptation.TeamPlayer)
	}
	s.stats.goals.Add(1)

	s.emit(event.EventGoal, &event.GoalPayload{
		Side:          side,
		Scorer:        scorer,
		PlayerGoals:   s.playerScore,
		OpponentGoals: s.opponentScore,
		Position:      at,
	})
	s.logger.Info("goal",
		zap.Stringer("scorer", scorer),
		zap.Stringer("side", side),
		zap.Int("player", s.playerScore),
		zap.Int("opponent", s.opponentScore),
		zap.Float64("difficulty", s.difficulty.Level()),
	)

	s.placeKickoff()
	s.setPhase(PhaseCelebrating, parameter.CelebrationPhaseTicks)
}

// placeKickoff resets ball and agents to their start positions at rest
// Offsets are clamped so small pitches still start every body inside its bounds
func (s *Session) placeKickoff() {
	c := s.field.Center()
	s.ball.Place(s.field.BallBounds(s.ball.Radius).Clamp(vmath.V2(c.X, c.Y+parameter.BallKickoffOffsetY)))
	s.player.Reset(s.bounds.Clamp(c))
	s.opponent.Reset(s.bounds.Clamp(vmath.V2(c.X, c.Y+parameter.OpponentKickoffOffsetY)))
}

func (s *Session) setPhase(to Phase, ticks int) {
	from := s.phase
	s.phase = to
	s.phaseTicks = ticks
	if from == to {
		return
	}
	s.emit(event.EventPhaseChange, &event.PhasePayload{From: from.String(), To: to.String()})
	s.logger.Debug("phase change", zap.Stringer("from", from), zap.Stringer("to", to), zap.Int64("tick", s.tick))
}

// Restart resets scores, positions, effects and phase; the learned difficulty is kept
// Calling it twice in a row leaves the same state as calling it once
func (s *Session) Restart() {
	s.tick = 0
	s.playerScore = 0
	s.opponentScore = 0

	s.player.Effects.Clear()
	s.opponent.Effects.Clear()
	s.goalSize.Set(1, 0)

	s.difficulty.Reset()
	s.ai.Reset()
	s.placeKickoff()

	s.phase = PhaseCountdown
	s.phaseTicks = parameter.CountdownTicks

	s.events.Discard()
	s.emit(event.EventRestart, nil)
	s.publish()

	s.logger.Info("match restarted", zap.Float64("difficulty", s.difficulty.Level()))
}

// SetPersonality switches the opponent preset by name, unknown names select the default
func (s *Session) SetPersonality(name string) {
	n, ok := behavior.ParsePersonality(name)
	if !ok {
		s.logger.Warn("unknown personality, using default", zap.String("requested", name), zap.Stringer("applied", n))
	}
	s.ai.SetPersonality(n)
	s.emit(event.EventPersonalityChange, &event.PersonalityPayload{
		Name:     n.String(),
		Adaptive: s.difficulty.Enabled(),
		Fallback: !ok,
	})
	s.logger.Debug("personality set", zap.Stringer("personality", n))
}

// SetAdaptiveDifficulty toggles the difficulty blend; the controller keeps counting goals either way
func (s *Session) SetAdaptiveDifficulty(enabled bool) {
	s.difficulty.SetEnabled(enabled)
	s.emit(event.EventPersonalityChange, &event.PersonalityPayload{
		Name:     s.ai.Personality().String(),
		Adaptive: enabled,
	})
	s.logger.Debug("adaptive difficulty set", zap.Bool("enabled", enabled))
}

func (s *Session) emit(t event.EventType, payload any) {
	s.events.Emit(event.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}
