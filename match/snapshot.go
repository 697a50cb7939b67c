package match

import (
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
	"github.com/lixenwraith/kickoff/vmath"
)

// BodyState is a copied body
type BodyState struct {
	Pos    vmath.Vec2 `json:"pos"`
	Vel    vmath.Vec2 `json:"vel"`
	Radius float64    `json:"radius"`
}

// AgentState is a copied agent with its active effects
type AgentState struct {
	BodyState
	Speed          float64 `json:"speed"`
	SpeedTicks     int     `json:"speed_ticks,omitempty"`
	MagnetStrength float64 `json:"magnet_strength,omitempty"`
	MagnetTicks    int     `json:"magnet_ticks,omitempty"`
}

// OpponentState adds behavior state to the opponent agent
type OpponentState struct {
	AgentState
	Behavior    string     `json:"behavior"`
	Personality string     `json:"personality"`
	Flourish    vmath.Vec2 `json:"flourish"`
}

// Snapshot is a read-only copy of match state for renderers and debug endpoints
// Holds no references into the session
type Snapshot struct {
	SessionID string `json:"session_id"`
	Tick      int64  `json:"tick"`
	Phase     Phase  `json:"phase"`
	// PhaseTicks counts down the countdown and celebrating phases, 0 while playing
	PhaseTicks       int `json:"phase_ticks"`
	CountdownSeconds int `json:"countdown_seconds,omitempty"`

	Field     physics.Field `json:"field"`
	LeftGoal  physics.Rect  `json:"left_goal"`
	RightGoal physics.Rect  `json:"right_goal"`
	GoalScale float64       `json:"goal_scale"`

	Ball     BodyState     `json:"ball"`
	Player   AgentState    `json:"player"`
	Opponent OpponentState `json:"opponent"`

	PlayerScore   int `json:"player_score"`
	OpponentScore int `json:"opponent_score"`

	Difficulty float64 `json:"difficulty"`
	SkillLabel string  `json:"skill_label"`
	Adaptive   bool    `json:"adaptive"`
	// GameTicks and PossessionTicks cover the current analysis window, cleared by restart
	GameTicks       int `json:"game_ticks"`
	PossessionTicks int `json:"possession_ticks"`
}

// PossessionPct returns player possession as a rounded share of game ticks
func (s *Snapshot) PossessionPct() int {
	if s.GameTicks <= 0 {
		return 0
	}
	return (s.PossessionTicks*100 + s.GameTicks/2) / s.GameTicks
}

func bodyState(b *physics.Body) BodyState {
	return BodyState{Pos: b.Pos, Vel: b.Vel, Radius: b.Radius}
}

func agentState(a *physics.Agent) AgentState {
	st := AgentState{
		BodyState:      bodyState(&a.Body),
		Speed:          a.Speed(),
		MagnetStrength: a.MagnetStrength(),
	}
	if e := a.Effects[physics.EffectSpeed]; e.Active() {
		st.SpeedTicks = e.Remaining
	}
	if e := a.Effects[physics.EffectMagnet]; e.Active() {
		st.MagnetTicks = e.Remaining
	}
	return st
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	left, right := goalMouths(s.field, s.goalSize.Factor())
	snap := Snapshot{
		SessionID:  s.id,
		Tick:       s.tick,
		Phase:      s.phase,
		PhaseTicks: s.phaseTicks,

		Field:     s.field,
		LeftGoal:  left,
		RightGoal: right,
		GoalScale: s.goalSize.Factor(),

		Ball:   bodyState(&s.ball.Body),
		Player: agentState(s.player),
		Opponent: OpponentState{
			AgentState:  agentState(s.opponent),
			Behavior:    s.ai.State().String(),
			Personality: s.ai.Personality().String(),
			Flourish:    s.ai.Flourish(),
		},

		PlayerScore:   s.playerScore,
		OpponentScore: s.opponentScore,

		Difficulty: s.difficulty.Level(),
		SkillLabel: s.difficulty.SkillLabel(),
		Adaptive:   s.difficulty.Enabled(),
	}
	stats := s.difficulty.Stats()
	snap.GameTicks = stats.GameTicks
	snap.PossessionTicks = stats.PossessionTicks
	if s.phase == PhaseCountdown {
		snap.CountdownSeconds = countdownSeconds(s.phaseTicks)
	}
	return snap
}

// countdownSeconds rounds remaining ticks up to whole seconds
func countdownSeconds(ticks int) int {
	return (ticks + parameter.TickRate - 1) / parameter.TickRate
}
