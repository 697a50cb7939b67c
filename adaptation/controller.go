package adaptation

import (
	"math"

	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// Team identifies who a goal or possession belongs to
type Team uint8

const (
	TeamPlayer Team = iota
	TeamOpponent
)

// Sample is one controller update kept in the rolling history
type Sample struct {
	Difficulty      float64
	OpponentWinRate float64
	Tick            int
}

// Stats is a read-only summary for overlays and telemetry
type Stats struct {
	PlayerGoals     int
	OpponentGoals   int
	GameTicks       int
	PossessionTicks int
	SkillLabel      string
	DifficultyPct   int
}

// Controller steers opponent difficulty toward a target opponent win-rate using goals as the only signal
// Mutated by the match loop on goals, read by opponent behavior every tick
type Controller struct {
	playerGoals   int
	opponentGoals int

	current float64
	target  float64
	gain    float64

	history []Sample
	enabled bool

	gameTicks       int
	possessionTicks int
}

// NewController creates a controller with design target and gain
func NewController() *Controller {
	return NewControllerWith(parameter.DifficultyInitial, parameter.DifficultyTargetWinRate, parameter.DifficultyGain)
}

// NewControllerWith creates a controller with explicit tuning, values are clamped to valid ranges
func NewControllerWith(initial, targetWinRate, gain float64) *Controller {
	if math.IsNaN(initial) {
		initial = parameter.DifficultyInitial
	}
	if math.IsNaN(targetWinRate) || targetWinRate <= 0 || targetWinRate >= 1 {
		targetWinRate = parameter.DifficultyTargetWinRate
	}
	if math.IsNaN(gain) || gain <= 0 {
		gain = parameter.DifficultyGain
	}
	return &Controller{
		current: vmath.Clamp(initial, parameter.DifficultyMin, parameter.DifficultyMax),
		target:  targetWinRate,
		gain:    gain,
		history: make([]Sample, 0, parameter.DifficultyHistorySize),
		enabled: true,
	}
}

// RecordGoal counts a goal and runs one controller update
// Counters advance even when adaptation is disabled
func (c *Controller) RecordGoal(scorer Team) {
	if scorer == TeamPlayer {
		c.playerGoals++
	} else {
		c.opponentGoals++
	}
	c.update()
}

func (c *Controller) update() {
	if !c.enabled {
		return
	}
	total := c.playerGoals + c.opponentGoals
	if total == 0 {
		return
	}

	winRate := float64(c.opponentGoals) / float64(total)
	c.current = vmath.Clamp(c.current+(c.target-winRate)*c.gain, parameter.DifficultyMin, parameter.DifficultyMax)

	if len(c.history) == parameter.DifficultyHistorySize {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, Sample{Difficulty: c.current, OpponentWinRate: winRate, Tick: c.gameTicks})
}

// Tick advances game time, called once per simulation tick
func (c *Controller) Tick() {
	c.gameTicks++
}

// RecordPossession counts a kick toward possession time, only player touches accumulate
func (c *Controller) RecordPossession(by Team) {
	if by == TeamPlayer {
		c.possessionTicks++
	}
}

// Level returns current difficulty in [0.1, 0.9]
func (c *Controller) Level() float64 {
	return c.current
}

// SkillLabel maps the current level to a display tier
func (c *Controller) SkillLabel() string {
	return SkillLabel(c.current)
}

// SkillLabel maps a difficulty to its tier
func SkillLabel(d float64) string {
	switch {
	case d < parameter.SkillBeginnerBelow:
		return "Beginner"
	case d < parameter.SkillIntermediateBelow:
		return "Intermediate"
	case d < parameter.SkillAdvancedBelow:
		return "Advanced"
	default:
		return "Expert"
	}
}

// SetEnabled toggles adaptation; when off, behavior uses raw personality values
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether adaptation is active
func (c *Controller) Enabled() bool {
	return c.enabled
}

// Target returns the opponent win-rate setpoint
func (c *Controller) Target() float64 {
	return c.target
}

// Goals returns player and opponent goal counters for the current window
func (c *Controller) Goals() (player, opponent int) {
	return c.playerGoals, c.opponentGoals
}

// History returns a copy of the rolling sample window, oldest first
func (c *Controller) History() []Sample {
	out := make([]Sample, len(c.history))
	copy(out, c.history)
	return out
}

// Reset clears counters and history; the learned level is kept across restarts
func (c *Controller) Reset() {
	c.playerGoals = 0
	c.opponentGoals = 0
	c.gameTicks = 0
	c.possessionTicks = 0
	c.history = c.history[:0]
}

// Stats returns a summary of the current window
func (c *Controller) Stats() Stats {
	return Stats{
		PlayerGoals:     c.playerGoals,
		OpponentGoals:   c.opponentGoals,
		GameTicks:       c.gameTicks,
		PossessionTicks: c.possessionTicks,
		SkillLabel:      c.SkillLabel(),
		DifficultyPct:   int(math.Round(c.current * 100)),
	}
}
