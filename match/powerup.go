package match

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
)

// Team and PowerUpKind are shared with event payloads
type (
	Team        = event.Team
	PowerUpKind = event.PowerUpKind
)

const (
	TeamPlayer   = event.TeamPlayer
	TeamOpponent = event.TeamOpponent

	PowerUpSpeed   = event.PowerUpSpeed
	PowerUpBigGoal = event.PowerUpBigGoal
	PowerUpMagnet  = event.PowerUpMagnet
)

// PowerUpGrant is the parameter push a collected power-up translates into
type PowerUpGrant struct {
	Value float64
	Ticks int
}

var powerUps = map[PowerUpKind]PowerUpGrant{
	PowerUpSpeed:   {Value: parameter.SpeedBoostFactor, Ticks: parameter.SpeedBoostTicks},
	PowerUpBigGoal: {Value: parameter.BigGoalFactor, Ticks: parameter.BigGoalTicks},
	PowerUpMagnet:  {Value: parameter.MagnetDefaultStrength, Ticks: parameter.MagnetTicks},
}

// PowerUpFor returns the push for a kind
func PowerUpFor(kind PowerUpKind) (PowerUpGrant, bool) {
	grant, ok := powerUps[kind]
	return grant, ok
}

// clampPush bounds a pushed value and duration, NaN values fall back to neutral
func clampPush(v, lo, hi, neutral float64, ticks int) (float64, int, bool) {
	cv := v
	switch {
	case math.IsNaN(v):
		cv = neutral
	case v < lo:
		cv = lo
	case v > hi:
		cv = hi
	}
	ct := ticks
	if ct < 0 {
		ct = 0
	} else if ct > parameter.EffectMaxTicks {
		ct = parameter.EffectMaxTicks
	}
	return cv, ct, cv != v || ct != ticks
}

func (s *Session) agent(team Team) *physics.Agent {
	if team == TeamOpponent {
		return s.opponent
	}
	return s.player
}

// SetSpeedMultiplier pushes a timed speed factor onto one agent, zero ticks clears it
func (s *Session) SetSpeedMultiplier(team Team, factor float64, ticks int) {
	f, t, clamped := clampPush(factor, parameter.SpeedMultiplierMin, parameter.SpeedMultiplierMax, 1, ticks)
	s.warnClamp(clamped, "speed multiplier", factor, f, ticks, t)
	s.agent(team).Effects.Set(physics.EffectSpeed, f, t)
	s.logger.Debug("speed multiplier set",
		zap.Stringer("team", team), zap.Float64("factor", f), zap.Int("ticks", t))
}

// SetGoalSizeMultiplier pushes a timed height factor onto both goal mouths
func (s *Session) SetGoalSizeMultiplier(factor float64, ticks int) {
	f, t, clamped := clampPush(factor, parameter.GoalMultiplierMin, parameter.GoalMultiplierMax, 1, ticks)
	s.warnClamp(clamped, "goal multiplier", factor, f, ticks, t)
	s.goalSize.Set(f, t)
	s.logger.Debug("goal multiplier set", zap.Float64("factor", f), zap.Int("ticks", t))
}

// SetMagnetism pushes a timed ball pull toward one agent
func (s *Session) SetMagnetism(team Team, strength float64, ticks int) {
	f, t, clamped := clampPush(strength, 0, parameter.MagnetMaxStrength, 0, ticks)
	s.warnClamp(clamped, "magnetism", strength, f, ticks, t)
	s.agent(team).Effects.Set(physics.EffectMagnet, f, t)
	s.logger.Debug("magnetism set",
		zap.Stringer("team", team), zap.Float64("strength", f), zap.Int("ticks", t))
}

// CollectPowerUp applies the table push for kind and emits PowerUpCollected
func (s *Session) CollectPowerUp(team Team, kind PowerUpKind) {
	grant, ok := PowerUpFor(kind)
	if !ok {
		s.logger.Warn("unknown power-up ignored", zap.Uint8("kind", uint8(kind)))
		return
	}

	switch kind {
	case PowerUpSpeed:
		s.SetSpeedMultiplier(team, grant.Value, grant.Ticks)
	case PowerUpBigGoal:
		s.SetGoalSizeMultiplier(grant.Value, grant.Ticks)
	case PowerUpMagnet:
		s.SetMagnetism(team, grant.Value, grant.Ticks)
	}

	s.emit(event.EventPowerUpCollected, &event.PowerUpPayload{
		Team:          team,
		Kind:          kind,
		Value:         grant.Value,
		DurationTicks: grant.Ticks,
	})
}

func (s *Session) warnClamp(clamped bool, what string, in, out float64, inTicks, outTicks int) {
	if !clamped {
		return
	}
	s.logger.Warn("parameter push clamped",
		zap.String("param", what),
		zap.Float64("requested", in),
		zap.Float64("applied", out),
		zap.Int("requested_ticks", inTicks),
		zap.Int("applied_ticks", outTicks),
	)
}
