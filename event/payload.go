package event

import (
	"github.com/lixenwraith/kickoff/vmath"
)

// Team identifies an agent
type Team uint8

const (
	TeamPlayer Team = iota
	TeamOpponent
)

func (t Team) String() string {
	if t == TeamOpponent {
		return "opponent"
	}
	return "player"
}

// Side identifies a goal mouth
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// PowerUpKind is the closed set of collectible kinds
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpBigGoal
	PowerUpMagnet

	powerUpKindCount
)

var powerUpKindNames = [powerUpKindCount]string{
	PowerUpSpeed:   "speed",
	PowerUpBigGoal: "biggoal",
	PowerUpMagnet:  "magnet",
}

func (k PowerUpKind) String() string {
	if k < powerUpKindCount {
		return powerUpKindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a defined kind
func (k PowerUpKind) Valid() bool {
	return k < powerUpKindCount
}

// PowerUpKinds lists every kind
func PowerUpKinds() []PowerUpKind {
	return []PowerUpKind{PowerUpSpeed, PowerUpBigGoal, PowerUpMagnet}
}

// KickPayload describes a kick after it replaced ball velocity
type KickPayload struct {
	By        Team       `json:"by"`
	Position  vmath.Vec2 `json:"position"`
	Velocity  vmath.Vec2 `json:"velocity"`
	Pitch     float64    `json:"pitch"`
	Intensity float64    `json:"intensity"`
}

// GoalPayload describes a scored goal
// Side is the mouth the ball entered, Scorer is the opposite team
type GoalPayload struct {
	Side          Side       `json:"side"`
	Scorer        Team       `json:"scorer"`
	PlayerGoals   int        `json:"player_goals"`
	OpponentGoals int        `json:"opponent_goals"`
	Position      vmath.Vec2 `json:"position"`
}

// CountdownPayload carries whole seconds left before play
type CountdownPayload struct {
	SecondsRemaining int `json:"seconds_remaining"`
}

// PowerUpPayload describes a collected power-up after clamping
type PowerUpPayload struct {
	Team          Team        `json:"team"`
	Kind          PowerUpKind `json:"kind"`
	Value         float64     `json:"value"`
	DurationTicks int         `json:"duration_ticks"`
}

// PhasePayload describes a phase transition by name
type PhasePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PersonalityPayload describes the opponent configuration after a change
type PersonalityPayload struct {
	Name     string `json:"name"`
	Adaptive bool   `json:"adaptive"`
	Fallback bool   `json:"fallback"`
}
