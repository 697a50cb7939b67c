package event

// EventType represents the type of match event
type EventType int

const (
	// EventKick signals agent-ball contact that replaced the ball velocity
	// Trigger: MatchLoop collision resolution
	// Consumer: audio, effects | Payload: *KickPayload
	EventKick EventType = iota

	// EventGoal signals the ball entered a goal mouth, emitted once per entry
	// Trigger: MatchLoop goal detection
	// Consumer: audio, effects, achievements | Payload: *GoalPayload
	EventGoal

	// EventCountdownTick marks a whole second remaining before play resumes
	// Trigger: countdown phase at fixed marks
	// Consumer: audio | Payload: *CountdownPayload
	EventCountdownTick

	// EventGoBeep marks the countdown reaching zero
	// Trigger: countdown -> playing transition
	// Consumer: audio | Payload: nil
	EventGoBeep

	// EventPowerUpCollected signals a power-up kind was applied to the match
	// Trigger: Session.CollectPowerUp
	// Consumer: audio, achievements | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPhaseChange signals a match phase transition
	// Trigger: MatchLoop phase machine
	// Consumer: telemetry, render | Payload: *PhasePayload
	EventPhaseChange

	// EventRestart signals all match state was reset
	// Trigger: Session.Restart
	// Consumer: achievements, render | Payload: nil
	EventRestart

	// EventPersonalityChange signals the opponent preset or adaptive mode changed
	// Trigger: Session.SetPersonality, Session.SetAdaptiveDifficulty
	// Consumer: render | Payload: *PersonalityPayload
	EventPersonalityChange

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventKick:              "Kick",
	EventGoal:              "Goal",
	EventCountdownTick:     "CountdownTick",
	EventGoBeep:            "GoBeep",
	EventPowerUpCollected:  "PowerUpCollected",
	EventPhaseChange:       "PhaseChange",
	EventRestart:           "Restart",
	EventPersonalityChange: "PersonalityChange",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// MarshalText encodes the type by name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// GameEvent is one notification produced during a tick
type GameEvent struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
	Tick    int64     `json:"tick"`
}
