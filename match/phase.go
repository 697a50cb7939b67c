package match

// Phase drives which parts of the simulation tick
type Phase uint8

const (
	// PhaseCountdown freezes gameplay and emits countdown cues
	PhaseCountdown Phase = iota
	// PhasePlaying steps agents, ball, collisions and goal detection
	PhasePlaying
	// PhaseCelebrating freezes gameplay after a goal
	PhaseCelebrating

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseCountdown:   "countdown",
	PhasePlaying:     "playing",
	PhaseCelebrating: "celebrating",
}

func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// MarshalText renders the phase name in JSON snapshots
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
