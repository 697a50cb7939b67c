package behavior

// State is the opponent behavior reported for a tick, exactly one per tick
type State uint8

const (
	StateChasing State = iota
	StatePositioning
	StateDefending
	StateAttacking
	StateCelebrating
	StateReactingDelay
	StateReactingMistake

	stateCount
)

var stateNames = [stateCount]string{
	StateChasing:         "chasing",
	StatePositioning:     "positioning",
	StateDefending:       "defending",
	StateAttacking:       "attacking",
	StateCelebrating:     "celebrating",
	StateReactingDelay:   "reactingDelay",
	StateReactingMistake: "reactingMistake",
}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return "unknown"
}

// Tactical reports whether s is one of the four evaluated states
func (s State) Tactical() bool {
	return s <= StateAttacking
}
