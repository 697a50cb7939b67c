package parameter

import "time"

// Match cadence
const (
	// TickRate is the design simulation frequency
	TickRate = 60
	// TickInterval is the wall-clock period between ticks
	TickInterval = time.Second / TickRate
)

// Phase durations, ticks
const (
	CountdownTicks        = 180
	CelebrationPhaseTicks = 120
)

// Countdown cue marks, ticks remaining
var CountdownCueTicks = [...]int{120, 60}

// Goal mouth geometry
const (
	// GoalDepth is the mouth width along x, measured from the wall
	GoalDepth = 30.0
	// GoalHeight is the nominal mouth height before multipliers
	GoalHeight = 150.0
)
