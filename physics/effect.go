package physics

// EffectKind enumerates timed modifiers an agent can carry
type EffectKind uint8

const (
	// EffectSpeed multiplies agent movement speed
	EffectSpeed EffectKind = iota
	// EffectMagnet pulls the ball toward the agent with the stored strength
	EffectMagnet

	effectKindCount
)

var effectKindNames = [effectKindCount]string{
	EffectSpeed:  "speed",
	EffectMagnet: "magnet",
}

func (k EffectKind) String() string {
	if k < effectKindCount {
		return effectKindNames[k]
	}
	return "unknown"
}

// Effect is a timed scalar, inactive once Remaining reaches zero
type Effect struct {
	Value     float64
	Remaining int
}

// Active reports whether the effect still has ticks left
func (e Effect) Active() bool {
	return e.Remaining > 0
}

// Effects is a fixed table of timed modifiers indexed by kind
type Effects [effectKindCount]Effect

// Set installs or replaces an effect, non-positive ticks clear it
func (e *Effects) Set(kind EffectKind, value float64, ticks int) {
	if kind >= effectKindCount {
		return
	}
	if ticks <= 0 {
		e[kind] = Effect{}
		return
	}
	e[kind] = Effect{Value: value, Remaining: ticks}
}

// Get returns the effect value and whether it is active
func (e *Effects) Get(kind EffectKind) (float64, bool) {
	if kind >= effectKindCount || !e[kind].Active() {
		return 0, false
	}
	return e[kind].Value, true
}

// Tick decrements all active effects, expired effects are cleared
func (e *Effects) Tick() {
	for i := range e {
		if e[i].Remaining > 0 {
			e[i].Remaining--
			if e[i].Remaining == 0 {
				e[i] = Effect{}
			}
		}
	}
}

// Clear removes every effect
func (e *Effects) Clear() {
	*e = Effects{}
}

// ScalarEffect is a single timed multiplier not bound to an agent
type ScalarEffect struct {
	Effect
}

// Factor returns the multiplier, 1 when inactive
func (s *ScalarEffect) Factor() float64 {
	if s.Active() {
		return s.Value
	}
	return 1
}

// Set installs the multiplier, non-positive ticks clear it
func (s *ScalarEffect) Set(factor float64, ticks int) {
	if ticks <= 0 {
		s.Effect = Effect{}
		return
	}
	s.Effect = Effect{Value: factor, Remaining: ticks}
}

// Tick decrements the timer
func (s *ScalarEffect) Tick() {
	if s.Remaining > 0 {
		s.Remaining--
		if s.Remaining == 0 {
			s.Effect = Effect{}
		}
	}
}
