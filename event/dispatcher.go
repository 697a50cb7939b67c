package event

// Dispatcher buffers events emitted during a tick and routes them to collaborators on Flush
// Single-threaded: Emit and Flush run on the tick goroutine
type Dispatcher struct {
	audio        AudioSink
	effects      EffectsSink
	achievements AchievementSink
	listeners    []Listener

	pending []GameEvent

	// OnFault is called when a collaborator panics; delivery continues with the next one
	OnFault func(ev GameEvent, recovered any)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		pending: make([]GameEvent, 0, 8),
	}
}

// SetAudio installs the audio collaborator, nil disables it
func (d *Dispatcher) SetAudio(s AudioSink) { d.audio = s }

// SetEffects installs the effects collaborator, nil disables it
func (d *Dispatcher) SetEffects(s EffectsSink) { d.effects = s }

// SetAchievements installs the achievement collaborator, nil disables it
func (d *Dispatcher) SetAchievements(s AchievementSink) { d.achievements = s }

// Subscribe adds a listener receiving every event
func (d *Dispatcher) Subscribe(l Listener) {
	if l != nil {
		d.listeners = append(d.listeners, l)
	}
}

// Emit queues an event for the end-of-tick flush
func (d *Dispatcher) Emit(ev GameEvent) {
	d.pending = append(d.pending, ev)
}

// Pending returns the number of queued events
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}

// Discard drops queued events without delivery
func (d *Dispatcher) Discard() {
	d.pending = d.pending[:0]
}

// Flush delivers queued events in emission order and returns them
func (d *Dispatcher) Flush() []GameEvent {
	if len(d.pending) == 0 {
		return nil
	}
	out := make([]GameEvent, len(d.pending))
	copy(out, d.pending)
	d.pending = d.pending[:0]

	for _, ev := range out {
		d.deliver(ev)
	}
	return out
}

func (d *Dispatcher) deliver(ev GameEvent) {
	if d.audio != nil {
		d.guard(ev, func() { routeAudio(d.audio, ev) })
	}
	if d.effects != nil {
		d.guard(ev, func() { routeEffects(d.effects, ev) })
	}
	if d.achievements != nil {
		d.guard(ev, func() { routeAchievements(d.achievements, ev) })
	}
	for _, l := range d.listeners {
		d.guard(ev, func() { l.HandleEvent(ev) })
	}
}

// guard isolates collaborator panics from the tick
func (d *Dispatcher) guard(ev GameEvent, fn func()) {
	defer func() {
		if r := recover(); r != nil && d.OnFault != nil {
			d.OnFault(ev, r)
		}
	}()
	fn()
}

func routeAudio(s AudioSink, ev GameEvent) {
	switch ev.Type {
	case EventKick:
		if p, ok := ev.Payload.(*KickPayload); ok {
			s.OnKick(p.Pitch)
		}
	case EventGoal:
		s.OnGoal()
	case EventCountdownTick:
		if p, ok := ev.Payload.(*CountdownPayload); ok {
			s.OnCountdownTick(p.SecondsRemaining)
		}
	case EventGoBeep:
		s.OnGoBeep()
	case EventPowerUpCollected:
		if p, ok := ev.Payload.(*PowerUpPayload); ok {
			s.OnPowerUp(p.Kind)
		}
	}
}

func routeEffects(s EffectsSink, ev GameEvent) {
	switch ev.Type {
	case EventKick:
		if p, ok := ev.Payload.(*KickPayload); ok {
			s.OnKick(p.Position, p.Intensity)
		}
	case EventGoal:
		if p, ok := ev.Payload.(*GoalPayload); ok {
			s.OnGoal(p.Position)
		}
	}
}

func routeAchievements(s AchievementSink, ev GameEvent) {
	switch ev.Type {
	case EventGoal:
		if p, ok := ev.Payload.(*GoalPayload); ok {
			s.OnGoalEvent(*p)
		}
	case EventPowerUpCollected:
		if p, ok := ev.Payload.(*PowerUpPayload); ok {
			s.OnPowerUpCollected(*p)
		}
	}
}
