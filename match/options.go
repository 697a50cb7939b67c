package match

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/status"
	"github.com/lixenwraith/kickoff/vmath"
)

// Option configures a Session at construction
type Option func(*Session)

// WithLogger sets the session logger, nil keeps the no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAudio installs the audio collaborator
func WithAudio(a event.AudioSink) Option {
	return func(s *Session) { s.events.SetAudio(a) }
}

// WithEffects installs the visual effects collaborator
func WithEffects(e event.EffectsSink) Option {
	return func(s *Session) { s.events.SetEffects(e) }
}

// WithAchievements installs the achievement collaborator
func WithAchievements(a event.AchievementSink) Option {
	return func(s *Session) { s.events.SetAchievements(a) }
}

// WithListener subscribes a listener to every event
func WithListener(l event.Listener) Option {
	return func(s *Session) { s.events.Subscribe(l) }
}

// WithStatus publishes telemetry into a shared registry
func WithStatus(r *status.Registry) Option {
	return func(s *Session) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithRand replaces the seeded source, overriding Config.Seed
func WithRand(r *vmath.FastRand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithDebug panics on invariant violations instead of restoring the last valid state
func WithDebug(debug bool) Option {
	return func(s *Session) { s.debug = debug }
}
