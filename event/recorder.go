package event

import (
	"github.com/lixenwraith/kickoff/vmath"
)

// Recorder captures collaborator calls, used by headless runs and tests
type Recorder struct {
	Kicks      []float64
	Goals      int
	Countdown  []int
	GoBeeps    int
	Chimes     []PowerUpKind
	Impacts    []vmath.Vec2
	GoalBursts []vmath.Vec2
	GoalEvents []GoalPayload
	PowerUps   []PowerUpPayload
}

// Audio returns the recorder as an AudioSink
func (r *Recorder) Audio() AudioSink { return recorderAudio{r} }

// Effects returns the recorder as an EffectsSink
func (r *Recorder) Effects() EffectsSink { return recorderEffects{r} }

// OnGoalEvent records a goal fact
func (r *Recorder) OnGoalEvent(p GoalPayload) { r.GoalEvents = append(r.GoalEvents, p) }

// OnPowerUpCollected records a collection fact
func (r *Recorder) OnPowerUpCollected(p PowerUpPayload) { r.PowerUps = append(r.PowerUps, p) }

type recorderAudio struct{ r *Recorder }

func (a recorderAudio) OnKick(pitch float64)     { a.r.Kicks = append(a.r.Kicks, pitch) }
func (a recorderAudio) OnGoal()                  { a.r.Goals++ }
func (a recorderAudio) OnCountdownTick(secs int) { a.r.Countdown = append(a.r.Countdown, secs) }
func (a recorderAudio) OnGoBeep()                { a.r.GoBeeps++ }
func (a recorderAudio) OnPowerUp(k PowerUpKind)  { a.r.Chimes = append(a.r.Chimes, k) }

type recorderEffects struct{ r *Recorder }

func (e recorderEffects) OnKick(at vmath.Vec2, _ float64) { e.r.Impacts = append(e.r.Impacts, at) }
func (e recorderEffects) OnGoal(at vmath.Vec2)            { e.r.GoalBursts = append(e.r.GoalBursts, at) }
