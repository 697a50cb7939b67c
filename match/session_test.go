package match

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/kickoff/behavior"
	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
	"github.com/lixenwraith/kickoff/status"
	"github.com/lixenwraith/kickoff/vmath"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1
	return New(cfg, opts...)
}

// toPlay runs the countdown out
func toPlay(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < parameter.CountdownTicks+1 && s.Phase() != PhasePlaying; i++ {
		s.Tick(Input{})
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("Expected playing after countdown, got %s", s.Phase())
	}
}

func countType(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// TestCountdownCues verifies second marks, GO beep and the switch to playing
func TestCountdownCues(t *testing.T) {
	rec := &event.Recorder{}
	s := newTestSession(t, WithAudio(rec.Audio()))

	cueTicks := map[int64]int{}
	for i := 0; i < parameter.CountdownTicks; i++ {
		if s.Phase() != PhaseCountdown {
			t.Fatalf("Tick %d: expected countdown, got %s", i, s.Phase())
		}
		for _, ev := range s.Tick(Input{Right: true}) {
			if ev.Type == event.EventCountdownTick {
				cueTicks[ev.Tick] = ev.Payload.(*event.CountdownPayload).SecondsRemaining
			}
		}
	}

	if cueTicks[60] != 2 || cueTicks[120] != 1 || len(cueTicks) != 2 {
		t.Errorf("Expected cues {60:2, 120:1}, got %v", cueTicks)
	}
	if rec.GoBeeps != 1 {
		t.Errorf("Expected 1 GO beep, got %d", rec.GoBeeps)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Expected playing after 180 ticks, got %s", s.Phase())
	}
	// Input during countdown is ignored
	if s.player.Pos != s.field.Center() {
		t.Errorf("Expected player frozen during countdown, got %+v", s.player.Pos)
	}
}

// TestLeftGoalScoresForOpponent verifies a single goal event, reset and celebration timing
func TestLeftGoalScoresForOpponent(t *testing.T) {
	rec := &event.Recorder{}
	s := newTestSession(t, WithAudio(rec.Audio()), WithEffects(rec.Effects()), WithAchievements(rec))
	toPlay(t, s)

	s.ball.Place(vmath.V2(40, 300))
	events := s.Tick(Input{})

	if n := countType(events, event.EventGoal); n != 1 {
		t.Fatalf("Expected exactly 1 goal event, got %d", n)
	}
	if len(rec.GoalEvents) != 1 || rec.Goals != 1 || len(rec.GoalBursts) != 1 {
		t.Fatalf("Expected goal routed once to each collaborator, got %+v", rec)
	}
	g := rec.GoalEvents[0]
	if g.Side != event.SideLeft || g.Scorer != event.TeamOpponent || g.OpponentGoals != 1 || g.PlayerGoals != 0 {
		t.Errorf("Expected opponent goal in left mouth, got %+v", g)
	}

	if p, o := s.Score(); p != 0 || o != 1 {
		t.Errorf("Expected score 0-1, got %d-%d", p, o)
	}
	c := s.field.Center()
	if s.ball.Pos != vmath.V2(c.X, c.Y+parameter.BallKickoffOffsetY) || !vmath.V2IsZero(s.ball.Vel) {
		t.Errorf("Expected ball at kickoff and at rest, got %+v %+v", s.ball.Pos, s.ball.Vel)
	}
	if s.player.Pos != c || s.opponent.Pos != vmath.V2(c.X, c.Y+parameter.OpponentKickoffOffsetY) {
		t.Errorf("Expected agents at kickoff, got %+v %+v", s.player.Pos, s.opponent.Pos)
	}
	if s.Phase() != PhaseCelebrating {
		t.Fatalf("Expected celebrating, got %s", s.Phase())
	}

	for i := 0; i < parameter.CelebrationPhaseTicks; i++ {
		if st := s.ai.State(); st != behavior.StateCelebrating {
			t.Fatalf("Celebration tick %d: expected opponent celebrating, got %s", i, st)
		}
		if evs := s.Tick(Input{Left: true}); countType(evs, event.EventGoal) != 0 {
			t.Fatalf("Celebration tick %d: unexpected goal", i)
		}
	}
	if s.Phase() != PhaseCountdown {
		t.Errorf("Expected countdown after celebration, got %s", s.Phase())
	}
	if s.ai.State() == behavior.StateCelebrating {
		t.Error("Expected celebration to end with the phase")
	}
}

// TestRightGoalScoresForPlayer verifies scorer mapping and the difficulty update
func TestRightGoalScoresForPlayer(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)

	s.ball.Place(vmath.V2(s.field.Width-40, s.field.Height/2))
	events := s.Tick(Input{})

	if countType(events, event.EventGoal) != 1 {
		t.Fatal("Expected a goal in the right mouth")
	}
	if p, o := s.Score(); p != 1 || o != 0 {
		t.Errorf("Expected score 1-0, got %d-%d", p, o)
	}
	if got := s.Difficulty().Level(); math.Abs(got-0.54) > 1e-9 {
		t.Errorf("Expected difficulty 0.54, got %f", got)
	}
	if s.ai.State() == behavior.StateCelebrating {
		t.Error("Expected no celebration on a player goal")
	}
}

// TestGoalMultiplierWidensMouth verifies a near miss becomes a goal with a bigger mouth
func TestGoalMultiplierWidensMouth(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)

	s.ball.Place(vmath.V2(40, 390))
	if evs := s.Tick(Input{}); countType(evs, event.EventGoal) != 0 {
		t.Fatal("Expected miss above the nominal mouth")
	}

	s.SetGoalSizeMultiplier(parameter.BigGoalFactor, parameter.BigGoalTicks)
	snap := s.Snapshot()
	if h := snap.LeftGoal.MaxY - snap.LeftGoal.MinY; math.Abs(h-225) > 1e-9 {
		t.Errorf("Expected mouth height 225, got %f", h)
	}

	s.ball.Place(vmath.V2(40, 390))
	if evs := s.Tick(Input{}); countType(evs, event.EventGoal) != 1 {
		t.Error("Expected goal with the enlarged mouth")
	}
}

// TestSimultaneousKicksOpponentWins verifies resolution order when both agents overlap the ball
func TestSimultaneousKicksOpponentWins(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)

	s.ball.Place(vmath.V2(400, 300))
	s.player.Place(vmath.V2(390, 300))
	s.opponent.Place(vmath.V2(410, 300))

	events := s.Tick(Input{})

	var kicks []*event.KickPayload
	for _, ev := range events {
		if ev.Type == event.EventKick {
			kicks = append(kicks, ev.Payload.(*event.KickPayload))
		}
	}
	if len(kicks) != 2 {
		t.Fatalf("Expected 2 kick events, got %d", len(kicks))
	}
	if kicks[0].By != event.TeamPlayer || kicks[1].By != event.TeamOpponent {
		t.Errorf("Expected player then opponent, got %s then %s", kicks[0].By, kicks[1].By)
	}
	if s.ball.Vel != kicks[1].Velocity {
		t.Errorf("Expected opponent velocity %+v to stand, got %+v", kicks[1].Velocity, s.ball.Vel)
	}
	if s.ball.Vel.X >= 0 {
		t.Errorf("Expected ball sent toward the left goal, got %+v", s.ball.Vel)
	}
	if math.Abs(vmath.V2Mag(s.ball.Vel)-parameter.KickPower) > 1e-9 {
		t.Errorf("Expected kick speed %f, got %f", parameter.KickPower, vmath.V2Mag(s.ball.Vel))
	}
	if st := s.Difficulty().Stats(); st.PossessionTicks != 1 {
		t.Errorf("Expected 1 player possession tick, got %d", st.PossessionTicks)
	}
}

// TestPlayerKickHints verifies pitch and intensity ranges for player kicks
func TestPlayerKickHints(t *testing.T) {
	rec := &event.Recorder{}
	s := newTestSession(t, WithAudio(rec.Audio()), WithEffects(rec.Effects()))
	toPlay(t, s)

	s.ball.Place(vmath.V2(410, 300))
	events := s.Tick(Input{Right: true})

	if countType(events, event.EventKick) != 1 {
		t.Fatalf("Expected 1 kick, got %d", countType(events, event.EventKick))
	}
	if len(rec.Kicks) != 1 || rec.Kicks[0] < 0.9 || rec.Kicks[0] >= 1.1 {
		t.Errorf("Expected player pitch in [0.9, 1.1), got %v", rec.Kicks)
	}
	if s.ball.Vel != vmath.V2(parameter.KickPower, 0) {
		t.Errorf("Expected ball velocity (8, 0), got %+v", s.ball.Vel)
	}
	if len(rec.Impacts) != 1 {
		t.Errorf("Expected 1 impact effect, got %d", len(rec.Impacts))
	}
}

// TestRestartIdempotent verifies two restarts leave the same state as one
func TestRestartIdempotent(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)
	for i := 0; i < 50; i++ {
		s.Tick(Input{Up: true, Left: true})
	}
	s.SetSpeedMultiplier(TeamPlayer, 2, 100)
	s.ball.Place(vmath.V2(40, 300))
	s.Tick(Input{})

	s.Restart()
	first := s.Snapshot()
	s.Restart()
	second := s.Snapshot()

	if first != second {
		t.Fatalf("Expected identical snapshots\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Phase != PhaseCountdown || first.PlayerScore != 0 || first.OpponentScore != 0 || first.Tick != 0 {
		t.Errorf("Expected fresh countdown at 0-0, got %+v", first)
	}
	if first.Player.Speed != parameter.PlayerSpeed {
		t.Errorf("Expected effects cleared, got speed %f", first.Player.Speed)
	}
	if first.Opponent.Behavior == behavior.StateCelebrating.String() {
		t.Error("Expected celebration cleared by restart")
	}

	events := s.Tick(Input{})
	if n := countType(events, event.EventRestart); n != 1 {
		t.Errorf("Expected one restart event after two restarts, got %d", n)
	}
}

// TestBoundsHoldOverLongRun verifies ball and agents stay inside their regions with random play
func TestBoundsHoldOverLongRun(t *testing.T) {
	s := newTestSession(t, WithRand(vmath.NewFastRand(2024)))
	s.SetPersonality("hard")
	input := vmath.NewFastRand(77)

	ballBounds := s.field.BallBounds(s.ball.Radius)
	agentBounds := s.field.AgentBounds()
	kinds := event.PowerUpKinds()

	var hold Input
	for i := 0; i < 20000; i++ {
		if i%15 == 0 {
			hold = Input{
				Left:  input.Float64() < 0.4,
				Right: input.Float64() < 0.4,
				Up:    input.Float64() < 0.4,
				Down:  input.Float64() < 0.4,
			}
		}
		if i%900 == 0 {
			s.CollectPowerUp(Team(input.Intn(2)), kinds[input.Intn(len(kinds))])
		}

		events := s.Tick(hold)

		if countType(events, event.EventGoal) > 1 {
			t.Fatalf("Tick %d: more than one goal", i)
		}
		if !ballBounds.Contains(s.ball.Pos) {
			t.Fatalf("Tick %d: ball %+v outside %+v", i, s.ball.Pos, ballBounds)
		}
		if !agentBounds.Contains(s.player.Pos) || !agentBounds.Contains(s.opponent.Pos) {
			t.Fatalf("Tick %d: agent outside bounds, player %+v opponent %+v", i, s.player.Pos, s.opponent.Pos)
		}
		if d := s.Difficulty().Level(); d < parameter.DifficultyMin || d > parameter.DifficultyMax {
			t.Fatalf("Tick %d: difficulty %f out of range", i, d)
		}
	}
}

// TestSeededRunsReplay verifies identical seeds and inputs produce identical matches
func TestSeededRunsReplay(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, WithRand(vmath.NewFastRand(5)))
		for i := 0; i < 3000; i++ {
			s.Tick(Input{Right: i%200 < 100, Down: i%70 < 20})
		}
		snap := s.Snapshot()
		snap.SessionID = ""
		return snap
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Expected replayed snapshots to match\na: %+v\nb: %+v", a, b)
	}
}

// TestParameterPushClamps verifies out-of-range pushes are clamped and logged
func TestParameterPushClamps(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := newTestSession(t, WithLogger(zap.New(core)))

	s.SetSpeedMultiplier(TeamPlayer, 100, 99999)
	if e := s.player.Effects[physics.EffectSpeed]; e.Value != parameter.SpeedMultiplierMax || e.Remaining != parameter.EffectMaxTicks {
		t.Errorf("Expected speed clamp (4, 3600), got %+v", e)
	}

	s.SetSpeedMultiplier(TeamOpponent, math.NaN(), 10)
	if f := s.opponent.SpeedMultiplier(); f != 1 {
		t.Errorf("Expected NaN factor replaced by 1, got %f", f)
	}

	s.SetMagnetism(TeamPlayer, 5, 30)
	if m := s.player.MagnetStrength(); m != parameter.MagnetMaxStrength {
		t.Errorf("Expected magnet clamp 1, got %f", m)
	}

	s.SetGoalSizeMultiplier(0.1, 60)
	if f := s.goalSize.Factor(); f != parameter.GoalMultiplierMin {
		t.Errorf("Expected goal clamp 0.5, got %f", f)
	}
	s.SetGoalSizeMultiplier(2, 0)
	if f := s.goalSize.Factor(); f != 1 {
		t.Errorf("Expected zero-tick push to clear, got %f", f)
	}

	if n := logs.FilterMessage("parameter push clamped").Len(); n != 4 {
		t.Errorf("Expected 4 clamp warnings, got %d", n)
	}
}

// TestEffectsTickDuringPlayOnly verifies countdown does not consume effect time
func TestEffectsTickDuringPlayOnly(t *testing.T) {
	s := newTestSession(t)
	s.SetSpeedMultiplier(TeamPlayer, 2, 3)

	for i := 0; i < 10; i++ {
		s.Tick(Input{})
	}
	if s.player.Speed() != 10 {
		t.Fatalf("Expected boost kept through countdown, got %f", s.player.Speed())
	}

	toPlay(t, s)
	for i := 0; i < 3; i++ {
		s.Tick(Input{})
	}
	if s.player.Speed() != parameter.PlayerSpeed {
		t.Errorf("Expected boost expired after 3 play ticks, got %f", s.player.Speed())
	}
}

// TestPushActiveForStatedTicks verifies an N-tick push applies on exactly N play ticks
func TestPushActiveForStatedTicks(t *testing.T) {
	for _, ticks := range []int{1, 2, 5} {
		s := newTestSession(t)
		toPlay(t, s)
		s.SetSpeedMultiplier(TeamPlayer, 2, ticks)

		boosted := 0
		for i := 0; i < ticks+2; i++ {
			before := s.player.Pos.X
			s.Tick(Input{Right: true})
			if dx := s.player.Pos.X - before; dx == parameter.PlayerSpeed*2 {
				boosted++
			} else if dx != parameter.PlayerSpeed {
				t.Fatalf("Expected step of 5 or 10, got %f", dx)
			}
		}
		if boosted != ticks {
			t.Errorf("Expected %d-tick boost active for %d ticks, got %d", ticks, ticks, boosted)
		}
	}
}

// TestCollectPowerUp verifies each kind maps to its table push and emits one event
func TestCollectPowerUp(t *testing.T) {
	rec := &event.Recorder{}
	s := newTestSession(t, WithAchievements(rec))

	s.CollectPowerUp(TeamPlayer, PowerUpSpeed)
	s.CollectPowerUp(TeamOpponent, PowerUpMagnet)
	s.CollectPowerUp(TeamPlayer, PowerUpBigGoal)
	s.CollectPowerUp(TeamPlayer, PowerUpKind(9))

	if s.player.Speed() != parameter.PlayerSpeed*parameter.SpeedBoostFactor {
		t.Errorf("Expected doubled player speed, got %f", s.player.Speed())
	}
	if s.opponent.MagnetStrength() != parameter.MagnetDefaultStrength {
		t.Errorf("Expected opponent magnet 0.3, got %f", s.opponent.MagnetStrength())
	}
	if s.goalSize.Factor() != parameter.BigGoalFactor {
		t.Errorf("Expected goal factor 1.5, got %f", s.goalSize.Factor())
	}

	events := s.Tick(Input{})
	if n := countType(events, event.EventPowerUpCollected); n != 3 {
		t.Errorf("Expected 3 power-up events, got %d", n)
	}
	if len(rec.PowerUps) != 3 || rec.PowerUps[1].Kind != PowerUpMagnet || rec.PowerUps[1].DurationTicks != parameter.MagnetTicks {
		t.Errorf("Expected routed power-ups, got %+v", rec.PowerUps)
	}
}

// TestMagnetismPullsBall verifies the pull is applied after the ball step
func TestMagnetismPullsBall(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)

	s.CollectPowerUp(TeamPlayer, PowerUpMagnet)
	s.ball.Place(vmath.V2(460, 300))
	s.Tick(Input{})

	if math.Abs(s.ball.Vel.X+parameter.MagnetDefaultStrength) > 1e-9 || s.ball.Vel.Y != 0 {
		t.Errorf("Expected velocity (-0.3, 0), got %+v", s.ball.Vel)
	}
}

// TestInvariantRestoresBody verifies a corrupted body snaps back outside debug mode
func TestInvariantRestoresBody(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := newTestSession(t, WithLogger(zap.New(core)))
	toPlay(t, s)

	s.ball.Place(vmath.V2(300, 300))
	s.ball.Pos.X = math.NaN()
	s.Tick(Input{})

	if s.ball.Pos != vmath.V2(300, 300) {
		t.Errorf("Expected ball restored to (300, 300), got %+v", s.ball.Pos)
	}
	if logs.FilterMessage("body restored to last valid state").Len() != 1 {
		t.Error("Expected one restore warning")
	}
}

// TestInvariantPanicsInDebug verifies debug sessions fail fast
func TestInvariantPanicsInDebug(t *testing.T) {
	s := newTestSession(t, WithDebug(true))
	toPlay(t, s)
	s.ball.Vel.Y = math.Inf(1)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, physics.ErrInvariant) {
			t.Errorf("Expected ErrInvariant panic, got %v", r)
		}
	}()
	s.Tick(Input{})
}

// TestSetPersonalityFallback verifies unknown names select the default and warn
func TestSetPersonalityFallback(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := newTestSession(t, WithLogger(zap.New(core)))

	s.SetPersonality("hard")
	if got := s.Snapshot().Opponent.Personality; got != "hard" {
		t.Fatalf("Expected hard, got %s", got)
	}

	s.SetPersonality("nightmare")
	if got := s.Snapshot().Opponent.Personality; got != behavior.DefaultPersonality.String() {
		t.Errorf("Expected default personality, got %s", got)
	}
	if logs.FilterMessage("unknown personality, using default").Len() != 1 {
		t.Error("Expected a fallback warning")
	}

	events := s.Tick(Input{})
	var last *event.PersonalityPayload
	for _, ev := range events {
		if ev.Type == event.EventPersonalityChange {
			last = ev.Payload.(*event.PersonalityPayload)
		}
	}
	if last == nil || !last.Fallback || last.Name != "medium" {
		t.Errorf("Expected fallback personality event, got %+v", last)
	}
}

// TestAdaptiveToggle verifies disabling adaptation freezes the level while goals still count
func TestAdaptiveToggle(t *testing.T) {
	s := newTestSession(t)
	s.SetAdaptiveDifficulty(false)
	toPlay(t, s)

	s.ball.Place(vmath.V2(40, 300))
	s.Tick(Input{})

	if s.Difficulty().Level() != parameter.DifficultyInitial {
		t.Errorf("Expected level unchanged, got %f", s.Difficulty().Level())
	}
	if _, o := s.Difficulty().Goals(); o != 1 {
		t.Errorf("Expected opponent goal counted, got %d", o)
	}
	if s.Snapshot().Adaptive {
		t.Error("Expected snapshot to report adaptive off")
	}
}

// TestTelemetryPublished verifies registry keys track the match
func TestTelemetryPublished(t *testing.T) {
	reg := status.NewRegistry()
	s := newTestSession(t, WithStatus(reg))
	if s.Status() != reg {
		t.Fatal("Expected session to publish into the provided registry")
	}
	toPlay(t, s)

	s.ball.Place(vmath.V2(40, 300))
	s.Tick(Input{})

	if v := reg.Ints.Get(KeyGoals).Load(); v != 1 {
		t.Errorf("Expected 1 goal, got %d", v)
	}
	if v := reg.Ints.Get(KeyScoreOpponent).Load(); v != 1 {
		t.Errorf("Expected opponent score 1, got %d", v)
	}
	if v := reg.Strings.Get(KeyPhase).Load(); v != "celebrating" {
		t.Errorf("Expected phase celebrating, got %s", v)
	}
	if v := reg.Strings.Get(KeyAIState).Load(); v != "celebrating" {
		t.Errorf("Expected ai state celebrating, got %s", v)
	}
	if v := reg.Ints.Get(KeyTick).Load(); v != s.tick {
		t.Errorf("Expected tick %d, got %d", s.tick, v)
	}
	if !reg.Bools.Get(KeyAIAdaptive).Load() {
		t.Error("Expected adaptive true")
	}

	s.Restart()
	if v := reg.Ints.Get(KeyGoals).Load(); v != 1 {
		t.Errorf("Expected cumulative goals kept across restart, got %d", v)
	}
}

// TestCollaboratorPanicIsolated verifies a failing sink does not break the tick
func TestCollaboratorPanicIsolated(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := newTestSession(t,
		WithLogger(zap.New(core)),
		WithListener(event.ListenerFunc(func(event.GameEvent) { panic("boom") })),
	)

	for i := 0; i < parameter.CountdownTicks; i++ {
		s.Tick(Input{})
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Expected playing despite faulty listener, got %s", s.Phase())
	}
	if logs.Len() == 0 {
		t.Error("Expected collaborator fault logged")
	}
}

// TestSnapshotJSON verifies phase names and session id in the encoded snapshot
func TestSnapshotJSON(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()
	if snap.CountdownSeconds != 3 {
		t.Errorf("Expected 3 countdown seconds, got %d", snap.CountdownSeconds)
	}

	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"phase":"countdown"`) {
		t.Errorf("Expected phase name in JSON, got %s", out)
	}
	if !strings.Contains(out, s.ID()) || s.ID() == "" {
		t.Errorf("Expected session id in JSON, got %s", out)
	}
}

// TestSnapshotCarriesPossession verifies game time and player possession reach the snapshot
func TestSnapshotCarriesPossession(t *testing.T) {
	s := newTestSession(t)
	toPlay(t, s)

	s.ball.Place(vmath.V2Add(s.player.Pos, vmath.V2(10, 0)))
	s.Tick(Input{})

	snap := s.Snapshot()
	if snap.GameTicks != int(snap.Tick) {
		t.Errorf("Expected game ticks %d, got %d", snap.Tick, snap.GameTicks)
	}
	if snap.PossessionTicks != 1 {
		t.Errorf("Expected one possession tick after a player kick, got %d", snap.PossessionTicks)
	}

	s.Restart()
	if snap = s.Snapshot(); snap.GameTicks != 0 || snap.PossessionTicks != 0 {
		t.Errorf("Expected stats cleared by restart, got %d/%d", snap.GameTicks, snap.PossessionTicks)
	}
}

// TestInputDirection verifies right and down override their opposites
func TestInputDirection(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want vmath.Vec2
	}{
		{"idle", Input{}, vmath.Vec2{}},
		{"left", Input{Left: true}, vmath.V2(-1, 0)},
		{"both horizontal", Input{Left: true, Right: true}, vmath.V2(1, 0)},
		{"both vertical", Input{Up: true, Down: true}, vmath.V2(0, 1)},
		{"diagonal", Input{Up: true, Left: true}, vmath.V2(-1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Direction(); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
