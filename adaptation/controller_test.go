package adaptation

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestDominantPlayerRaisesDifficulty verifies the 3-0 update from 0.5 lands at 0.54
func TestDominantPlayerRaisesDifficulty(t *testing.T) {
	c := NewControllerWith(0.5, 0.4, 0.1)

	// Build the 2-0 window without moving the level
	c.SetEnabled(false)
	c.RecordGoal(TeamPlayer)
	c.RecordGoal(TeamPlayer)
	if c.Level() != 0.5 {
		t.Fatalf("Expected disabled controller to hold 0.5, got %f", c.Level())
	}

	c.SetEnabled(true)
	c.RecordGoal(TeamPlayer)

	if !approx(c.Level(), 0.54) {
		t.Errorf("Expected difficulty 0.54, got %f", c.Level())
	}
	if p, o := c.Goals(); p != 3 || o != 0 {
		t.Errorf("Expected goals 3-0, got %d-%d", p, o)
	}
	h := c.History()
	if len(h) != 1 || h[0].OpponentWinRate != 0 {
		t.Errorf("Expected one sample with win rate 0, got %+v", h)
	}
}

// TestOpponentStreakConvergesDownward verifies monotone descent to the clamp floor
func TestOpponentStreakConvergesDownward(t *testing.T) {
	c := NewControllerWith(0.9, 0.4, 0.1)
	prev := c.Level()

	for i := 0; i < 50; i++ {
		c.RecordGoal(TeamOpponent)
		lvl := c.Level()
		if lvl > prev {
			t.Fatalf("Goal %d: difficulty rose from %f to %f", i, prev, lvl)
		}
		if lvl < 0.1 || lvl > 0.9 {
			t.Fatalf("Goal %d: difficulty %f outside clamp", i, lvl)
		}
		prev = lvl
	}

	if c.Level() != 0.1 {
		t.Errorf("Expected clamp floor 0.1, got %f", c.Level())
	}
}

// TestLevelAlwaysClamped verifies extreme tuning never escapes [0.1, 0.9]
func TestLevelAlwaysClamped(t *testing.T) {
	c := NewControllerWith(5, 0.4, 10)
	if c.Level() != 0.9 {
		t.Fatalf("Expected initial clamp to 0.9, got %f", c.Level())
	}
	for i := 0; i < 20; i++ {
		c.RecordGoal(TeamPlayer)
		if c.Level() < 0.1 || c.Level() > 0.9 {
			t.Fatalf("Difficulty %f outside clamp", c.Level())
		}
	}
}

// TestHistoryBounded verifies the rolling window keeps the latest 10 samples
func TestHistoryBounded(t *testing.T) {
	c := NewController()
	for i := 0; i < 25; i++ {
		c.Tick()
		c.RecordGoal(TeamPlayer)
	}
	h := c.History()
	if len(h) != 10 {
		t.Fatalf("Expected 10 samples, got %d", len(h))
	}
	if h[len(h)-1].Tick != 25 || h[0].Tick != 16 {
		t.Errorf("Expected samples from ticks 16..25, got %d..%d", h[0].Tick, h[len(h)-1].Tick)
	}
}

// TestResetKeepsLevel verifies counters and history clear while difficulty persists
func TestResetKeepsLevel(t *testing.T) {
	c := NewController()
	c.RecordGoal(TeamPlayer)
	c.RecordPossession(TeamPlayer)
	c.Tick()
	lvl := c.Level()

	c.Reset()

	if c.Level() != lvl {
		t.Errorf("Expected level %f kept, got %f", lvl, c.Level())
	}
	s := c.Stats()
	if s.PlayerGoals != 0 || s.OpponentGoals != 0 || s.GameTicks != 0 || s.PossessionTicks != 0 {
		t.Errorf("Expected zeroed stats, got %+v", s)
	}
	if len(c.History()) != 0 {
		t.Error("Expected empty history after reset")
	}
}

// TestSkillLabels verifies threshold mapping
func TestSkillLabels(t *testing.T) {
	cases := []struct {
		d    float64
		want string
	}{
		{0.1, "Beginner"},
		{0.29, "Beginner"},
		{0.3, "Intermediate"},
		{0.59, "Intermediate"},
		{0.6, "Advanced"},
		{0.79, "Advanced"},
		{0.8, "Expert"},
		{0.9, "Expert"},
	}
	for _, tc := range cases {
		if got := SkillLabel(tc.d); got != tc.want {
			t.Errorf("SkillLabel(%.2f) = %s, want %s", tc.d, got, tc.want)
		}
	}
}

// TestPossessionCountsPlayerOnly verifies opponent touches are not counted
func TestPossessionCountsPlayerOnly(t *testing.T) {
	c := NewController()
	c.RecordPossession(TeamPlayer)
	c.RecordPossession(TeamOpponent)
	c.RecordPossession(TeamPlayer)

	if s := c.Stats(); s.PossessionTicks != 2 || s.DifficultyPct != 50 {
		t.Errorf("Expected possession 2 and 50%%, got %+v", s)
	}
}
