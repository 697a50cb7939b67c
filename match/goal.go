package match

import (
	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
)

// goalMouths returns the left and right mouth rectangles for a height multiplier
// Mouths stay vertically centered as they grow
func goalMouths(f physics.Field, multiplier float64) (left, right physics.Rect) {
	h := parameter.GoalHeight * multiplier
	top := (f.Height - h) / 2

	left = physics.Rect{
		MinX: parameter.WallInset,
		MinY: top,
		MaxX: parameter.WallInset + parameter.GoalDepth,
		MaxY: top + h,
	}
	right = physics.Rect{
		MinX: f.Width - parameter.WallInset - parameter.GoalDepth,
		MinY: top,
		MaxX: f.Width - parameter.WallInset,
		MaxY: top + h,
	}
	return left, right
}

// inMouth reports ball entry: circle extent overlaps the mouth depth, center within the mouth span
func inMouth(b *physics.Ball, m physics.Rect) bool {
	return b.Pos.X-b.Radius <= m.MaxX &&
		b.Pos.X+b.Radius >= m.MinX &&
		b.Pos.Y >= m.MinY &&
		b.Pos.Y <= m.MaxY
}

// detectGoal returns the mouth the ball entered, left checked first
func detectGoal(b *physics.Ball, f physics.Field, multiplier float64) (event.Side, bool) {
	left, right := goalMouths(f, multiplier)
	if inMouth(b, left) {
		return event.SideLeft, true
	}
	if inMouth(b, right) {
		return event.SideRight, true
	}
	return 0, false
}

// scorerFor maps the entered mouth to the scoring team: the left mouth is the player's goal
func scorerFor(side event.Side) event.Team {
	if side == event.SideLeft {
		return event.TeamOpponent
	}
	return event.TeamPlayer
}
