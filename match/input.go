package match

import "github.com/lixenwraith/kickoff/vmath"

// Input is the per-tick human intent sampled by the keyboard collaborator
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Direction returns the per-axis unit intent; Right overrides Left and Down overrides Up
func (in Input) Direction() vmath.Vec2 {
	var d vmath.Vec2
	if in.Left {
		d.X = -1
	}
	if in.Right {
		d.X = 1
	}
	if in.Up {
		d.Y = -1
	}
	if in.Down {
		d.Y = 1
	}
	return d
}

// Idle reports whether no direction is held
func (in Input) Idle() bool {
	return !in.Left && !in.Right && !in.Up && !in.Down
}
