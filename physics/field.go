package physics

import (
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/vmath"
)

// Rect is an axis-aligned region, bounds inclusive
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p vmath.Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Clamp returns p moved to the nearest point inside r
func (r Rect) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2(vmath.Clamp(p.X, r.MinX, r.MaxX), vmath.Clamp(p.Y, r.MinY, r.MaxY))
}

// Field is the pitch geometry, read-only during a tick
type Field struct {
	Width  float64
	Height float64
}

// DefaultField returns the 800x600 design pitch
func DefaultField() Field {
	return Field{Width: parameter.FieldWidth, Height: parameter.FieldHeight}
}

// Walls returns the region bounded by the four walls
func (f Field) Walls() Rect {
	return Rect{
		MinX: parameter.WallInset,
		MinY: parameter.WallInset,
		MaxX: f.Width - parameter.WallInset,
		MaxY: f.Height - parameter.WallInset,
	}
}

// AgentBounds returns the region agent centers may occupy
func (f Field) AgentBounds() Rect {
	return Rect{
		MinX: parameter.AgentInset,
		MinY: parameter.AgentInset,
		MaxX: f.Width - parameter.AgentInset,
		MaxY: f.Height - parameter.AgentInset,
	}
}

// BallBounds returns the region the ball center stays within for a given radius
func (f Field) BallBounds(radius float64) Rect {
	w := f.Walls()
	return Rect{MinX: w.MinX + radius, MinY: w.MinY + radius, MaxX: w.MaxX - radius, MaxY: w.MaxY - radius}
}

// Center returns the pitch midpoint
func (f Field) Center() vmath.Vec2 {
	return vmath.V2(f.Width/2, f.Height/2)
}
