package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kickoff/behavior"
	"github.com/lixenwraith/kickoff/match"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/physics"
	"github.com/lixenwraith/kickoff/vmath"
)

// HUD carries collaborator state shown next to the match
type HUD struct {
	AudioReady bool
	Muted      bool
	Volume     float64
}

// Renderer draws match snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	canvas *Canvas
	width  int
	height int

	// Frames spent in the playing phase, drives the GO banner
	playFrames int
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		canvas: NewCanvas(w, h),
		width:  w,
		height: h,
	}
}

// Canvas exposes the composed frame
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// RenderFrame composes the snapshot and flushes it to the screen
func (r *Renderer) RenderFrame(snap *match.Snapshot, hud HUD) {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.width, r.height = w, h
		r.canvas.Resize(w, h)
	}
	r.Compose(snap, hud)
	r.canvas.Flush(r.screen)
}

// Compose draws the frame into the canvas without touching the screen
func (r *Renderer) Compose(snap *match.Snapshot, hud HUD) {
	if snap.Phase == match.PhasePlaying {
		r.playFrames++
	} else {
		r.playFrames = 0
	}

	r.canvas.Clear(RgbBackground)
	if r.width < parameter.MinScreenWidth || r.height < parameter.MinScreenHeight {
		r.centered(r.height/2, parameter.ResizeText, RgbStatusBar, RgbBackground)
		return
	}

	l := newLayout(r.width, r.height, snap.Field)
	r.drawPitch(l, snap)
	r.drawGoal(l, snap.LeftGoal, RgbGoalLeft)
	r.drawGoal(l, snap.RightGoal, RgbGoalRight)
	r.drawAgents(l, snap)
	r.drawBall(l, snap)
	r.drawBanner(l, snap)
	r.drawScoreBar(snap)
	r.drawStatusBar(hud)
}

// layout maps field coordinates onto the pitch rows between the status lines
type layout struct {
	top    int
	width  int
	height int
	field  physics.Field
}

func newLayout(w, h int, f physics.Field) layout {
	return layout{
		top:    parameter.TopMargin,
		width:  w,
		height: h - parameter.TopMargin - parameter.BottomMargin,
		field:  f,
	}
}

func (l layout) project(p vmath.Vec2) (int, int) {
	x := int(p.X / l.field.Width * float64(l.width))
	y := int(p.Y / l.field.Height * float64(l.height))
	return vmath.ClampInt(x, 0, l.width-1), l.top + vmath.ClampInt(y, 0, l.height-1)
}

func (r *Renderer) drawPitch(l layout, snap *match.Snapshot) {
	walls := snap.Field.Walls()
	x0, y0 := l.project(vmath.V2(walls.MinX, walls.MinY))
	x1, y1 := l.project(vmath.V2(walls.MaxX, walls.MaxY))

	for y := l.top; y < l.top+l.height; y++ {
		for x := 0; x < l.width; x++ {
			bg := RgbPitch
			if x < x0 || x > x1 || y < y0 || y > y1 {
				bg = RgbWall
			}
			r.canvas.SetWithBg(x, y, ' ', RgbPitchLine, bg)
		}
	}

	for x := x0 + 1; x < x1; x++ {
		r.canvas.SetFgOnly(x, y0, '─', RgbPitchLine)
		r.canvas.SetFgOnly(x, y1, '─', RgbPitchLine)
	}
	for y := y0 + 1; y < y1; y++ {
		r.canvas.SetFgOnly(x0, y, '│', RgbPitchLine)
		r.canvas.SetFgOnly(x1, y, '│', RgbPitchLine)
	}
	r.canvas.SetFgOnly(x0, y0, '┌', RgbPitchLine)
	r.canvas.SetFgOnly(x1, y0, '┐', RgbPitchLine)
	r.canvas.SetFgOnly(x0, y1, '└', RgbPitchLine)
	r.canvas.SetFgOnly(x1, y1, '┘', RgbPitchLine)

	cx, _ := l.project(snap.Field.Center())
	for y := y0 + 1; y < y1; y++ {
		r.canvas.SetFgOnly(cx, y, parameter.CenterChar, RgbPitchLine)
	}
}

func (r *Renderer) drawGoal(l layout, mouth physics.Rect, color RGB) {
	x0, y0 := l.project(vmath.V2(mouth.MinX, mouth.MinY))
	x1, y1 := l.project(vmath.V2(mouth.MaxX, mouth.MaxY))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.canvas.SetFgOnly(x, y, parameter.GoalChar, color)
		}
	}
}

func (r *Renderer) drawAgents(l layout, snap *match.Snapshot) {
	r.drawAura(l, snap.Player.Pos, snap.Player.MagnetStrength)
	r.drawAura(l, snap.Opponent.Pos, snap.Opponent.MagnetStrength)

	px, py := l.project(snap.Player.Pos)
	color := RgbPlayer
	if snap.Player.SpeedTicks > 0 {
		color = RgbPlayerBoost
	}
	r.canvas.SetFgOnly(px, py, parameter.PlayerChar, color)

	ox, oy := l.project(vmath.V2Add(snap.Opponent.Pos, snap.Opponent.Flourish))
	color = RgbOpponent
	switch {
	case snap.Opponent.Behavior == behavior.StateCelebrating.String():
		color = RgbCelebrate
	case snap.Opponent.SpeedTicks > 0:
		color = RgbOpponentBoost
	}
	r.canvas.SetFgOnly(ox, oy, parameter.OpponentChar, color)
}

// drawAura tints the cells around a magnetized agent, denser for stronger pulls
func (r *Renderer) drawAura(l layout, pos vmath.Vec2, strength float64) {
	if strength <= 0 {
		return
	}
	cx, cy := l.project(pos)
	for dy := -1; dy <= 1; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r.canvas.BlendBg(cx+dx, cy+dy, RgbMagnet, 0.2+0.5*strength)
		}
	}
}

func (r *Renderer) drawBall(l layout, snap *match.Snapshot) {
	bx, by := l.project(snap.Ball.Pos)
	r.canvas.SetFgOnly(bx, by, parameter.BallChar, RgbBall)
}

// drawBanner shows phase text a quarter down the pitch, clear of the kickoff spots
func (r *Renderer) drawBanner(l layout, snap *match.Snapshot) {
	row := l.top + l.height/4
	switch snap.Phase {
	case match.PhaseCountdown:
		r.centered(row, " "+strconv.Itoa(snap.CountdownSeconds)+" ", RgbBannerText, RgbCountdownBg)
	case match.PhaseCelebrating:
		if snap.Opponent.Behavior == behavior.StateCelebrating.String() {
			r.centered(row, " "+parameter.ConcedeText+" ", RgbBannerText, RgbConcedeBg)
		} else {
			r.centered(row, " "+parameter.GoalText+" ", RgbBannerText, RgbGoalBannerBg)
		}
	case match.PhasePlaying:
		if r.playFrames <= parameter.GoBannerTicks {
			r.centered(row, " "+parameter.GoText+" ", RgbBannerText, RgbGoalBannerBg)
		}
	}
}

func (r *Renderer) centered(y int, s string, fg, bg RGB) {
	n := len([]rune(s))
	r.canvas.Text((r.width-n)/2, y, s, fg, bg, true)
}

func (r *Renderer) drawScoreBar(snap *match.Snapshot) {
	for x := 0; x < r.width; x++ {
		r.canvas.SetWithBg(x, 0, ' ', RgbStatusText, RgbScoreBg)
	}

	x := r.canvas.Text(0, 0, fmt.Sprintf(" YOU %d : %d CPU ", snap.PlayerScore, snap.OpponentScore), RgbStatusText, RgbScoreBg, true)
	x = r.canvas.Text(x+1, 0, snap.Opponent.Personality, RgbStatusText, RgbScoreBg, false)

	x = r.canvas.Text(x+2, 0, fmt.Sprintf(" %s %.2f ", snap.SkillLabel, snap.Difficulty), RgbStatusText, DifficultyColor(snap.Difficulty), false)
	if snap.Adaptive {
		x = r.canvas.Text(x+1, 0, " ADAPTIVE ", RgbStatusText, RgbAdaptiveBg, false)
	} else {
		x = r.canvas.Text(x+1, 0, " FIXED ", RgbStatusText, RgbFixedBg, false)
	}

	seconds := snap.GameTicks / parameter.TickRate
	r.canvas.Text(x+1, 0, fmt.Sprintf("%ds POS %d%%", seconds, snap.PossessionPct()), RgbStatusText, RgbScoreBg, false)
}

func (r *Renderer) drawStatusBar(hud HUD) {
	y := r.height - 1
	r.canvas.Text(1, y, parameter.ControlsText, RgbStatusDim, RgbBackground, false)

	audio := parameter.AudioStr + "off"
	switch {
	case !hud.AudioReady:
	case hud.Muted:
		audio = parameter.MutedStr
	default:
		audio = fmt.Sprintf("%s%d%%", parameter.AudioStr, int(hud.Volume*100+0.5))
	}
	n := len([]rune(audio))
	r.canvas.Text(r.width-n-1, y, audio, RgbStatusBar, RgbBackground, false)
}
