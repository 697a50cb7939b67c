package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/audio"
	"github.com/lixenwraith/kickoff/match"
	"github.com/lixenwraith/kickoff/parameter"
	"github.com/lixenwraith/kickoff/render"
)

// errQuit ends the run group on a quit key, treated as a clean exit
var errQuit = errors.New("quit requested")

// errInputClosed ends the run group when the screen stops delivering events
var errInputClosed = errors.New("input closed")

// game owns the session and its terminal collaborators on the loop goroutine
type game struct {
	session  *match.Session
	screen   tcell.Screen
	renderer *render.Renderer
	keyboard *render.Keyboard
	sound    *audio.SoundManager
	publish  func(match.Snapshot)
	logger   *zap.Logger
}

// pollEvents forwards screen events until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// run drives the fixed-step loop: input between ticks, one Tick and one frame per interval
func (g *game) run(ctx context.Context, events <-chan tcell.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game loop crashed: %v\n%s", r, debug.Stack())
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return errInputClosed
			}
			if !g.handleEvent(ev) {
				return errQuit
			}
		case <-ticker.C:
			g.session.Tick(g.keyboard.Sample())
			g.frame()
		}
	}
}

// frame publishes the snapshot and renders it
func (g *game) frame() {
	snap := g.session.Snapshot()
	if g.publish != nil {
		g.publish(snap)
	}
	g.renderer.RenderFrame(&snap, render.HUD{
		AudioReady: g.sound.Initialized(),
		Muted:      g.sound.IsMuted(),
		Volume:     g.sound.Volume(),
	})
}

// handleEvent returns false when the player asked to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.apply(g.keyboard.HandleEvent(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) apply(cmd render.Command) bool {
	switch cmd.Action {
	case render.ActionNone:
		return true
	case render.ActionQuit:
		return false
	case render.ActionRestart:
		g.session.Restart()
		g.keyboard.Release()
	case render.ActionPersonality:
		g.session.SetPersonality(cmd.Personality.String())
	case render.ActionToggleAdaptive:
		g.session.SetAdaptiveDifficulty(!g.session.Difficulty().Enabled())
	case render.ActionToggleMute:
		g.sound.ToggleMute()
	case render.ActionVolumeUp:
		g.sound.AdjustVolume(parameter.AudioVolumeStep)
	case render.ActionVolumeDown:
		g.sound.AdjustVolume(-parameter.AudioVolumeStep)
	}
	g.logger.Debug("control", zap.Stringer("action", cmd.Action))
	return true
}
