package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Layout describes where a frame was drawn, for mapping mouse events back.
type Layout struct {
	Arena   core.Viewport
	Restart core.Rect // Zero unless the game-over panel is shown
}

const hudRows = 1

// Draw renders one snapshot into s. The arena keeps its aspect ratio and is
// centered below a one-row HUD.
func Draw(s *core.Screen, snap engine.Snapshot, cfg engine.Config) Layout {
	s.Clear()

	vp := core.FitViewport(cfg.ArenaWidth, cfg.ArenaHeight, hudRows, s.Width()-2, s.Height()-hudRows)
	vp.Origin.X++
	layout := Layout{Arena: vp}

	drawArena(s, vp)
	drawObstacle(s, vp, snap, cfg)
	// The explosion replaces the actor once the run is over.
	if snap.State == engine.GameOver && snap.Explosion != nil {
		drawExplosion(s, vp, *snap.Explosion, cfg)
	} else {
		drawActor(s, vp, snap, cfg)
	}
	drawHUD(s, vp, snap)
	if snap.State == engine.GameOver {
		layout.Restart = drawGameOver(s, vp, snap)
	}
	return layout
}

// clip returns the part of r inside bounds.
func clip(r, bounds core.Rect) core.Rect {
	if !r.Intersects(bounds) {
		return core.Rect{}
	}
	x0 := core.Clamp(r.X, bounds.X, bounds.Right())
	y0 := core.Clamp(r.Y, bounds.Y, bounds.Bottom())
	x1 := core.Clamp(r.Right(), bounds.X, bounds.Right())
	y1 := core.Clamp(r.Bottom(), bounds.Y, bounds.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawArena(s *core.Screen, vp core.Viewport) {
	a := vp.Origin
	for y := a.Y; y < a.Bottom(); y++ {
		s.SetColored(a.X-1, y, '│', core.ColorArena)
		s.SetColored(a.Right(), y, '│', core.ColorArena)
	}
	s.DrawHLine(a.X, a.Bottom()-1, a.W, '▁', core.ColorArena)
}

func drawObstacle(s *core.Screen, vp core.Viewport, snap engine.Snapshot, cfg engine.Config) {
	x := snap.HorizontalPosition
	bottomTop := snap.GapTop + cfg.GapSize

	top := clip(vp.Span(x, 0, cfg.ObstacleWidth, snap.GapTop), vp.Origin)
	bottom := clip(vp.Span(x, bottomTop, cfg.ObstacleWidth, cfg.ArenaHeight-bottomTop), vp.Origin)

	if top.W > 0 && snap.GapTop > 0 {
		s.DrawRect(top, '█', core.ColorObstacle)
		s.DrawHLine(top.X, top.Bottom()-1, top.W, '▀', core.ColorObstacleCap)
	}
	if bottom.W > 0 && bottomTop < cfg.ArenaHeight {
		s.DrawRect(bottom, '█', core.ColorObstacle)
		s.DrawHLine(bottom.X, bottom.Y, bottom.W, '▄', core.ColorObstacleCap)
	}
}

func drawActor(s *core.Screen, vp core.Viewport, snap engine.Snapshot, cfg engine.Config) {
	r := clip(vp.Span(cfg.ActorLeft, snap.VerticalPosition, cfg.ActorSize, cfg.ActorSize), vp.Origin)
	s.DrawRect(r, '●', core.ColorActor)
}

func drawExplosion(s *core.Screen, vp core.Viewport, ex engine.Explosion, cfg engine.Config) {
	r := clip(vp.Span(ex.Left, ex.Top, cfg.ExplosionSize, cfg.ExplosionSize), vp.Origin)
	s.DrawRect(r, '*', core.ColorExplosion)
}

func drawHUD(s *core.Screen, vp core.Viewport, snap engine.Snapshot) {
	y := vp.Origin.Y - hudRows
	s.DrawText(vp.Origin.X, y, fmt.Sprintf("Score: %d", snap.Score), core.ColorHUD)

	var status string
	switch snap.State {
	case engine.NotStarted:
		status = "press space"
	case engine.GameOver:
		status = "game over"
	}
	s.DrawText(vp.Origin.Right()-len(status), y, status, core.ColorHUD)
}

const restartLabel = "[ Restart ]"

// drawGameOver draws the result panel and returns the restart control's cells.
func drawGameOver(s *core.Screen, vp core.Viewport, snap engine.Snapshot) core.Rect {
	a := vp.Origin
	w := core.Min(a.W, core.Max(len(restartLabel)+4, 20))
	h := core.Min(a.H, 6)
	panel := core.NewRect(a.X+(a.W-w)/2, a.Y+(a.H-h)/2, w, h)

	s.DrawRect(panel, ' ', core.ColorPanel)
	s.DrawBox(panel, core.ColorPanel)
	s.DrawTextCentered(panel, panel.Y+1, "GAME OVER", core.ColorHUD)
	s.DrawTextCentered(panel, panel.Y+2, fmt.Sprintf("Score: %d", snap.Score), core.ColorPanel)

	btn := core.NewRect(panel.X+(panel.W-len(restartLabel))/2, panel.Bottom()-2, len(restartLabel), 1)
	s.DrawText(btn.X, btn.Y, restartLabel, core.ColorButton)
	return btn
}
