// Package autopilot plays the game without a human, for demos and soak runs.
package autopilot

import (
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Pilot decides when to jump based on the latest snapshot. It aims to keep the
// actor inside the current gap and jumps just before it would sink below it.
type Pilot struct {
	cfg      engine.Config
	cooldown int // Steps to skip after a jump
	wait     int
	restart  bool
}

// New creates a pilot for the given tuning.
// When restart is true the pilot starts a new run after every game over.
func New(cfg engine.Config, restart bool) *Pilot {
	return &Pilot{cfg: cfg, cooldown: 2, restart: restart}
}

// ShouldJump reports whether a jump now keeps the actor in the gap band.
func (p *Pilot) ShouldJump(s engine.Snapshot) bool {
	lowest := s.GapTop + p.cfg.GapSize - p.cfg.ActorSize
	return s.VerticalPosition >= lowest-2*p.cfg.Gravity
}

// Decide is an engine.Handler.
func (p *Pilot) Decide(res engine.StepResult) engine.Action {
	s := res.State
	switch s.State {
	case engine.NotStarted:
		p.wait = 0
		return engine.ActionJump
	case engine.GameOver:
		if p.restart {
			return engine.ActionRestart
		}
		return engine.ActionNone
	}

	if p.wait > 0 {
		p.wait--
		return engine.ActionNone
	}
	if p.ShouldJump(s) {
		p.wait = p.cooldown
		return engine.ActionJump
	}
	return engine.ActionNone
}
