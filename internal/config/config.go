// Package config provides file-based game tuning: the schema, embedded
// defaults, a search-path loader for YAML and TOML files, and a watcher that
// reloads a file when it changes.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// GameConfig is the on-disk tuning of a game.
type GameConfig struct {
	Arena     ArenaConfig     `yaml:"arena" toml:"arena"`
	Actor     ActorConfig     `yaml:"actor" toml:"actor"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Obstacle  ObstacleConfig  `yaml:"obstacle" toml:"obstacle"`
	Timing    TimingConfig    `yaml:"timing" toml:"timing"`
	Explosion ExplosionConfig `yaml:"explosion" toml:"explosion"`
}

// ArenaConfig defines the play area in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ActorConfig defines the controlled entity.
type ActorConfig struct {
	Size   float64 `yaml:"size" toml:"size"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	Left   float64 `yaml:"left" toml:"left"` // Draw column only
}

// PhysicsConfig defines the constant-gravity model.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
}

// ObstacleConfig defines the gapped barrier.
type ObstacleConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	GapSize       float64 `yaml:"gap_size" toml:"gap_size"`
	StartX        float64 `yaml:"start_x" toml:"start_x"`
	InitialGapTop float64 `yaml:"initial_gap_top" toml:"initial_gap_top"`
	ScrollStep    float64 `yaml:"scroll_step" toml:"scroll_step"`
}

// TimingConfig defines the two tick periods.
type TimingConfig struct {
	VerticalPeriodMS   int `yaml:"vertical_period_ms" toml:"vertical_period_ms"`
	HorizontalPeriodMS int `yaml:"horizontal_period_ms" toml:"horizontal_period_ms"`
}

// ExplosionConfig defines the game-over marker.
type ExplosionConfig struct {
	Offset float64 `yaml:"offset" toml:"offset"`
	Size   float64 `yaml:"size" toml:"size"`
}

// Validate reports every setting that would make the game unplayable.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("actor.size", c.Actor.Size)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_impulse", c.Physics.JumpImpulse)
	positive("obstacle.width", c.Obstacle.Width)
	positive("obstacle.gap_size", c.Obstacle.GapSize)
	positive("obstacle.scroll_step", c.Obstacle.ScrollStep)
	positive("timing.vertical_period_ms", float64(c.Timing.VerticalPeriodMS))
	positive("timing.horizontal_period_ms", float64(c.Timing.HorizontalPeriodMS))

	if c.Obstacle.GapSize >= c.Arena.Height {
		errs = append(errs, fmt.Errorf("obstacle.gap_size (%v) must be smaller than arena.height (%v)",
			c.Obstacle.GapSize, c.Arena.Height))
	}
	if c.Actor.Size > c.Arena.Height {
		errs = append(errs, fmt.Errorf("actor.size (%v) must fit in arena.height (%v)",
			c.Actor.Size, c.Arena.Height))
	}
	if c.Actor.StartY < 0 || c.Actor.StartY > c.Arena.Height-c.Actor.Size {
		errs = append(errs, fmt.Errorf("actor.start_y (%v) must be within [0, %v]",
			c.Actor.StartY, c.Arena.Height-c.Actor.Size))
	}
	if c.Obstacle.InitialGapTop < 0 || c.Obstacle.InitialGapTop >= c.Arena.Height-c.Obstacle.GapSize {
		errs = append(errs, fmt.Errorf("obstacle.initial_gap_top (%v) must be within [0, %v)",
			c.Obstacle.InitialGapTop, c.Arena.Height-c.Obstacle.GapSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// Engine converts the file schema to engine constants.
func (c GameConfig) Engine() engine.Config {
	return engine.Config{
		ArenaWidth:       c.Arena.Width,
		ArenaHeight:      c.Arena.Height,
		ActorSize:        c.Actor.Size,
		ActorStartY:      c.Actor.StartY,
		ActorLeft:        c.Actor.Left,
		Gravity:          c.Physics.Gravity,
		JumpImpulse:      c.Physics.JumpImpulse,
		ObstacleWidth:    c.Obstacle.Width,
		GapSize:          c.Obstacle.GapSize,
		ObstacleStartX:   c.Obstacle.StartX,
		InitialGapTop:    c.Obstacle.InitialGapTop,
		ScrollStep:       c.Obstacle.ScrollStep,
		VerticalPeriod:   time.Duration(c.Timing.VerticalPeriodMS) * time.Millisecond,
		HorizontalPeriod: time.Duration(c.Timing.HorizontalPeriodMS) * time.Millisecond,
		ExplosionOffset:  c.Explosion.Offset,
		ExplosionSize:    c.Explosion.Size,
	}
}
