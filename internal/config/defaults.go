package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in tuning.
// It matches defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 600,
		},
		Actor: ActorConfig{
			Size:   60,
			StartY: 300,
			Left:   100,
		},
		Physics: PhysicsConfig{
			Gravity:     6,
			JumpImpulse: 70,
		},
		Obstacle: ObstacleConfig{
			Width:         60,
			GapSize:       200,
			StartX:        500,
			InitialGapTop: 200,
			ScrollStep:    5,
		},
		Timing: TimingConfig{
			VerticalPeriodMS:   24,
			HorizontalPeriodMS: 24,
		},
		Explosion: ExplosionConfig{
			Offset: 20,
			Size:   80,
		},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}
