package engine

import "time"

// Config holds the construction-time constants of a game.
// All distances are in arena pixels, measured from the top-left corner.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	ActorSize   float64
	ActorStartY float64
	ActorLeft   float64 // Draw column of the actor; not used by collision

	Gravity     float64 // Added to the actor position on every vertical tick
	JumpImpulse float64 // Subtracted from the actor position on every jump

	ObstacleWidth  float64
	GapSize        float64
	ObstacleStartX float64
	InitialGapTop  float64
	ScrollStep     float64 // Subtracted from the obstacle position on every horizontal tick

	VerticalPeriod   time.Duration
	HorizontalPeriod time.Duration

	ExplosionOffset float64 // Marker left = obstacle position - offset
	ExplosionSize   float64
}

// DefaultConfig returns the classic tuning: a 400x600 arena,
// a 60px actor and a 200px gap, both timers firing every 24ms.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:       400,
		ArenaHeight:      600,
		ActorSize:        60,
		ActorStartY:      300,
		ActorLeft:        100,
		Gravity:          6,
		JumpImpulse:      70,
		ObstacleWidth:    60,
		GapSize:          200,
		ObstacleStartX:   500,
		InitialGapTop:    200,
		ScrollStep:       5,
		VerticalPeriod:   24 * time.Millisecond,
		HorizontalPeriod: 24 * time.Millisecond,
		ExplosionOffset:  20,
		ExplosionSize:    80,
	}
}

// Floor returns the largest valid actor position.
func (c Config) Floor() float64 {
	return c.ArenaHeight - c.ActorSize
}

// GapRange returns the exclusive upper bound for a randomized gap top.
func (c Config) GapRange() float64 {
	return c.ArenaHeight - c.GapSize
}
