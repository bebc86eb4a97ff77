// Package engine implements the simulation core of the game: an actor that
// falls under constant gravity and jumps on input, and a single gapped
// obstacle that scrolls left and recycles at the right edge.
//
// The engine has no notion of wall-clock time. Callers drive it with
// TickVertical and TickHorizontal on two independent fixed-period timers and
// use VerticalActive, HorizontalActive and Generation to decide which timers
// should be running. An Engine is not safe for concurrent use; Loop and the
// TUI model both serialize access on a single goroutine.
package engine

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the random source used to place obstacle gaps.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Engine owns all simulated state of one game.
type Engine struct {
	cfg Config
	rng Rand

	actorY    float64
	obstacleX float64
	gapTop    float64
	score     int
	state     RunState
	explosion *Explosion // Set only by gameOver, cleared by Restart

	generation uint64 // Incremented every time a run starts
}

// New creates an engine in the NotStarted state.
// A nil rng is replaced by a time-seeded source.
func New(cfg Config, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{cfg: cfg, rng: rng}
	e.reset()
	return e
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reconfigure swaps the constants and restarts the game.
func (e *Engine) Reconfigure(cfg Config) StepResult {
	e.cfg = cfg
	return e.Restart()
}

// reset keeps the actor inside [0, Floor()] even for an out-of-range start.
func (e *Engine) reset() {
	e.actorY = math.Min(math.Max(e.cfg.ActorStartY, 0), e.cfg.Floor())
	e.obstacleX = e.cfg.ObstacleStartX
	e.gapTop = e.cfg.InitialGapTop
	e.score = 0
	e.state = NotStarted
	e.explosion = nil
}

// TickVertical applies one step of gravity.
func (e *Engine) TickVertical() StepResult {
	if !e.VerticalActive() {
		return e.result(nil)
	}

	e.actorY = math.Min(e.actorY+e.cfg.Gravity, e.cfg.Floor())
	return e.result(e.evaluate(nil))
}

// TickHorizontal scrolls the obstacle one step and recycles it once it has
// fully left the arena, awarding a point.
func (e *Engine) TickHorizontal() StepResult {
	if !e.HorizontalActive() {
		return e.result(nil)
	}

	var events []Event
	e.obstacleX -= e.cfg.ScrollStep
	if e.obstacleX < -e.cfg.ObstacleWidth {
		e.obstacleX = e.cfg.ArenaWidth
		e.gapTop = math.Floor(e.rng.Float64() * e.cfg.GapRange())
		e.score++
		events = append(events, Event{Kind: EventScored, Score: e.score})
	}
	return e.result(e.evaluate(events))
}

// Jump starts the game if needed and moves the actor up by the jump impulse,
// never above the top of the arena. It does nothing after a game over.
func (e *Engine) Jump() StepResult {
	if e.state == GameOver {
		return e.result(nil)
	}

	var events []Event
	if e.state == NotStarted {
		e.state = Running
		e.generation++
		events = append(events, Event{Kind: EventStarted})
	}

	e.actorY = math.Max(e.actorY-e.cfg.JumpImpulse, 0)
	return e.result(e.evaluate(events))
}

// Restart returns every value to its default, from any state.
func (e *Engine) Restart() StepResult {
	e.reset()
	return e.result([]Event{{Kind: EventRestarted}})
}

// EvaluateCollision reports whether the actor currently overlaps the obstacle.
// A hit while running ends the game and records the explosion marker.
func (e *Engine) EvaluateCollision() bool {
	hit := Collides(e.cfg, e.actorY, e.obstacleX, e.gapTop)
	if hit && e.state == Running {
		e.gameOver()
	}
	return hit
}

// evaluate runs the collision check after a mutation and appends the
// game-over event when it fires.
func (e *Engine) evaluate(events []Event) []Event {
	if e.state != Running {
		return events
	}
	if e.EvaluateCollision() {
		events = append(events, Event{Kind: EventGameOver, Score: e.score, Explosion: e.Explosion()})
	}
	return events
}

func (e *Engine) gameOver() {
	e.state = GameOver
	e.explosion = &Explosion{
		Top:  e.actorY,
		Left: e.obstacleX - e.cfg.ExplosionOffset,
	}
}

// VerticalActive reports whether the gravity timer should be running.
func (e *Engine) VerticalActive() bool {
	return e.state == Running && e.actorY < e.cfg.Floor()
}

// HorizontalActive reports whether the scroll timer should be running.
func (e *Engine) HorizontalActive() bool {
	return e.state == Running
}

// Generation identifies the current run. It changes every time a run starts,
// so timers tagged with an older generation can be discarded.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// Score returns the number of obstacles passed in this run.
func (e *Engine) Score() int {
	return e.score
}

// Explosion returns a copy of the marker, or nil unless the game is over.
func (e *Engine) Explosion() *Explosion {
	if e.explosion == nil {
		return nil
	}
	ex := *e.explosion
	return &ex
}

// Snapshot returns a copy of the renderable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		VerticalPosition:   e.actorY,
		HorizontalPosition: e.obstacleX,
		GapTop:             e.gapTop,
		Score:              e.score,
		State:              e.state,
		Explosion:          e.Explosion(),
		Generation:         e.generation,
	}
}

func (e *Engine) result(events []Event) StepResult {
	return StepResult{State: e.Snapshot(), Events: events}
}
