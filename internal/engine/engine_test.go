package engine

import (
	"math/rand"
	"testing"
)

// seqRand returns the given values in order, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

func newTestEngine(vals ...float64) *Engine {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return New(DefaultConfig(), &seqRand{vals: vals})
}

func TestNewEngineDefaults(t *testing.T) {
	e := newTestEngine()
	s := e.Snapshot()

	if s.VerticalPosition != 300 {
		t.Errorf("VerticalPosition = %f, expected 300", s.VerticalPosition)
	}
	if s.HorizontalPosition != 500 {
		t.Errorf("HorizontalPosition = %f, expected 500", s.HorizontalPosition)
	}
	if s.GapTop != 200 {
		t.Errorf("GapTop = %f, expected 200", s.GapTop)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
	if s.State != NotStarted {
		t.Errorf("State = %v, expected %v", s.State, NotStarted)
	}
	if s.Explosion != nil {
		t.Errorf("Explosion = %+v, expected nil", s.Explosion)
	}
}

func TestJumpStartsAndRecycles(t *testing.T) {
	e := newTestEngine(0.25)

	res := e.Jump()
	if res.State.VerticalPosition != 230 {
		t.Errorf("after jump VerticalPosition = %f, expected 230", res.State.VerticalPosition)
	}
	if res.State.State != Running {
		t.Errorf("after jump State = %v, expected %v", res.State.State, Running)
	}
	if !res.Has(EventStarted) {
		t.Error("first jump should emit EventStarted")
	}

	// 500 -> -60 takes 112 steps of 5; the obstacle is still on its way out.
	for i := 0; i < 112; i++ {
		res = e.TickHorizontal()
		if res.State.State != Running {
			t.Fatalf("unexpected game over at tick %d: %+v", i, res.State)
		}
	}
	if res.State.HorizontalPosition != -60 {
		t.Fatalf("HorizontalPosition = %f, expected -60", res.State.HorizontalPosition)
	}
	if res.State.Score != 0 {
		t.Fatalf("Score = %d before recycle, expected 0", res.State.Score)
	}

	res = e.TickHorizontal()
	if res.State.HorizontalPosition != 400 {
		t.Errorf("after recycle HorizontalPosition = %f, expected 400", res.State.HorizontalPosition)
	}
	if res.State.GapTop != 100 {
		t.Errorf("after recycle GapTop = %f, expected 100", res.State.GapTop)
	}
	if res.State.Score != 1 {
		t.Errorf("after recycle Score = %d, expected 1", res.State.Score)
	}
	if !res.Has(EventScored) {
		t.Error("recycle should emit EventScored")
	}
}

func TestCollisionScenario(t *testing.T) {
	e := newTestEngine()
	e.Jump()

	e.obstacleX = 30
	e.actorY = 500

	if !e.EvaluateCollision() {
		t.Fatal("EvaluateCollision() = false, expected true")
	}
	if e.State() != GameOver {
		t.Errorf("State = %v, expected %v", e.State(), GameOver)
	}

	ex := e.Explosion()
	if ex == nil {
		t.Fatal("Explosion should be set after game over")
	}
	if ex.Top != 500 || ex.Left != 10 {
		t.Errorf("Explosion = %+v, expected {Top:500 Left:10}", *ex)
	}
}

func TestCollides(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		actorY    float64
		obstacleX float64
		gapTop    float64
		expected  bool
	}{
		{"inside gap and slot", 250, 30, 200, false},
		{"above gap", 150, 30, 200, true},
		{"below gap", 350, 30, 200, true},
		{"touching gap bottom", 340, 30, 200, false},
		{"touching gap top", 200, 30, 200, false},
		{"below gap, obstacle right of slot", 500, 61, 200, false},
		{"below gap, obstacle left of slot", 500, -1, 200, false},
		{"slot left edge", 500, 0, 200, true},
		{"slot right edge", 500, 60, 200, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collides(cfg, tc.actorY, tc.obstacleX, tc.gapTop)
			if got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			// Pure: same inputs, same answer
			if again := Collides(cfg, tc.actorY, tc.obstacleX, tc.gapTop); again != got {
				t.Errorf("Collides() not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestEvaluateCollisionIsPure(t *testing.T) {
	e := newTestEngine()
	e.obstacleX = 30
	e.actorY = 500

	// Not running: the predicate holds but nothing transitions.
	for i := 0; i < 3; i++ {
		if !e.EvaluateCollision() {
			t.Fatal("EvaluateCollision() = false, expected true")
		}
	}
	if e.State() != NotStarted {
		t.Errorf("State = %v, expected %v", e.State(), NotStarted)
	}
	if e.Explosion() != nil {
		t.Error("Explosion should stay nil outside of game over")
	}
}

func TestGravityClampsAtFloor(t *testing.T) {
	e := newTestEngine()
	e.Jump()
	e.obstacleX = 1000 // Keep the obstacle out of the way

	prev := e.Snapshot().VerticalPosition
	for i := 0; i < 200; i++ {
		res := e.TickVertical()
		y := res.State.VerticalPosition
		if y < prev {
			t.Fatalf("tick %d: position decreased from %f to %f", i, prev, y)
		}
		if y > e.cfg.Floor() {
			t.Fatalf("tick %d: position %f exceeds floor %f", i, y, e.cfg.Floor())
		}
		prev = y
	}

	if prev != e.cfg.Floor() {
		t.Errorf("actor should rest on the floor, got %f", prev)
	}
	if e.VerticalActive() {
		t.Error("vertical timer should be suspended on the floor")
	}
	if !e.HorizontalActive() {
		t.Error("horizontal timer should keep running on the floor")
	}
}

func TestJumpNeverNegative(t *testing.T) {
	for _, start := range []float64{0, 10, 69, 70, 71, 300} {
		e := newTestEngine()
		e.actorY = start
		res := e.Jump()
		if res.State.VerticalPosition < 0 {
			t.Errorf("start %f: position %f is negative", start, res.State.VerticalPosition)
		}
		expected := start - 70
		if expected < 0 {
			expected = 0
		}
		if res.State.VerticalPosition != expected {
			t.Errorf("start %f: position = %f, expected %f", start, res.State.VerticalPosition, expected)
		}
	}
}

func TestJumpDuringGameOverIsNoop(t *testing.T) {
	e := newTestEngine()
	e.Jump()
	e.obstacleX = 30
	e.actorY = 500
	e.EvaluateCollision()

	before := e.Snapshot()
	res := e.Jump()

	if res.State.VerticalPosition != before.VerticalPosition {
		t.Errorf("jump moved actor during game over: %f -> %f", before.VerticalPosition, res.State.VerticalPosition)
	}
	if res.State.State != GameOver {
		t.Errorf("State = %v, expected %v", res.State.State, GameOver)
	}
	if len(res.Events) != 0 {
		t.Errorf("jump during game over emitted %d events", len(res.Events))
	}
}

func TestTicksFrozenAfterGameOver(t *testing.T) {
	e := newTestEngine()
	e.Jump()
	e.obstacleX = 30
	e.actorY = 500
	e.EvaluateCollision()

	before := e.Snapshot()
	for i := 0; i < 50; i++ {
		e.TickVertical()
		e.TickHorizontal()
	}
	after := e.Snapshot()

	if after.VerticalPosition != before.VerticalPosition {
		t.Errorf("VerticalPosition changed after game over: %f -> %f", before.VerticalPosition, after.VerticalPosition)
	}
	if after.HorizontalPosition != before.HorizontalPosition {
		t.Errorf("HorizontalPosition changed after game over: %f -> %f", before.HorizontalPosition, after.HorizontalPosition)
	}
	if after.Score != before.Score {
		t.Errorf("Score changed after game over: %d -> %d", before.Score, after.Score)
	}
	if e.VerticalActive() || e.HorizontalActive() {
		t.Error("both timers should be inactive after game over")
	}
}

func TestTicksIgnoredBeforeStart(t *testing.T) {
	e := newTestEngine()
	before := e.Snapshot()

	e.TickVertical()
	e.TickHorizontal()

	if e.Snapshot() != before {
		t.Errorf("ticks changed state before start: %+v -> %+v", before, e.Snapshot())
	}
}

func TestRestartFromAnyState(t *testing.T) {
	setups := map[string]func(e *Engine){
		"not started": func(e *Engine) {},
		"running": func(e *Engine) {
			e.Jump()
			for i := 0; i < 20; i++ {
				e.TickHorizontal()
				e.TickVertical()
			}
		},
		"game over": func(e *Engine) {
			e.Jump()
			e.score = 7
			e.obstacleX = 30
			e.actorY = 500
			e.EvaluateCollision()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine()
			setup(e)

			res := e.Restart()
			s := res.State

			if s.VerticalPosition != 300 || s.HorizontalPosition != 500 || s.GapTop != 200 {
				t.Errorf("positions not reset: %+v", s)
			}
			if s.Score != 0 {
				t.Errorf("Score = %d, expected 0", s.Score)
			}
			if s.State != NotStarted {
				t.Errorf("State = %v, expected %v", s.State, NotStarted)
			}
			if s.Explosion != nil {
				t.Errorf("Explosion = %+v, expected nil", s.Explosion)
			}
			if !res.Has(EventRestarted) {
				t.Error("restart should emit EventRestarted")
			}
		})
	}
}

func TestScoreIncrementsOncePerRecycle(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	e.Jump()

	recycles := 0
	for i := 0; i < 2000; i++ {
		// Keep the actor inside whatever gap comes next.
		e.actorY = e.gapTop + 10
		before := e.Snapshot()
		res := e.TickHorizontal()
		if res.State.State != Running {
			t.Fatalf("unexpected game over at tick %d", i)
		}

		crossed := before.HorizontalPosition-e.cfg.ScrollStep < -e.cfg.ObstacleWidth
		if crossed {
			recycles++
			if res.State.Score != before.Score+1 {
				t.Fatalf("tick %d: score %d -> %d on recycle", i, before.Score, res.State.Score)
			}
		} else if res.State.Score != before.Score {
			t.Fatalf("tick %d: score changed without recycle", i)
		}
	}

	if recycles == 0 {
		t.Fatal("expected at least one recycle")
	}
	if e.Score() != recycles {
		t.Errorf("Score = %d, expected %d", e.Score(), recycles)
	}
}

func TestGapTopRange(t *testing.T) {
	cfg := DefaultConfig()
	for _, v := range []float64{0, 0.1, 0.5, 0.999, 0.9999999999} {
		e := New(cfg, &seqRand{vals: []float64{v}})
		e.Jump()
		e.obstacleX = -cfg.ObstacleWidth
		e.actorY = e.gapTop + 10

		res := e.TickHorizontal()
		if !res.Has(EventScored) {
			t.Fatalf("rand %f: expected a recycle", v)
		}
		g := res.State.GapTop
		if g < 0 || g >= cfg.GapRange() {
			t.Errorf("rand %f: GapTop %f outside [0, %f)", v, g, cfg.GapRange())
		}
	}
}

func TestGenerationChangesPerRun(t *testing.T) {
	e := newTestEngine()
	if e.Generation() != 0 {
		t.Fatalf("Generation = %d before first run, expected 0", e.Generation())
	}

	e.Jump()
	first := e.Generation()
	e.Jump()
	if e.Generation() != first {
		t.Error("jumping mid-run should not change the generation")
	}

	e.Restart()
	e.Jump()
	if e.Generation() == first {
		t.Error("a new run should get a new generation")
	}
}

func TestGameOverEventCarriesExplosion(t *testing.T) {
	e := newTestEngine()
	e.Jump()
	e.obstacleX = 30
	e.actorY = 530

	res := e.TickVertical()
	if !res.Has(EventGameOver) {
		t.Fatal("expected EventGameOver")
	}
	for _, ev := range res.Events {
		if ev.Kind != EventGameOver {
			continue
		}
		if ev.Explosion == nil {
			t.Fatal("game over event without explosion")
		}
		if ev.Explosion.Top != 536 || ev.Explosion.Left != 10 {
			t.Errorf("Explosion = %+v, expected {Top:536 Left:10}", *ev.Explosion)
		}
	}
}

func TestReconfigure(t *testing.T) {
	e := newTestEngine()
	e.Jump()

	cfg := DefaultConfig()
	cfg.ActorStartY = 100
	res := e.Reconfigure(cfg)

	if res.State.VerticalPosition != 100 {
		t.Errorf("VerticalPosition = %f, expected 100", res.State.VerticalPosition)
	}
	if res.State.State != NotStarted {
		t.Errorf("State = %v, expected %v", res.State.State, NotStarted)
	}
}

func TestStartPositionClampedToArena(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		expected float64
	}{
		{"below floor", 1000, 540},
		{"above top", -50, 0},
		{"inside", 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ActorStartY = tt.startY

			e := New(cfg, &seqRand{vals: []float64{0.5}})
			if y := e.Snapshot().VerticalPosition; y != tt.expected {
				t.Errorf("New: VerticalPosition = %f, expected %f", y, tt.expected)
			}

			res := newTestEngine().Reconfigure(cfg)
			if y := res.State.VerticalPosition; y != tt.expected {
				t.Errorf("Reconfigure: VerticalPosition = %f, expected %f", y, tt.expected)
			}
		})
	}
}
