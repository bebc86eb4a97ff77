package engine

import (
	"context"
	"time"
)

// Action is an input request delivered to a running Loop.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionRestart
)

// Ticker is a stoppable periodic channel, as provided by time.Ticker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Tests substitute a manual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// SystemClock is a Clock backed by time.NewTicker.
type SystemClock struct{}

// NewTicker starts a real ticker with the given period.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Handler observes every step taken by a Loop. The returned action is applied
// immediately, before any further tick or queued input.
type Handler func(StepResult) Action

// Loop drives an Engine from two independent tickers on a single goroutine.
// Ticks, queued actions and handler-issued actions never interleave.
type Loop struct {
	eng     *Engine
	clock   Clock
	actions chan Action
	handler Handler
}

// NewLoop creates a loop around eng. A nil clock means SystemClock.
func NewLoop(eng *Engine, clock Clock, handler Handler) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	if handler == nil {
		handler = func(StepResult) Action { return ActionNone }
	}
	return &Loop{
		eng:     eng,
		clock:   clock,
		actions: make(chan Action, 8),
		handler: handler,
	}
}

// Send queues an action for the loop goroutine.
func (l *Loop) Send(ctx context.Context, a Action) error {
	select {
	case l.actions <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// timer is one of the two periodic tasks. It is bound to the generation that
// started it so a new run always gets fresh tickers.
type timer struct {
	period time.Duration
	ticker Ticker
	gen    uint64
}

func (t *timer) sync(clock Clock, active bool, gen uint64) <-chan time.Time {
	if t.ticker != nil && (!active || t.gen != gen) {
		t.ticker.Stop()
		t.ticker = nil
	}
	if !active {
		return nil
	}
	if t.ticker == nil {
		t.ticker = clock.NewTicker(t.period)
		t.gen = gen
	}
	return t.ticker.C()
}

func (t *timer) stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

// Run blocks until ctx is canceled, returning ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	cfg := l.eng.Config()
	vertical := &timer{period: cfg.VerticalPeriod}
	horizontal := &timer{period: cfg.HorizontalPeriod}
	defer vertical.stop()
	defer horizontal.stop()

	for {
		gen := l.eng.Generation()
		vc := vertical.sync(l.clock, l.eng.VerticalActive(), gen)
		hc := horizontal.sync(l.clock, l.eng.HorizontalActive(), gen)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-vc:
			l.step(l.eng.TickVertical())
		case <-hc:
			l.step(l.eng.TickHorizontal())
		case a := <-l.actions:
			if res, ok := l.do(a); ok {
				l.step(res)
			}
		}
	}
}

// do applies a single action, reporting false for ActionNone.
func (l *Loop) do(a Action) (StepResult, bool) {
	switch a {
	case ActionJump:
		return l.eng.Jump(), true
	case ActionRestart:
		return l.eng.Restart(), true
	default:
		return StepResult{}, false
	}
}

// maxChain bounds how many actions a handler may issue in response to one step.
const maxChain = 4

// step hands a result to the handler and applies whatever it asks for.
// The handler also observes the results of its own actions.
func (l *Loop) step(res StepResult) {
	for range maxChain {
		next, ok := l.do(l.handler(res))
		if !ok {
			return
		}
		res = next
	}
}
