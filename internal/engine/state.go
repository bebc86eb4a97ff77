package engine

// RunState is the top-level phase of a game.
type RunState int

const (
	NotStarted RunState = iota
	Running
	GameOver
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Explosion marks where the actor hit an obstacle.
type Explosion struct {
	Top  float64
	Left float64
}

// EventKind identifies a state change reported by an engine operation.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventScored
	EventGameOver
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventScored:
		return "scored"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is emitted by an operation that changed the run state or score.
type Event struct {
	Kind      EventKind
	Score     int
	Explosion *Explosion // Set only for EventGameOver
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	VerticalPosition   float64
	HorizontalPosition float64
	GapTop             float64
	Score              int
	State              RunState
	Explosion          *Explosion // Non-nil only when State == GameOver
	Generation         uint64
}

// StepResult is returned by every engine operation.
type StepResult struct {
	State  Snapshot
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
