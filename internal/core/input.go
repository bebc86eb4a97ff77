package core

// Action is a semantic input, abstracted from the key or pointer event that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, left click in the play area
	ActionRestart        // R, Enter, click on the restart control
	ActionHelp           // ? - toggle the full key help
	ActionQuit           // Q, Ctrl+C
	ActionCapture        // Ctrl+S - save a screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionCapture:
		return "Capture"
	default:
		return "Unknown"
	}
}
