// Package tui runs the game in a terminal with Bubble Tea.
// It owns the two game timers, maps keys and mouse events to engine actions,
// and draws engine snapshots into a core.Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// verticalTickMsg fires the gravity timer of the run identified by gen.
type verticalTickMsg struct{ gen uint64 }

// horizontalTickMsg fires the scroll timer of the run identified by gen.
type horizontalTickMsg struct{ gen uint64 }

// ConfigReloadedMsg carries new engine tuning. It is applied at the next restart.
type ConfigReloadedMsg struct {
	Config engine.Config
}

func verticalTick(period time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return verticalTickMsg{gen: gen}
	})
}

func horizontalTick(period time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg {
		return horizontalTickMsg{gen: gen}
	})
}

// timers tracks which tick chain is in flight for each timer.
// A zero generation means no chain is pending; runs start at generation 1.
type timers struct {
	vertical   uint64
	horizontal uint64
}

// schedule starts any chain the engine needs that is not already pending.
func (t *timers) schedule(eng *engine.Engine) tea.Cmd {
	cfg := eng.Config()
	gen := eng.Generation()

	var cmds []tea.Cmd
	if eng.VerticalActive() && t.vertical != gen {
		t.vertical = gen
		cmds = append(cmds, verticalTick(cfg.VerticalPeriod, gen))
	}
	if eng.HorizontalActive() && t.horizontal != gen {
		t.horizontal = gen
		cmds = append(cmds, horizontalTick(cfg.HorizontalPeriod, gen))
	}
	return tea.Batch(cmds...)
}
