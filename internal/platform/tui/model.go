package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/metrics"
)

// Options configures a Model. Zero values are usable.
type Options struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger      // nil discards logs
	Metrics       *metrics.Metrics // nil records nothing
	ScreenshotDir string           // Default: ~/.tui-flappy/screenshots
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for one game session.
type Model struct {
	eng     *engine.Engine
	pending *engine.Config // Applied at the next restart
	timers  timers

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	width  int
	height int

	logger        *log.Logger
	metrics       *metrics.Metrics
	screenshotDir string
	status        string
	quitting      bool
}

// NewModel creates a model around eng.
func NewModel(eng *engine.Engine, opts Options) Model {
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime = core.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".tui-flappy", "screenshots")
	}

	m := Model{
		eng:           eng,
		screen:        core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		width:         opts.Runtime.ScreenW,
		height:        opts.Runtime.ScreenH,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		screenshotDir: opts.ScreenshotDir,
	}
	m.resizeScreen()
	return m
}

// Init does not start any timer; the first jump does.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tui-flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeScreen()
		return m, nil

	case verticalTickMsg:
		if msg.gen != m.timers.vertical {
			return m, nil
		}
		m.timers.vertical = 0
		if msg.gen == m.eng.Generation() && m.eng.VerticalActive() {
			m.metrics.Tick(metrics.TimerVertical)
			m.observe(m.eng.TickVertical())
		}
		return m, m.timers.schedule(m.eng)

	case horizontalTickMsg:
		if msg.gen != m.timers.horizontal {
			return m, nil
		}
		m.timers.horizontal = 0
		if msg.gen == m.eng.Generation() && m.eng.HorizontalActive() {
			m.metrics.Tick(metrics.TimerHorizontal)
			m.observe(m.eng.TickHorizontal())
		}
		return m, m.timers.schedule(m.eng)

	case ConfigReloadedMsg:
		return m.handleReload(msg.Config)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action != core.ActionNone {
		m.logger.Debug("input", "action", action.String(), "key", msg.String())
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		return m.jump()
	case core.ActionRestart:
		if m.eng.State() == engine.GameOver {
			return m.restart()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
	case core.ActionCapture:
		m.saveScreenshot()
	}
	return m, nil
}

// handleMouse treats a left click in the arena as a jump, or as a restart when
// it lands on the restart control of the game-over panel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	layout := Draw(m.screen, m.eng.Snapshot(), m.eng.Config())
	if m.eng.State() == engine.GameOver {
		if layout.Restart.Contains(msg.X, msg.Y) {
			m.logger.Debug("input", "action", core.ActionRestart.String(), "x", msg.X, "y", msg.Y)
			return m.restart()
		}
		return m, nil
	}

	if !layout.Arena.Origin.Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.logger.Debug("input", "action", core.ActionJump.String(), "x", msg.X, "y", msg.Y)
	return m.jump()
}

func (m Model) jump() (tea.Model, tea.Cmd) {
	m.observe(m.eng.Jump())
	return m, m.timers.schedule(m.eng)
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.pending != nil {
		m.observe(m.eng.Reconfigure(*m.pending))
		m.logger.Info("applied reloaded config")
		m.pending = nil
	} else {
		m.observe(m.eng.Restart())
	}
	m.status = ""
	return m, m.timers.schedule(m.eng)
}

// handleReload applies new tuning right away on an idle game, otherwise keeps
// it until the player restarts.
func (m Model) handleReload(cfg engine.Config) (tea.Model, tea.Cmd) {
	if m.eng.State() == engine.NotStarted {
		m.observe(m.eng.Reconfigure(cfg))
		m.logger.Info("applied reloaded config")
		return m, nil
	}
	m.pending = &cfg
	m.logger.Info("config reloaded, applying at next restart")
	return m, nil
}

func (m Model) observe(res engine.StepResult) {
	m.metrics.Observe(res)
	for _, ev := range res.Events {
		switch ev.Kind {
		case engine.EventStarted:
			m.logger.Debug("run started", "generation", res.State.Generation)
		case engine.EventScored:
			m.logger.Debug("obstacle passed", "score", ev.Score, "gap_top", res.State.GapTop)
		case engine.EventGameOver:
			m.logger.Info("game over", "score", ev.Score,
				"explosion_top", ev.Explosion.Top, "explosion_left", ev.Explosion.Left)
		case engine.EventRestarted:
			m.logger.Debug("restarted")
		}
	}
}

// resizeScreen fits the screen buffer above the help line.
func (m *Model) resizeScreen() {
	m.help.Width = m.width
	helpH := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, core.Max(m.height-helpH, 0))
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.eng.Snapshot(), m.eng.Config())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		m.status = "screenshot failed"
		return
	}

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.eng.Snapshot(), m.eng.Config())
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// NewProgram wraps a model in a full-screen program with mouse support.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(m, opts...)
}
