package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/logging"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running Flappy Dragon.
type Model struct {
	state    *dragon.State
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Key  // Last game key pressed since the previous frame
	lastTick time.Time // Time of the previous frame, zero before the first
	lastMode dragon.Mode
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(state *dragon.State, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		state:    state,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		lastMode: state.Mode(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The grid has a fixed size; only the help footer follows the window
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	// The game polls a single key per frame; the latest press wins
	if k := m.keys.MapKey(msg); k != core.KeyNone {
		m.pending = k
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	frame := core.NewFrame(m.screen, elapsed, m.pending)
	m.state.Tick(frame)
	m.pending = core.KeyNone

	if mode := m.state.Mode(); mode != m.lastMode {
		m.logger.Info("mode changed", "from", m.lastMode, "to", mode, "score", m.state.Score())
		m.lastMode = mode
	}

	if frame.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".dragon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dragon_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the last frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the game quits or ctx
// is cancelled.
func Run(ctx context.Context, state *dragon.State, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(state, cfg, logger)
	model.logger.Info("session started", "backend", "tui", "fps", cfg.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.logger.Info("session ended", "mode", state.Mode(), "score", state.Score())

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
