package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/pang"
)

// Phase is the screen currently shown.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseMatch
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseMatch:
		return "match"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running the title screen, matches and the
// game-over screen.
type Model struct {
	config   core.RuntimeConfig
	settings config.Config
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker

	screen *core.Screen
	canvas *core.PixelCanvas
	arena  *pang.Arena

	phase      Phase
	gameOverAt time.Time
	quitting   bool
	now        func() time.Time
}

// NewModel creates the model on the title screen.
// A nil logger discards all output.
func NewModel(cfg core.RuntimeConfig, settings config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The last terminal row holds the key help
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))

	m := Model{
		config:   cfg,
		settings: settings,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		holds:    NewHoldTracker(settings.Input),
		screen:   screen,
		canvas:   core.NewPixelCanvas(screen, cfg.CanvasW, cfg.CanvasH),
		phase:    PhaseTitle,
		now:      time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.drawTitle()
	return m
}

// Phase returns the screen currently shown.
func (m Model) Phase() Phase {
	return m.phase
}

// Arena returns the current match, or nil before the first one starts.
func (m Model) Arena() *pang.Arena {
	return m.arena
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	now := m.now()
	switch m.phase {
	case PhaseTitle:
		if action == core.ActionFire {
			m.startMatch(now)
		}
	case PhaseMatch:
		if action != core.ActionNone {
			m.holds.Press(action, now)
		}
	case PhaseGameOver:
		if action == core.ActionFire && now.Sub(m.gameOverAt) >= m.settings.Screens.GameOverLockout() {
			m.phase = PhaseTitle
			m.holds.Reset()
			m.drawTitle()
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The canvas keeps its pixel size, so a running match is not disturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.phase == PhaseTitle {
		m.drawTitle()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.phase == PhaseMatch {
		result := m.arena.Step(m.holds.Frame(now), now.UnixMilli())
		if result.State.GameOver {
			m.phase = PhaseGameOver
			m.gameOverAt = now
			m.holds.Reset()
			// Drawn once; the arena stops drawing after game over
			m.canvas.DrawText("Game Over!", 120, 200, 48, core.ColorGreen)
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// startMatch resets the arena for a new match.
// A zero seed picks a fresh one from the clock every match.
func (m *Model) startMatch(now time.Time) {
	seed := m.config.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	if m.arena == nil {
		m.arena = pang.NewArena(m.canvas, seed, m.logger)
	} else {
		m.arena.Reset(seed)
	}
	m.holds.Reset()
	m.phase = PhaseMatch
}

func (m *Model) drawTitle() {
	m.canvas.Clear()
	m.canvas.DrawText("PANG!", 150, 150, 48, core.ColorRed)
	m.canvas.DrawText("Press space to start", 180, 420, 18, core.ColorWhite)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	dir := filepath.Join(home, ".pang", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pang_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the title screen.
func Run(cfg core.RuntimeConfig, settings config.Config, logger *log.Logger) error {
	model := NewModel(cfg, settings, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
