package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codebrk/codebreak/internal/breakout"
	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/core"
	"github.com/codebrk/codebreak/internal/storage"
)

// statusRows is the number of terminal rows reserved below the game
// area for the tooltip line and the help bar.
const statusRows = 2

var (
	tooltipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	newHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	store      *storage.Store
	gameCfg    config.Config
	runtime    core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	sourceName string
	inputFrame core.InputFrame
	gameState  core.GameState
	tooltip    string
	newHigh    bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model driving the given game.
// sourceName labels persisted scores (a file path or "placeholder").
func NewModel(game *breakout.Game, store *storage.Store, sourceName string, gameCfg config.Config, rt core.RuntimeConfig) Model {
	gameRows := gameArea(rt.ScreenH)
	return Model{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, gameRows),
		store:      store,
		gameCfg:    gameCfg,
		runtime:    rt,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		sourceName: sourceName,
		inputFrame: core.NewInputFrame(),
	}
}

// gameArea returns the number of rows left for the game after the
// status lines.
func gameArea(screenH int) int {
	return core.Max(10, screenH-statusRows)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.runtime.ScreenW,
		ScreenH:  gameArea(m.runtime.ScreenH),
		TickRate: m.runtime.TickRate,
	})
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionRestart:
		// Restart only applies after the session ended.
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse maps hover position to a brick tooltip. Mouse cells are
// projected into the game's pixel space through the configured font
// cell size, probing the center of the hovered cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cw := m.gameCfg.Font.CharWidth
	ch := m.gameCfg.Font.CharHeight
	px := msg.X*cw + cw/2
	py := msg.Y*ch + ch/2
	m.tooltip = m.game.Tooltip(px, py)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width

	gameRows := gameArea(msg.Height)
	m.screen.Resize(msg.Width, gameRows)

	// Rebuilds the brick field for the new viewport; score and lives
	// carry over.
	m.game.Resize(core.RuntimeConfig{
		ScreenW:  msg.Width,
		ScreenH:  gameRows,
		TickRate: m.runtime.TickRate,
	})

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	if m.gameState.GameOver && !result.State.GameOver {
		// Session restarted.
		m.scoreSaved = false
		m.newHigh = false
	}
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.persistScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// persistScore records the finished session, best-effort.
func (m *Model) persistScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	prev, err := m.store.HighScore()
	if err == nil && m.gameState.Score > prev {
		m.newHigh = true
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.sourceName, m.gameState.Score, m.game.Destroyed())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".codebreak", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("codebreak_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// statusLine returns the single-row line under the game area: the
// hovered brick's full source line, or a high-score note after a
// winning session.
func (m Model) statusLine() string {
	if m.newHigh && m.gameState.GameOver {
		return newHighStyle.Render("New high score!")
	}
	if m.tooltip == "" {
		return ""
	}
	line := m.tooltip
	if len(line) > m.runtime.ScreenW {
		line = line[:m.runtime.ScreenW]
	}
	return tooltipStyle.Render(line)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *breakout.Game, store *storage.Store, sourceName string, gameCfg config.Config, rt core.RuntimeConfig) error {
	model := NewModel(game, store, sourceName, gameCfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Hover tooltips
	)

	_, err := p.Run()
	return err
}
