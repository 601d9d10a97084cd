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
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	palette    *Palette
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	difficulty string
	menu       bool // back-to-menu allowed
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      uuid.UUID
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithModelLogger sets the logger used for save failures and run events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDifficulty records the difficulty preset name with saved runs.
func WithDifficulty(name string) ModelOption {
	return func(m *Model) { m.difficulty = name }
}

// WithRenderer binds the colors to a lipgloss renderer, e.g. one per SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) { m.palette = NewPalette(r) }
}

// WithBackToMenu lets the player leave a paused or finished game with Back.
// Leaving ends a standalone program; a SessionModel shows its menu instead.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.menu = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		keys:       DefaultGameKeyMap(),
		help:       h,
		logger:     log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      uuid.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.palette == nil {
		m.palette = NewPalette(nil)
	}
	m.keys.Back.SetEnabled(m.menu)
	return m
}

func gameHeight(h int) int {
	return max(h-helpRows, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	rt := m.config
	rt.ScreenH = gameHeight(rt.ScreenH)
	m.game.Reset(rt)
	m.logger.Debug("run started", "game", m.game.ID(), "run", m.runID, "seed", rt.Seed)

	// Start the tick loop
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its playfield to the screen, so the run goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game to the tick's time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	m.inputFrame.Time = now
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Leaving game over starts a new run.
	if wasOver && !m.gameState.GameOver {
		m.runID = uuid.New()
		m.scoreSaved = false
		m.logger.Debug("run started", "game", m.game.ID(), "run", m.runID)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Runs that scored nothing and lost are skipped.
func (m Model) saveRun() {
	st := m.gameState
	m.logger.Info("run finished", "game", m.game.ID(), "run", m.runID, "score", st.Score, "won", st.Won)
	if m.store == nil || (st.Score == 0 && !st.Won) {
		return
	}
	run := storage.Run{
		RunID:      m.runID,
		GameID:     m.game.ID(),
		Score:      st.Score,
		Won:        st.Won,
		Difficulty: m.difficulty,
	}
	if _, err := m.store.SaveScore(run); err != nil {
		m.logger.Error("cannot save score", "run", m.runID, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the id of the current run.
func (m Model) RunID() uuid.UUID {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
