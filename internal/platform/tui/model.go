package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leminhai2007/term-playroom/internal/core"
	"github.com/leminhai2007/term-playroom/internal/registry"
	"github.com/leminhai2007/term-playroom/internal/storage"
)

// GameModel is the Bubble Tea model for running a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	// The game is behind an interface, so resetting and restoring mutate
	// it even though the model is a value.
	m.game.Reset(m.config)
	m.restoreSession()

	return tickCmd(m.config.TickRate)
}

// restoreSession reloads a suspended session for games that support it.
func (m GameModel) restoreSession() {
	saver, ok := m.game.(registry.Saver)
	if !ok || m.store == nil {
		return
	}
	data, err := m.store.LoadSession(m.game.ID())
	if err != nil || data == nil {
		return
	}
	//nolint:errcheck // Corrupt session data just starts a fresh game
	saver.RestoreState(data)
}

// suspendSession persists the current session for games that support it,
// or clears the stored one when there is nothing worth resuming.
func (m GameModel) suspendSession() {
	saver, ok := m.game.(registry.Saver)
	if !ok || m.store == nil {
		return
	}
	if data, ok := saver.SaveState(); ok {
		//nolint:errcheck // Best-effort save, quitting proceeds regardless
		m.store.SaveSession(m.game.ID(), data)
		return
	}
	//nolint:errcheck // Best-effort cleanup
	m.store.DeleteSession(m.game.ID())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.suspendSession()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu on Esc/B while paused or after game over. The session
	// flow intercepts this before the quit command unwinds the program.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.suspendSession()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games recheck their minimum size on Reset. Suspend first so the
	// reset does not lose a resumable session.
	if !m.gameState.GameOver {
		m.suspendSession()
		m.game.Reset(m.config)
		m.restoreSession()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		if m.store != nil {
			//nolint:errcheck // Best-effort cleanup
			m.store.DeleteSession(m.game.ID())
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once), and drop any suspended session
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			if m.gameState.Score > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.ID(), m.gameState.Score)
			}
			//nolint:errcheck // Best-effort cleanup
			m.store.DeleteSession(m.game.ID())
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
