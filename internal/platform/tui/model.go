package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pgalkin/skyhop/internal/core"
	"github.com/pgalkin/skyhop/internal/game"
	"github.com/pgalkin/skyhop/internal/storage"
)

// Model is the Bubble Tea model driving a game session. It feeds held and
// edge-triggered input into the simulation at a fixed tick rate, renders the
// screen buffer, and records finished runs. Tab on the game-over screen
// opens the scoreboard.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *core.HeldKeys
	edge       core.InputFrame // Edge-triggered actions for the next tick
	gameState  core.GameState
	scoreboard *ScoreboardModel
	quitting   bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      core.NewHeldKeys(holdTicks),
		edge:      core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// While the scoreboard is open it owns all input.
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Resizing only changes the projection; the simulation keeps its
		// world units, so the session survives.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" && m.gameState.GameOver {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeldAction(action):
		m.held.Press(action)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.edge.Set(action)
		}
	default:
		m.edge.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.edge.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.held.Reset()
		m.edge.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Merge held movement with this tick's edge-triggered actions.
	in := m.held.Frame()
	for a := range m.edge.Actions {
		in.Set(a)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	// Record the run once per game over
	if m.gameState.GameOver && !m.runSaved {
		if m.store != nil {
			snap := m.game.Snapshot()
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(snap.Levels, snap.Deaths)
		}
		m.runSaved = true
	}

	m.held.Advance()
	m.edge.Clear()

	return m, tickCmd(m.config.TickRate)
}

// updateScoreboard routes messages to the scoreboard overlay.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = &sb

	if sb.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.GoingBack() {
		m.scoreboard = nil
		return m, tickCmd(m.config.TickRate)
	}

	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int) error {
	model := NewModel(g, store, cfg, holdTicks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
