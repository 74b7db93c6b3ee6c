package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pgalkin/skyhop/internal/core"
	"github.com/pgalkin/skyhop/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 44
	maxRuns       = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store     *storage.Store
	runs      []storage.RunEntry
	stats     *storage.RunStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over the recorded runs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.buildTable()
	return m
}

// load fetches runs and stats from storage.
func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	if runs, err := m.store.TopRuns(maxRuns); err == nil {
		m.runs = runs
	}
	if stats, err := m.store.Stats(); err == nil {
		m.stats = stats
	}
}

// buildTable constructs the bubbles table from the loaded runs.
func (m *ScoreboardModel) buildTable() {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Levels", Width: 8},
		{Title: "Deaths", Width: 8},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Levels),
			fmt.Sprintf("%d", r.Deaths),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := core.Max(3, m.height-6)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m.table = t
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Sky Hop - Best Runs")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = "No runs recorded yet."
	}

	summary := ""
	if m.stats != nil && m.stats.RunsCount > 0 {
		summary = fmt.Sprintf("Runs: %d   Best: %d levels   Avg: %.1f",
			m.stats.RunsCount, m.stats.BestLevels, m.stats.AvgLevels)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		summary,
		m.help.View(m.keys),
	)

	width := core.Max(tableMinWidth, m.width)
	return lipgloss.NewStyle().Width(width).Render(content)
}

// Quitting returns true if the user requested to quit entirely.
func (m ScoreboardModel) Quitting() bool {
	return m.quitting
}

// GoingBack returns true if the user requested to go back to the game.
func (m ScoreboardModel) GoingBack() bool {
	return m.goingBack
}
