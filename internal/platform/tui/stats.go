package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termo/internal/storage"
)

// Stats layout constants
const (
	maxRuns = 100 // Max runs to load
)

// StatsView selects what the stats table shows.
type StatsView int

const (
	StatsLevels StatsView = iota
	StatsRuns
)

// String returns the tab title of the view.
func (v StatsView) String() string {
	if v == StatsRuns {
		return "Recent runs"
	}
	return "Levels"
}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextView, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the run statistics screen.
type StatsModel struct {
	store    *storage.Store
	view     StatsView
	totals   storage.Totals
	levels   []storage.LevelStats
	runs     []storage.RunSummary
	loadErr  error
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a stats model and loads the data.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.Width = width

	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads totals, level stats and recent runs from the store.
func (m *StatsModel) load() {
	if m.store == nil {
		return
	}
	var err error
	if m.totals, err = m.store.Totals(); err != nil {
		m.loadErr = err
		return
	}
	if m.levels, err = m.store.LevelStats(); err != nil {
		m.loadErr = err
		return
	}
	if m.runs, err = m.store.RecentRuns(maxRuns); err != nil {
		m.loadErr = err
	}
}

// createTable creates a new table with the columns of the current view.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	switch m.view {
	case StatsRuns:
		columns = []table.Column{
			{Title: "Player", Width: 14},
			{Title: "Started", Width: 14},
			{Title: "Best", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Losses", Width: 7},
			{Title: "Done", Width: 5},
		}
	default:
		columns = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Word", Width: 10},
			{Title: "Wins", Width: 6},
			{Title: "Losses", Width: 7},
			{Title: "Avg tries", Width: 10},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, totals and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current view.
func (m *StatsModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case StatsRuns:
		for _, r := range m.runs {
			done := ""
			if r.Completed {
				done = "yes"
			}
			rows = append(rows, table.Row{
				r.Player,
				r.StartedAt.Format("Jan 02 15:04"),
				fmt.Sprintf("%d", r.BestLevel),
				fmt.Sprintf("%d", r.Wins),
				fmt.Sprintf("%d", r.Losses),
				done,
			})
		}
	default:
		for _, l := range m.levels {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", l.Level),
				l.Target,
				fmt.Sprintf("%d", l.Wins),
				fmt.Sprintf("%d", l.Losses),
				fmt.Sprintf("%.1f", l.AvgTries),
			})
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % 2
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("TERMO STATS - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("runs %d  completed %d  levels won %d  lost %d",
		m.totals.Runs, m.totals.Completed, m.totals.Wins, m.totals.Losses)
	b.WriteString(centerText(totals, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanation when it is empty.
func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No database available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load stats:\n" + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to fill this table!")
	}

	return m.table.View()
}

// centerText pads text so it appears centered in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunStats runs the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
