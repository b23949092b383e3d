package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termo/internal/config"
	"github.com/vovakirdan/termo/internal/core"
	"github.com/vovakirdan/termo/internal/game"
)

// helpLines is the screen height reserved for the help bar.
const helpLines = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Config     config.TermoConfig
	Dict       game.Dictionary
	Recorder   game.Recorder // optional
	Logger     *log.Logger   // optional
	StartLevel int           // 0-based
	Runtime    core.RuntimeConfig
}

// Model is the Bubble Tea model for one puzzle session.
type Model struct {
	session  *game.Session
	board    *Board
	sched    *core.Scheduler
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model and starts its session on the first level.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}

	sched := core.NewScheduler()
	board := NewBoard(sched, BoardConfig{
		FlipAnimation: opts.Config.FlipAnimation(),
		ShakeDuration: opts.Config.ShakeDuration(),
		DanceDuration: opts.Config.GameRules().DanceDuration,
	})

	session, err := game.NewSession(opts.Dict, board, sched, game.Config{
		Rules:      opts.Config.GameRules(),
		Messages:   opts.Config.GameMessages(),
		Ending:     opts.Config.GameEnding(),
		Recorder:   opts.Recorder,
		Logger:     opts.Logger,
		StartLevel: opts.StartLevel,
	})
	if err != nil {
		return Model{}, err
	}
	session.Start()

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		session: session,
		board:   board,
		sched:   sched,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpLines, 1)),
		config:  rt,
		keys:    DefaultKeyMap(),
		help:    h,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
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
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := m.keys.MapKey(msg)
	if in.Action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.session.Apply(in)
	return m, nil
}

// handleMouse types the clicked on-screen key.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if in := m.board.HitTest(msg.X, msg.Y); in.Action != core.ActionNone {
		m.session.Apply(in)
	}
	return m, nil
}

// handleResize processes window resize events. The session is unaffected;
// the board recenters on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session timeline by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sched.Advance(m.config.TickInterval())
	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the puzzle session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Board returns the surface the session renders to.
func (m Model) Board() *Board {
	return m.board
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clickable on-screen keyboard
	)

	_, err = p.Run()
	return err
}
