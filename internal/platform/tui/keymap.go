package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termo/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Letters are not bindings; any single a-z rune is typed into the row.
type KeyMap struct {
	Submit key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("bksp", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to a session intent.
// Help is not an intent; callers match it first.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Intent{Action: core.ActionQuit}
	case key.Matches(msg, k.Submit):
		return core.SubmitIntent()
	case key.Matches(msg, k.Delete):
		return core.DeleteIntent()
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return core.LetterIntent(msg.Runes[0])
	}
	return core.Intent{}
}
