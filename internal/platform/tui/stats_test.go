package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termo/internal/game"
	"github.com/vovakirdan/termo/internal/storage"
)

func TestStatsModelViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	run, err := store.StartRun("ana")
	require.NoError(t, err)
	require.NoError(t, run.Record(game.Event{Kind: game.EventLevelWon, Level: 1, Target: "jogar", Tries: 3}))

	m := NewStatsModel(store, 100, 30)
	view := m.View()
	assert.Contains(t, view, "Levels")
	assert.Contains(t, view, "jogar")
	assert.Contains(t, view, "runs 1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(StatsModel)
	view = m.View()
	assert.Contains(t, view, "Recent runs")
	assert.Contains(t, view, "ana")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(StatsModel)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestStatsModelWithoutStore(t *testing.T) {
	m := NewStatsModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No database available.")
}

func TestStatsModelEmptyStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewStatsModel(store, 80, 24)
	assert.Contains(t, m.View(), "No runs recorded yet.")
}
