package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termo/internal/core"
	"github.com/vovakirdan/termo/internal/game"
)

func newTestBoard() (*Board, *core.Scheduler) {
	sched := core.NewScheduler()
	b := NewBoard(sched, BoardConfig{})
	b.SetupGrid(5, 9)
	return b, sched
}

func TestBoardFlipCallsDoneOnce(t *testing.T) {
	b, sched := newTestBoard()
	calls := 0

	b.Flip(3, func() { calls++ })
	assert.True(t, b.Flipping(3))

	sched.Advance(249 * time.Millisecond)
	assert.Equal(t, 0, calls)
	assert.True(t, b.Flipping(3))

	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, b.Flipping(3))

	sched.RunAll(10)
	assert.Equal(t, 1, calls)
}

func TestBoardFlipAcrossSetupGrid(t *testing.T) {
	b, sched := newTestBoard()
	called := false
	b.Flip(0, func() { called = true })

	b.SetupGrid(7, 7)
	sched.RunAll(10)

	assert.True(t, called, "done must still be delivered")
	assert.False(t, b.Flipping(0), "new grid tiles are untouched")
}

func TestBoardAlerts(t *testing.T) {
	b, sched := newTestBoard()

	b.ShowMessage("one", time.Second)
	b.ShowMessage("two", 2*time.Second)
	assert.Equal(t, []string{"two", "one"}, b.Alerts())

	sched.Advance(time.Second)
	assert.Equal(t, []string{"two"}, b.Alerts())

	sched.Advance(time.Second)
	assert.Empty(t, b.Alerts())
}

func TestBoardIndefiniteAlertOutlivesNewerOnes(t *testing.T) {
	b, sched := newTestBoard()
	s := core.NewScreen(40, 20)

	b.ShowMessage("sticky", 0)
	b.ShowMessage("a", time.Second)
	b.ShowMessage("b", time.Second)
	assert.Equal(t, []string{"b", "a", "sticky"}, b.Alerts())

	// Only the newest alerts fit above the grid
	b.Render(s)
	assert.Contains(t, s.Row(1), " b ")
	assert.Contains(t, s.Row(2), " a ")
	assert.NotContains(t, s.Row(gridTop-1), "sticky")

	sched.RunAll(10)
	assert.Equal(t, []string{"sticky"}, b.Alerts())
	b.Render(s)
	assert.Contains(t, s.Row(1), "sticky")
}

func TestBoardIndefiniteAlertStays(t *testing.T) {
	b, sched := newTestBoard()
	b.ShowMessage("sticky", 0)
	sched.Advance(time.Hour)
	assert.Equal(t, []string{"sticky"}, b.Alerts())
}

func TestBoardShakeSettles(t *testing.T) {
	b, sched := newTestBoard()
	b.Shake([]int{0, 1})

	sched.Advance(0)
	assert.Equal(t, -1, b.tiles[0].shake)
	assert.Equal(t, 0, b.tiles[2].shake)

	sched.RunAll(10)
	assert.Equal(t, 0, b.tiles[0].shake)
	assert.Equal(t, 0, b.tiles[1].shake)
}

func TestBoardDanceFlashes(t *testing.T) {
	b, sched := newTestBoard()
	b.Dance([]int{2})
	assert.True(t, b.tiles[2].dancing)

	sched.Advance(500 * time.Millisecond)
	assert.False(t, b.tiles[2].dancing)
}

func TestBoardRender(t *testing.T) {
	b, _ := newTestBoard()
	b.SetHeader("tahigna 1/10")
	b.UpdateTile(0, game.Tile{Letter: 'j', State: game.TileCorrect})
	b.UpdateTile(1, game.Tile{Letter: 'o', State: game.TileActive})
	b.ShowMessage("Essa palavra não é aceita", 0)

	screen := core.NewScreen(60, 22)
	b.Render(screen)

	assert.Contains(t, screen.Row(0), "tahigna 1/10")
	assert.Contains(t, screen.Row(1), "Essa palavra não é aceita")
	assert.Contains(t, screen.Row(gridTop), " J   O  ")

	correct := strings.Index(screen.Row(gridTop), "J")
	require.GreaterOrEqual(t, correct, 0)
	assert.Equal(t, correctStyle, screen.GetCell(correct, gridTop).Style)

	kbTop := gridTop + 9 + 1
	assert.Contains(t, screen.Row(kbTop), " Q   W   E ")
	assert.Contains(t, screen.Row(kbTop+2), "ENTER")
	assert.Contains(t, screen.Row(kbTop+2), "DEL")
}

func TestBoardKeyColors(t *testing.T) {
	b, _ := newTestBoard()
	b.UpdateKey('q', game.KeyCorrect)
	screen := core.NewScreen(60, 22)
	b.Render(screen)

	kbTop := gridTop + 9 + 1
	x := strings.Index(screen.Row(kbTop), "Q")
	require.GreaterOrEqual(t, x, 0)
	assert.Equal(t, correctStyle, screen.GetCell(x, kbTop).Style)
	assert.Equal(t, game.KeyCorrect, b.Key('q'))

	b.ResetKeys()
	assert.Equal(t, game.KeyNormal, b.Key('q'))
}

func TestBoardHitTest(t *testing.T) {
	b, _ := newTestBoard()
	screen := core.NewScreen(60, 22)
	b.Render(screen)

	kbTop := gridTop + 9 + 1
	x := strings.Index(screen.Row(kbTop), "Q")
	assert.Equal(t, core.LetterIntent('q'), b.HitTest(x, kbTop))
	assert.Equal(t, core.LetterIntent('q'), b.HitTest(x-1, kbTop), "the padding is part of the key")

	enter := strings.Index(screen.Row(kbTop+2), "ENTER")
	assert.Equal(t, core.SubmitIntent(), b.HitTest(enter, kbTop+2))

	del := strings.Index(screen.Row(kbTop+2), "DEL")
	assert.Equal(t, core.DeleteIntent(), b.HitTest(del, kbTop+2))

	assert.Equal(t, core.Intent{}, b.HitTest(0, 0))
}

func TestBoardHideKeyboard(t *testing.T) {
	b, _ := newTestBoard()
	screen := core.NewScreen(60, 22)
	b.Render(screen)

	b.HideKeyboard()
	b.Render(screen)

	assert.True(t, b.KeyboardHidden())
	kbTop := gridTop + 9 + 1
	assert.Empty(t, strings.TrimSpace(screen.Row(kbTop)))
	x := strings.Index(screen.Row(kbTop), "Q")
	assert.Equal(t, -1, x)
	assert.Equal(t, core.Intent{}, b.HitTest(30, kbTop))
}
