package tui

import (
	"time"
	"unicode"

	"github.com/samber/lo"

	"github.com/vovakirdan/termo/internal/core"
	"github.com/vovakirdan/termo/internal/game"
)

// Board layout constants
const (
	tileWidth  = 3 // " A "
	tileStride = tileWidth + 1
	keyWidth   = 3
	keyStride  = keyWidth + 1
	maxAlerts  = 2 // alert rows drawn above the grid
	gridTop    = 2 + maxAlerts // header, alerts, blank line
)

// keyboardRows is the on-screen keyboard layout. ENTER and DEL frame the
// last row.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

const (
	enterLabel = " ENTER "
	delLabel   = " DEL "
)

// Tile and key styles.
var (
	headerStyle     = core.Style{Fg: core.ColorBrightWhite}
	alertStyle      = core.Style{Fg: core.ColorBlack, Bg: core.ColorBrightWhite}
	emptyTileStyle  = core.Style{Fg: core.ColorDarkGray}
	activeTileStyle = core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorDarkGray}
	flipTileStyle   = core.Style{Bg: core.ColorGray}
	danceTileStyle  = core.Style{Fg: core.ColorBlack, Bg: core.ColorBrightGreen}
	correctStyle    = core.Style{Fg: core.ColorBlack, Bg: core.ColorGreen}
	wrongLocStyle   = core.Style{Fg: core.ColorBlack, Bg: core.ColorYellow}
	wrongTileStyle  = core.Style{Fg: core.ColorWhite, Bg: core.ColorDarkGray}
	normalKeyStyle  = core.Style{Fg: core.ColorBlack, Bg: core.ColorWhite}
	wrongKeyStyle   = core.Style{Fg: core.ColorGray, Bg: core.ColorBlack}
	commandKeyStyle = core.Style{Fg: core.ColorBlack, Bg: core.ColorGray}
)

// shakeOffsets are the horizontal tile offsets of one shake.
var shakeOffsets = []int{-1, 1, -1, 1, 0}

// BoardConfig sets how long the on-screen effects last.
type BoardConfig struct {
	FlipAnimation time.Duration
	ShakeDuration time.Duration
	DanceDuration time.Duration
}

// Board is the terminal rendition of the puzzle. It implements game.Surface
// and plays its effects on the same scheduler the session uses.
type Board struct {
	sched *core.Scheduler
	cfg   BoardConfig
	gen   uint64 // bumped by SetupGrid

	width, rows    int
	tiles          []tileView
	header         string
	keys           map[rune]game.KeyState
	keyboardHidden bool

	alerts    []alert // newest first, only the first maxAlerts are drawn
	nextAlert int

	hits []keyHit // clickable keys of the last render
}

type tileView struct {
	tile     game.Tile
	flipping bool
	dancing  bool
	shake    int // horizontal offset in cells
}

type alert struct {
	id   int
	text string
}

type keyHit struct {
	rect   core.Rect
	intent core.Intent
}

var _ game.Surface = (*Board)(nil)

// NewBoard creates an empty board. Zero durations in cfg use the defaults.
func NewBoard(sched *core.Scheduler, cfg BoardConfig) *Board {
	if cfg.FlipAnimation <= 0 {
		cfg.FlipAnimation = 250 * time.Millisecond
	}
	if cfg.ShakeDuration <= 0 {
		cfg.ShakeDuration = 250 * time.Millisecond
	}
	if cfg.DanceDuration <= 0 {
		cfg.DanceDuration = 500 * time.Millisecond
	}
	return &Board{
		sched: sched,
		cfg:   cfg,
		keys:  make(map[rune]game.KeyState),
	}
}

// SetupGrid replaces the grid with width*rows empty tiles.
func (b *Board) SetupGrid(width, rows int) {
	b.gen++
	b.width, b.rows = width, rows
	b.tiles = make([]tileView, width*rows)
}

// SetHeader sets the text above the grid.
func (b *Board) SetHeader(text string) {
	b.header = text
}

// UpdateTile shows a new letter or state on a tile.
func (b *Board) UpdateTile(index int, t game.Tile) {
	if index < 0 || index >= len(b.tiles) {
		return
	}
	b.tiles[index].tile = t
}

// UpdateKey colors a keyboard key.
func (b *Board) UpdateKey(letter rune, s game.KeyState) {
	b.keys[letter] = s
}

// ResetKeys returns every key to its normal color.
func (b *Board) ResetKeys() {
	b.keys = make(map[rune]game.KeyState)
}

// Flip blanks the tile for the flip animation, then calls done.
func (b *Board) Flip(index int, done func()) {
	gen := b.gen
	if index >= 0 && index < len(b.tiles) {
		b.tiles[index].flipping = true
	}
	b.sched.After(b.cfg.FlipAnimation, func() {
		if gen == b.gen && index >= 0 && index < len(b.tiles) {
			b.tiles[index].flipping = false
		}
		if done != nil {
			done()
		}
	})
}

// Shake jiggles the tiles sideways.
func (b *Board) Shake(indices []int) {
	gen := b.gen
	step := b.cfg.ShakeDuration / time.Duration(len(shakeOffsets))
	for i, off := range shakeOffsets {
		b.sched.After(time.Duration(i)*step, func() {
			if gen != b.gen {
				return
			}
			for _, idx := range indices {
				if idx >= 0 && idx < len(b.tiles) {
					b.tiles[idx].shake = off
				}
			}
		})
	}
}

// Dance flashes the tiles.
func (b *Board) Dance(indices []int) {
	gen := b.gen
	for _, idx := range indices {
		if idx >= 0 && idx < len(b.tiles) {
			b.tiles[idx].dancing = true
		}
	}
	b.sched.After(b.cfg.DanceDuration, func() {
		if gen != b.gen {
			return
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(b.tiles) {
				b.tiles[idx].dancing = false
			}
		}
	})
}

// ShowMessage pushes an alert on top of the stack. A zero duration keeps
// it until the board is discarded; newer alerts only hide it while they last.
func (b *Board) ShowMessage(text string, d time.Duration) {
	b.nextAlert++
	id := b.nextAlert
	b.alerts = append([]alert{{id: id, text: text}}, b.alerts...)
	if d > 0 {
		b.sched.After(d, func() {
			b.alerts = lo.Reject(b.alerts, func(a alert, _ int) bool { return a.id == id })
		})
	}
}

// HideKeyboard removes the on-screen keyboard.
func (b *Board) HideKeyboard() {
	b.keyboardHidden = true
	b.hits = nil
}

// Header returns the text above the grid.
func (b *Board) Header() string { return b.header }

// GridSize returns the grid width and number of rows.
func (b *Board) GridSize() (width, rows int) { return b.width, b.rows }

// Tile returns the tile at index.
func (b *Board) Tile(index int) game.Tile { return b.tiles[index].tile }

// Flipping reports whether the tile at index is mid-flip.
func (b *Board) Flipping(index int) bool { return b.tiles[index].flipping }

// Key returns the color state of a keyboard key.
func (b *Board) Key(letter rune) game.KeyState { return b.keys[letter] }

// KeyboardHidden reports whether the keyboard was removed.
func (b *Board) KeyboardHidden() bool { return b.keyboardHidden }

// Alerts returns the alert stack, newest first.
func (b *Board) Alerts() []string {
	return lo.Map(b.alerts, func(a alert, _ int) string { return a.text })
}

// HitTest returns the intent of the keyboard key at (x, y) in the last
// render, or an ActionNone intent.
func (b *Board) HitTest(x, y int) core.Intent {
	for _, h := range b.hits {
		if h.rect.Contains(x, y) {
			return h.intent
		}
	}
	return core.Intent{}
}

// Render draws the board onto the screen.
func (b *Board) Render(s *core.Screen) {
	s.Clear()
	s.DrawTextCentered(0, b.header, headerStyle)

	for i, a := range b.alerts[:min(len(b.alerts), maxAlerts)] {
		s.DrawTextCentered(1+i, " "+a.text+" ", alertStyle)
	}

	gridW := b.width*tileStride - 1
	x0 := (s.Width() - gridW) / 2
	for r := range b.rows {
		for c := range b.width {
			tv := b.tiles[r*b.width+c]
			b.drawTile(s, x0+c*tileStride+tv.shake, gridTop+r, tv)
		}
	}

	b.hits = b.hits[:0]
	if !b.keyboardHidden {
		b.drawKeyboard(s, gridTop+b.rows+1)
	}
}

func (b *Board) drawTile(s *core.Screen, x, y int, tv tileView) {
	letter := ' '
	if tv.tile.Letter != 0 {
		letter = unicode.ToUpper(tv.tile.Letter)
	}

	var st core.Style
	switch {
	case tv.flipping:
		st, letter = flipTileStyle, ' '
	case tv.dancing:
		st = danceTileStyle
	default:
		st = tileStyle(tv.tile.State)
	}
	if tv.tile.State == game.TileEmpty && !tv.flipping {
		letter = '·'
	}

	s.DrawTextStyled(x, y, string([]rune{' ', letter, ' '}), st)
}

func tileStyle(state game.TileState) core.Style {
	switch state {
	case game.TileActive:
		return activeTileStyle
	case game.TileCorrect:
		return correctStyle
	case game.TileWrongLocation:
		return wrongLocStyle
	case game.TileWrong:
		return wrongTileStyle
	default:
		return emptyTileStyle
	}
}

func keyStyle(state game.KeyState) core.Style {
	switch state {
	case game.KeyCorrect:
		return correctStyle
	case game.KeyWrongLocation:
		return wrongLocStyle
	case game.KeyWrong:
		return wrongKeyStyle
	default:
		return normalKeyStyle
	}
}

// drawKeyboard draws the three key rows starting at y and records their
// hit areas.
func (b *Board) drawKeyboard(s *core.Screen, y int) {
	for row, letters := range keyboardRows {
		rowW := len(letters)*keyStride - 1
		last := row == len(keyboardRows)-1
		if last {
			rowW += len(enterLabel) + len(delLabel) + 2
		}

		x := (s.Width() - rowW) / 2
		if last {
			x = b.drawKey(s, x, y+row, enterLabel, commandKeyStyle, core.SubmitIntent())
		}
		for _, r := range letters {
			label := string([]rune{' ', unicode.ToUpper(r), ' '})
			x = b.drawKey(s, x, y+row, label, keyStyle(b.keys[r]), core.LetterIntent(r))
		}
		if last {
			b.drawKey(s, x, y+row, delLabel, commandKeyStyle, core.DeleteIntent())
		}
	}
}

// drawKey draws one key and returns the x position after it and its gap.
func (b *Board) drawKey(s *core.Screen, x, y int, label string, st core.Style, in core.Intent) int {
	w := len([]rune(label))
	s.DrawTextStyled(x, y, label, st)
	b.hits = append(b.hits, keyHit{rect: core.NewRect(x, y, w, 1), intent: in})
	return x + w + 1
}
