package game

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termo/internal/core"
)

// Phase is the outcome state machine of a session.
type Phase int

const (
	PhasePlaying    Phase = iota // typing into the active row
	PhaseEvaluating              // tiles of a submitted row are being revealed
	PhaseWon                     // waiting to advance to the next level
	PhaseLost                    // waiting to reset to the first level
	PhaseEnded                   // all levels done, ending shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// SubmitResult tells what SubmitGuess did.
type SubmitResult int

const (
	SubmitIgnored     SubmitResult = iota // input suspended
	SubmitWrongLength                     // row not full, notice shown
	SubmitNotAccepted                     // word not in dictionary, notice shown
	SubmitAccepted                        // reveal started
)

// Config carries the optional parts of a session.
// Zero values fall back to the classic defaults.
type Config struct {
	Rules    Rules
	Messages Messages
	Ending   Ending
	Recorder Recorder
	Logger   *log.Logger
	// StartLevel is the 0-based level to start at.
	StartLevel int
}

// Session owns the whole puzzle state for one player.
// It is not safe for concurrent use; the platform calls it from a single
// update loop together with the scheduler callbacks.
type Session struct {
	dict     Dictionary
	levels   []Level
	surface  Surface
	sched    Scheduler
	rules    Rules
	scorer   Scorer
	msgs     Messages
	ending   Ending
	recorder Recorder
	logger   *log.Logger

	startLevel int
	started    bool

	levelIndex int
	target     []rune
	tiles      []Tile
	keys       map[rune]KeyState
	row, col   int // cursor: active row and next empty column
	phase      Phase
	accepting  bool
	generation uint64 // bumped on every grid setup; stale callbacks compare against it
}

// NewSession creates a session. Call Start to render the first level.
func NewSession(dict Dictionary, surface Surface, sched Scheduler, cfg Config) (*Session, error) {
	if dict == nil || surface == nil || sched == nil {
		return nil, errors.New("game: dictionary, surface and scheduler are required")
	}

	levels := dict.Levels()
	if len(levels) == 0 {
		return nil, errors.New("game: dictionary has no levels")
	}
	for i, lvl := range levels {
		if lvl.Width() == 0 {
			return nil, fmt.Errorf("game: level %d has an empty target", i+1)
		}
	}
	if cfg.StartLevel < 0 || cfg.StartLevel >= len(levels) {
		return nil, fmt.Errorf("game: start level %d out of range 1-%d", cfg.StartLevel+1, len(levels))
	}

	rules := cfg.Rules
	if rules.MaxTries == 0 {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	scorer, err := rules.Scoring.Scorer()
	if err != nil {
		return nil, err
	}

	msgs := cfg.Messages
	if msgs == (Messages{}) {
		msgs = DefaultMessages()
	}

	ending := cfg.Ending
	if len(ending.Rows) == 0 {
		ending = DefaultEnding()
	}
	if err := ending.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		dict:       dict,
		levels:     levels,
		surface:    surface,
		sched:      sched,
		rules:      rules,
		scorer:     scorer,
		msgs:       msgs,
		ending:     ending,
		recorder:   cfg.Recorder,
		logger:     logger,
		startLevel: cfg.StartLevel,
	}, nil
}

// Start renders the starting level and begins accepting input.
func (s *Session) Start() {
	if s.started {
		panic("game: session already started")
	}
	s.started = true
	s.levelIndex = s.startLevel
	s.setup()
	s.accepting = true
}

// Apply dispatches an input intent. Returns true if the intent changed
// anything or produced feedback.
func (s *Session) Apply(in core.Intent) bool {
	switch in.Action {
	case core.ActionLetter:
		return s.AppendLetter(in.Letter)
	case core.ActionDelete:
		return s.DeleteLetter()
	case core.ActionSubmit:
		return s.SubmitGuess() != SubmitIgnored
	default:
		return false
	}
}

// AppendLetter fills the next empty tile of the active row.
// It is a no-op while input is suspended, when the row is full, or when r
// is not a letter a-z after lowercasing.
func (s *Session) AppendLetter(r rune) bool {
	if !s.accepting {
		return false
	}
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return false
	}
	s.mustHaveActiveRow()

	width := len(s.target)
	if s.col >= width {
		return false
	}

	idx := s.row*width + s.col
	s.tiles[idx] = Tile{Letter: r, State: TileActive}
	s.col++
	s.surface.UpdateTile(idx, s.tiles[idx])
	return true
}

// DeleteLetter clears the last filled tile of the active row.
func (s *Session) DeleteLetter() bool {
	if !s.accepting || s.col == 0 {
		return false
	}
	s.mustHaveActiveRow()

	s.col--
	idx := s.row*len(s.target) + s.col
	s.tiles[idx] = Tile{}
	s.surface.UpdateTile(idx, s.tiles[idx])
	return true
}

// SubmitGuess validates the active row and starts its reveal.
// Rejected guesses show a notice and shake the row without changing state.
func (s *Session) SubmitGuess() SubmitResult {
	if !s.accepting {
		return SubmitIgnored
	}
	s.mustHaveActiveRow()

	width := len(s.target)
	active := s.activeIndices()

	if s.col != width {
		s.surface.ShowMessage(fmt.Sprintf(s.msgs.WordLength, width), s.rules.AlertDuration)
		s.surface.Shake(active)
		return SubmitWrongLength
	}

	guess := make([]rune, width)
	for i, idx := range active {
		guess[i] = s.tiles[idx].Letter
	}

	if !s.dict.Contains(string(guess)) {
		s.surface.ShowMessage(s.msgs.NotAccepted, s.rules.AlertDuration)
		s.surface.Shake(active)
		return SubmitNotAccepted
	}

	s.accepting = false
	s.phase = PhaseEvaluating
	s.reveal(guess)
	return SubmitAccepted
}

// setup renders a fresh grid for the current level.
func (s *Session) setup() {
	s.generation++

	lvl := s.levels[s.levelIndex]
	s.target = []rune(lvl.Target)
	width := len(s.target)

	s.tiles = make([]Tile, width*s.rules.MaxTries)
	s.keys = make(map[rune]KeyState)
	s.row, s.col = 0, 0
	s.phase = PhasePlaying

	s.surface.SetHeader(lvl.Header)
	s.surface.ResetKeys()
	s.surface.SetupGrid(width, s.rules.MaxTries)

	s.logger.Debug("level started", "level", s.levelIndex+1, "width", width)
}

// reveal flips the active row tile by tile and commits each
// classification as its flip completes. The outcome check runs once every
// tile of the row has been committed.
func (s *Session) reveal(guess []rune) {
	classes := s.scorer(guess, s.target)
	width := len(s.target)
	pending := width

	for i := range width {
		idx := s.row*width + i
		s.after(time.Duration(i)*s.rules.FlipDuration/2, func() {
			s.surface.Flip(idx, s.guard(func() {
				s.commit(idx, classes[i])
				pending--
				if pending == 0 {
					s.checkOutcome(guess)
				}
			}))
		})
	}
}

// commit writes a tile classification and upgrades its key.
func (s *Session) commit(idx int, st TileState) {
	t := s.tiles[idx]
	t.State = st
	s.tiles[idx] = t
	s.surface.UpdateTile(idx, t)

	k := s.rules.KeyMarking.apply(s.keys[t.Letter], st)
	s.keys[t.Letter] = k
	s.surface.UpdateKey(t.Letter, k)
}

// checkOutcome decides between win, loss and the next row.
func (s *Session) checkOutcome(guess []rune) {
	rowTiles := s.activeIndices()
	tries := s.row + 1
	s.row++
	s.col = 0

	lvl := s.levels[s.levelIndex]

	if string(guess) == string(s.target) {
		s.phase = PhaseWon
		s.surface.ShowMessage(lvl.WinMessage, s.rules.OutcomeDelay)
		s.dance(rowTiles)
		s.record(Event{Kind: EventLevelWon, Level: s.levelIndex + 1, Target: lvl.Target, Tries: tries})
		s.logger.Debug("level won", "level", s.levelIndex+1, "tries", tries)
		s.after(s.rules.OutcomeDelay, s.nextLevel)
		return
	}

	if s.row >= s.rules.MaxTries {
		s.phase = PhaseLost
		s.surface.ShowMessage(s.msgs.Lost, s.rules.OutcomeDelay)
		s.record(Event{Kind: EventLevelLost, Level: s.levelIndex + 1, Target: lvl.Target, Tries: tries})
		s.logger.Debug("level lost", "level", s.levelIndex+1)
		s.after(s.rules.OutcomeDelay, s.reset)
		return
	}

	s.phase = PhasePlaying
	s.accepting = true
}

// dance plays the win effect with a short stagger between tiles.
func (s *Session) dance(indices []int) {
	for i, idx := range indices {
		s.after(time.Duration(i)*s.rules.DanceDuration/5, func() {
			s.surface.Dance([]int{idx})
		})
	}
}

// nextLevel advances one level, or shows the ending after the last one.
func (s *Session) nextLevel() {
	s.levelIndex++
	if s.levelIndex == len(s.levels) {
		s.showEnding()
		return
	}
	s.setup()
	s.accepting = true
}

// reset starts over from the first level.
func (s *Session) reset() {
	s.levelIndex = 0
	s.setup()
	s.accepting = true
}

// showEnding replaces the grid with the closing message and reveals it.
// No further input is accepted.
func (s *Session) showEnding() {
	s.generation++
	s.phase = PhaseEnded
	s.accepting = false

	width, rows := s.ending.Size()
	cells := s.ending.Cells()
	s.tiles = make([]Tile, len(cells))
	s.target = nil
	s.row, s.col = 0, 0

	s.surface.HideKeyboard()
	s.surface.SetupGrid(width, rows)
	s.record(Event{Kind: EventCompleted, Level: len(s.levels)})
	s.logger.Debug("campaign completed")

	for idx, letter := range cells {
		s.after(time.Duration(idx)*s.rules.FlipDuration/4, func() {
			s.surface.Flip(idx, s.guard(func() {
				if letter == 0 {
					return
				}
				s.tiles[idx] = Tile{Letter: letter, State: TileCorrect}
				s.surface.UpdateTile(idx, s.tiles[idx])
			}))
		})
	}
}

// after schedules fn unless the grid has been set up again in between.
func (s *Session) after(d time.Duration, fn func()) {
	s.sched.After(d, s.guard(fn))
}

// guard wraps fn so it runs at most once, and only while the session is
// still on the generation it was created in.
func (s *Session) guard(fn func()) func() {
	gen := s.generation
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if gen != s.generation {
			s.logger.Debug("dropped stale callback", "generation", gen, "current", s.generation)
			return
		}
		fn()
	}
}

// record forwards an event to the recorder, if any.
func (s *Session) record(ev Event) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ev); err != nil {
		s.logger.Warn("could not record event", "kind", ev.Kind, "level", ev.Level, "error", err)
	}
}

// activeIndices returns the grid indices of the filled tiles in the
// active row, left to right.
func (s *Session) activeIndices() []int {
	width := len(s.target)
	indices := make([]int, 0, s.col)
	for c := range s.col {
		indices = append(indices, s.row*width+c)
	}
	return indices
}

func (s *Session) mustHaveActiveRow() {
	if !s.started || s.target == nil || s.row >= s.rules.MaxTries {
		panic(fmt.Sprintf("game: no active row (phase %s, row %d)", s.phase, s.row))
	}
}
