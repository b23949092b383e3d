package game

import "time"

// Surface renders the puzzle and plays its effects. The session calls it
// from the same thread that delivers input and scheduler callbacks.
type Surface interface {
	// SetupGrid replaces the grid with width*rows empty tiles.
	SetupGrid(width, rows int)
	SetHeader(text string)
	UpdateTile(index int, t Tile)
	UpdateKey(letter rune, s KeyState)
	// ResetKeys returns every key to KeyNormal.
	ResetKeys()
	// Flip plays the flip effect on a tile and calls done exactly once
	// when it completes.
	Flip(index int, done func())
	Shake(indices []int)
	Dance(indices []int)
	// ShowMessage shows a transient notice. A zero duration keeps it
	// until it is cleared by the surface.
	ShowMessage(text string, d time.Duration)
	HideKeyboard()
}

// Dictionary validates guesses and provides the level sequence.
type Dictionary interface {
	Contains(word string) bool
	Levels() []Level
}

// Scheduler runs fire-once deferred callbacks on the session's thread.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// EventKind identifies a recorded session event.
type EventKind string

const (
	EventLevelWon  EventKind = "won"
	EventLevelLost EventKind = "lost"
	EventCompleted EventKind = "completed"
)

// Event describes a level outcome or the completion of the campaign.
// Level is 1-based; Tries is the number of submitted rows.
type Event struct {
	Kind   EventKind
	Level  int
	Target string
	Tries  int
}

// Recorder receives session events, e.g. for run history.
type Recorder interface {
	Record(ev Event) error
}
