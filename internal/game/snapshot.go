package game

import "maps"

// Snapshot captures the session state for tests and debugging.
type Snapshot struct {
	Level      int // 1-based; len(levels)+1 once ended
	Target     string
	Phase      Phase
	Accepting  bool
	Row, Col   int
	Tiles      []Tile
	Keys       map[rune]KeyState
	Generation uint64
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	tiles := make([]Tile, len(s.tiles))
	copy(tiles, s.tiles)

	return Snapshot{
		Level:      s.levelIndex + 1,
		Target:     string(s.target),
		Phase:      s.phase,
		Accepting:  s.accepting,
		Row:        s.row,
		Col:        s.col,
		Tiles:      tiles,
		Keys:       maps.Clone(s.keys),
		Generation: s.generation,
	}
}

// LevelIndex returns the 0-based current level; it equals the number of
// levels once the ending is shown.
func (s *Session) LevelIndex() int {
	return s.levelIndex
}

// LevelCount returns the number of levels in the campaign.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Phase returns the current outcome phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Accepting reports whether input intents are currently processed.
func (s *Session) Accepting() bool {
	return s.accepting
}

// Key returns the keyboard state of a letter.
func (s *Session) Key(letter rune) KeyState {
	return s.keys[letter]
}
