package game

// TileState is the state of one letter slot in the grid.
type TileState int

const (
	TileEmpty TileState = iota
	TileActive
	TileCorrect
	TileWrongLocation
	TileWrong
)

// String returns a human-readable name for the state.
func (s TileState) String() string {
	switch s {
	case TileEmpty:
		return "empty"
	case TileActive:
		return "active"
	case TileCorrect:
		return "correct"
	case TileWrongLocation:
		return "wrong-location"
	case TileWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Tile is one letter slot. Letter is zero when the slot is empty.
type Tile struct {
	Letter rune
	State  TileState
}

// KeyState is the classification shown on an on-screen keyboard key.
type KeyState int

const (
	KeyNormal KeyState = iota
	KeyWrong
	KeyWrongLocation
	KeyCorrect
)

// String returns a human-readable name for the key state.
func (k KeyState) String() string {
	switch k {
	case KeyNormal:
		return "normal"
	case KeyWrong:
		return "wrong"
	case KeyWrongLocation:
		return "wrong-location"
	case KeyCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// keyStateFor maps a tile classification to the matching key state.
func keyStateFor(s TileState) KeyState {
	switch s {
	case TileCorrect:
		return KeyCorrect
	case TileWrongLocation:
		return KeyWrongLocation
	case TileWrong:
		return KeyWrong
	default:
		return KeyNormal
	}
}
