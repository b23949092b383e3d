package game

import (
	"fmt"
	"slices"
)

// Scorer classifies each letter of guess against target.
// Both words have the same number of runes.
type Scorer func(guess, target []rune) []TileState

// ScoreNaive classifies each position independently: an exact match is
// correct, any other letter that occurs anywhere in the target is in the
// wrong location, everything else is wrong. Repeated letters are not
// counted, so a letter that appears once in the target can be reported as
// wrong-location for every extra occurrence in the guess.
func ScoreNaive(guess, target []rune) []TileState {
	res := make([]TileState, len(guess))
	for i, r := range guess {
		switch {
		case i < len(target) && target[i] == r:
			res[i] = TileCorrect
		case slices.Contains(target, r):
			res[i] = TileWrongLocation
		default:
			res[i] = TileWrong
		}
	}
	return res
}

// ScoreTwoPass is the duplicate-aware scorer: exact matches first, then
// wrong-location marks limited to the target letters not already matched.
func ScoreTwoPass(guess, target []rune) []TileState {
	res := make([]TileState, len(guess))
	remaining := make(map[rune]int, len(target))

	for i, r := range guess {
		if i < len(target) && target[i] == r {
			res[i] = TileCorrect
			continue
		}
		if i < len(target) {
			remaining[target[i]]++
		}
	}

	for i, r := range guess {
		if res[i] == TileCorrect {
			continue
		}
		if remaining[r] > 0 {
			res[i] = TileWrongLocation
			remaining[r]--
		} else {
			res[i] = TileWrong
		}
	}
	return res
}

// Scoring names a scorer in configuration.
type Scoring string

const (
	ScoringNaive   Scoring = "naive"
	ScoringTwoPass Scoring = "two-pass"
)

// Scorer returns the scorer for the name.
func (s Scoring) Scorer() (Scorer, error) {
	switch s {
	case ScoringNaive, "":
		return ScoreNaive, nil
	case ScoringTwoPass:
		return ScoreTwoPass, nil
	default:
		return nil, fmt.Errorf("game: unknown scoring %q", string(s))
	}
}

// KeyMarking controls how a key's state changes when a letter is classified.
type KeyMarking string

const (
	// KeyMarkingPriority never lets a key lose a better classification:
	// correct beats wrong-location, which beats wrong.
	KeyMarkingPriority KeyMarking = "priority"
	// KeyMarkingOverwrite applies every classification as it is committed,
	// so the last tile revealed for a letter decides the key.
	KeyMarkingOverwrite KeyMarking = "overwrite"
)

// Validate reports an error for unknown markings.
func (m KeyMarking) Validate() error {
	switch m {
	case KeyMarkingPriority, KeyMarkingOverwrite, "":
		return nil
	default:
		return fmt.Errorf("game: unknown key marking %q", string(m))
	}
}

// apply returns the key state after a tile classified as s is revealed.
func (m KeyMarking) apply(current KeyState, s TileState) KeyState {
	next := keyStateFor(s)
	if m == KeyMarkingOverwrite {
		return next
	}
	if next > current {
		return next
	}
	return current
}
