package game

import (
	"fmt"
	"time"
)

// Compiled-in defaults.
const (
	DefaultMaxTries      = 9
	DefaultFlipDuration  = 750 * time.Millisecond
	DefaultDanceDuration = 500 * time.Millisecond
	DefaultAlertDuration = 1000 * time.Millisecond
	DefaultOutcomeDelay  = 2000 * time.Millisecond
)

// Rules holds the tunable parameters of a session.
type Rules struct {
	MaxTries   int
	Scoring    Scoring
	KeyMarking KeyMarking

	// FlipDuration paces the reveal: tile i starts flipping after
	// i*FlipDuration/2, ending tiles after i*FlipDuration/4.
	FlipDuration time.Duration
	// DanceDuration paces the win dance: tile i starts after i*DanceDuration/5.
	DanceDuration time.Duration
	// AlertDuration is how long validation notices stay visible.
	AlertDuration time.Duration
	// OutcomeDelay is the pause after a win or loss before the next level
	// or the reset. Win and loss notices stay visible for the same time.
	OutcomeDelay time.Duration
}

// DefaultRules returns the standard puzzle rules.
func DefaultRules() Rules {
	return Rules{
		MaxTries:      DefaultMaxTries,
		Scoring:       ScoringNaive,
		KeyMarking:    KeyMarkingPriority,
		FlipDuration:  DefaultFlipDuration,
		DanceDuration: DefaultDanceDuration,
		AlertDuration: DefaultAlertDuration,
		OutcomeDelay:  DefaultOutcomeDelay,
	}
}

// Validate checks the rules for values a session cannot run with.
func (r Rules) Validate() error {
	if r.MaxTries < 1 {
		return fmt.Errorf("game: max tries must be positive, got %d", r.MaxTries)
	}
	if _, err := r.Scoring.Scorer(); err != nil {
		return err
	}
	if err := r.KeyMarking.Validate(); err != nil {
		return err
	}
	if r.FlipDuration < 0 || r.DanceDuration < 0 || r.AlertDuration < 0 || r.OutcomeDelay < 0 {
		return fmt.Errorf("game: durations must not be negative")
	}
	// Notices with a zero duration never dismiss.
	if r.AlertDuration == 0 || r.OutcomeDelay == 0 {
		return fmt.Errorf("game: alert duration and outcome delay must be positive")
	}
	return nil
}

// Messages are the notices shown to the player.
type Messages struct {
	// WordLength is a format string receiving the target length.
	WordLength  string
	NotAccepted string
	Lost        string
}

// DefaultMessages returns the Portuguese notices shown to players.
func DefaultMessages() Messages {
	return Messages{
		WordLength:  "Só palavras com %d letras",
		NotAccepted: "Essa palavra não é aceita",
		Lost:        "Você perdeu! Tente novamente",
	}
}
