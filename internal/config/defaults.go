package config

import (
	_ "embed"

	"github.com/vovakirdan/termo/internal/game"
)

//go:embed defaults/termo.yaml
var defaultTermoYAML []byte

// DefaultTermoConfig returns the built-in configuration.
func DefaultTermoConfig() TermoConfig {
	levels := make([]LevelConfig, len(game.DefaultLevels))
	for i, lvl := range game.DefaultLevels {
		levels[i] = LevelConfig{Target: lvl.Target, Header: lvl.Header, WinMessage: lvl.WinMessage}
	}

	msgs := game.DefaultMessages()
	return TermoConfig{
		Levels: levels,
		Rules: RulesConfig{
			MaxTries:   game.DefaultMaxTries,
			Scoring:    string(game.ScoringNaive),
			KeyMarking: string(game.KeyMarkingPriority),
		},
		Timing: TimingConfig{
			FlipMS:     750,
			FlipAnimMS: 250,
			DanceMS:    500,
			ShakeMS:    250,
			AlertMS:    1000,
			OutcomeMS:  2000,
		},
		Messages: MessagesConfig{
			WordLength:  msgs.WordLength,
			NotAccepted: msgs.NotAccepted,
			Lost:        msgs.Lost,
		},
		Ending: game.DefaultEnding().Rows,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTermoYAML
}
