// Package config provides YAML-based configuration loading and rule
// presets for the word puzzle.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/vovakirdan/termo/internal/game"
)

// TermoConfig contains the whole puzzle configuration.
type TermoConfig struct {
	Levels   []LevelConfig  `yaml:"levels"`
	Rules    RulesConfig    `yaml:"rules"`
	Timing   TimingConfig   `yaml:"timing"`
	Messages MessagesConfig `yaml:"messages"`
	Ending   []string       `yaml:"ending"`
}

// LevelConfig defines one level of the campaign.
type LevelConfig struct {
	Target     string `yaml:"target"`
	Header     string `yaml:"header"`
	WinMessage string `yaml:"win_message"`
}

// RulesConfig defines the rule switches of a session.
type RulesConfig struct {
	MaxTries   int    `yaml:"max_tries"`
	Scoring    string `yaml:"scoring"`     // "naive" or "two-pass"
	KeyMarking string `yaml:"key_marking"` // "priority" or "overwrite"
}

// TimingConfig defines animation and delay timings in milliseconds.
type TimingConfig struct {
	FlipMS     int `yaml:"flip_ms"`      // reveal stagger base
	FlipAnimMS int `yaml:"flip_anim_ms"` // length of one tile flip on screen
	DanceMS    int `yaml:"dance_ms"`
	ShakeMS    int `yaml:"shake_ms"`
	AlertMS    int `yaml:"alert_ms"`
	OutcomeMS  int `yaml:"outcome_ms"` // pause after a win or a loss
}

// MessagesConfig defines the notices shown to the player.
type MessagesConfig struct {
	WordLength  string `yaml:"word_length"` // must contain %d
	NotAccepted string `yaml:"not_accepted"`
	Lost        string `yaml:"lost"`
}

// Validate reports the first problem that would stop a session from running.
func (c TermoConfig) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("config: at least one level is required")
	}
	for i, lvl := range c.Levels {
		if lvl.Target == "" {
			return fmt.Errorf("config: level %d has no target", i+1)
		}
		for _, r := range lvl.Target {
			if r = unicode.ToLower(r); r < 'a' || r > 'z' {
				return fmt.Errorf("config: level %d target %q must only contain letters a-z", i+1, lvl.Target)
			}
		}
	}
	if c.Rules.MaxTries < 1 {
		return fmt.Errorf("config: rules.max_tries must be positive, got %d", c.Rules.MaxTries)
	}
	t := c.Timing
	for name, v := range map[string]int{
		"flip_ms": t.FlipMS, "flip_anim_ms": t.FlipAnimMS, "dance_ms": t.DanceMS,
		"shake_ms": t.ShakeMS, "alert_ms": t.AlertMS, "outcome_ms": t.OutcomeMS,
	} {
		if v < 0 {
			return fmt.Errorf("config: timing.%s must not be negative", name)
		}
	}
	if t.AlertMS == 0 {
		return errors.New("config: timing.alert_ms must be positive")
	}
	if t.OutcomeMS == 0 {
		return errors.New("config: timing.outcome_ms must be positive")
	}
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !strings.Contains(c.Messages.WordLength, "%d") {
		return fmt.Errorf("config: messages.word_length %q must contain %%d", c.Messages.WordLength)
	}
	if len(c.Ending) > 0 {
		if err := c.GameEnding().Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// GameLevels converts the level list for the game package.
func (c TermoConfig) GameLevels() []game.Level {
	levels := make([]game.Level, len(c.Levels))
	for i, lvl := range c.Levels {
		levels[i] = game.Level{
			Target:     strings.Map(unicode.ToLower, lvl.Target),
			Header:     lvl.Header,
			WinMessage: lvl.WinMessage,
		}
	}
	return levels
}

// GameRules converts the rules and timings for the game package.
func (c TermoConfig) GameRules() game.Rules {
	return game.Rules{
		MaxTries:      c.Rules.MaxTries,
		Scoring:       game.Scoring(c.Rules.Scoring),
		KeyMarking:    game.KeyMarking(c.Rules.KeyMarking),
		FlipDuration:  ms(c.Timing.FlipMS),
		DanceDuration: ms(c.Timing.DanceMS),
		AlertDuration: ms(c.Timing.AlertMS),
		OutcomeDelay:  ms(c.Timing.OutcomeMS),
	}
}

// GameMessages converts the notices for the game package.
func (c TermoConfig) GameMessages() game.Messages {
	return game.Messages{
		WordLength:  c.Messages.WordLength,
		NotAccepted: c.Messages.NotAccepted,
		Lost:        c.Messages.Lost,
	}
}

// GameEnding converts the closing grid for the game package.
func (c TermoConfig) GameEnding() game.Ending {
	return game.Ending{Rows: c.Ending}
}

// FlipAnimation returns the on-screen length of one tile flip.
func (c TermoConfig) FlipAnimation() time.Duration {
	return ms(c.Timing.FlipAnimMS)
}

// ShakeDuration returns the on-screen length of a row shake.
func (c TermoConfig) ShakeDuration() time.Duration {
	return ms(c.Timing.ShakeMS)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
