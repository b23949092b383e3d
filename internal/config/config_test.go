package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termo/internal/game"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTermoConfig(), cfg)
}

func TestDefaultsConvertToGameDefaults(t *testing.T) {
	cfg := DefaultTermoConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.DefaultLevels, cfg.GameLevels())
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
	assert.Equal(t, game.DefaultMessages(), cfg.GameMessages())
	assert.Equal(t, game.DefaultEnding(), cfg.GameEnding())
	assert.Equal(t, 250*time.Millisecond, cfg.FlipAnimation())
	assert.Equal(t, 250*time.Millisecond, cfg.ShakeDuration())
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
rules:
  scoring: two-pass
timing:
  outcome_ms: 500
`))
	require.NoError(t, err)

	assert.Equal(t, "two-pass", cfg.Rules.Scoring)
	assert.Equal(t, game.DefaultMaxTries, cfg.Rules.MaxTries)
	assert.Equal(t, 500, cfg.Timing.OutcomeMS)
	assert.Equal(t, 750, cfg.Timing.FlipMS)
	assert.Len(t, cfg.Levels, 10)
}

func TestParseReplacesLevelList(t *testing.T) {
	cfg, err := Parse([]byte(`
levels:
  - target: Gato
    header: um
    win_message: boa
`))
	require.NoError(t, err)
	require.Len(t, cfg.Levels, 1)
	assert.Equal(t, []game.Level{{Target: "gato", Header: "um", WinMessage: "boa"}}, cfg.GameLevels())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TermoConfig)
		errMsg string
	}{
		{"no levels", func(c *TermoConfig) { c.Levels = nil }, "at least one level"},
		{"empty target", func(c *TermoConfig) { c.Levels[0].Target = "" }, "has no target"},
		{"accented target", func(c *TermoConfig) { c.Levels[0].Target = "você" }, "letters a-z"},
		{"zero tries", func(c *TermoConfig) { c.Rules.MaxTries = 0 }, "max_tries"},
		{"unknown scoring", func(c *TermoConfig) { c.Rules.Scoring = "fuzzy" }, "scoring"},
		{"unknown marking", func(c *TermoConfig) { c.Rules.KeyMarking = "sticky" }, "key marking"},
		{"negative alert", func(c *TermoConfig) { c.Timing.AlertMS = -1 }, "timing.alert_ms"},
		{"negative flip", func(c *TermoConfig) { c.Timing.FlipMS = -1 }, "timing.flip_ms"},
		{"negative dance", func(c *TermoConfig) { c.Timing.DanceMS = -1 }, "timing.dance_ms"},
		{"negative outcome", func(c *TermoConfig) { c.Timing.OutcomeMS = -1 }, "timing.outcome_ms"},
		{"negative shake", func(c *TermoConfig) { c.Timing.ShakeMS = -1 }, "timing.shake_ms"},
		{"zero alert", func(c *TermoConfig) { c.Timing.AlertMS = 0 }, "timing.alert_ms must be positive"},
		{"zero outcome", func(c *TermoConfig) { c.Timing.OutcomeMS = 0 }, "timing.outcome_ms must be positive"},
		{"length notice without count", func(c *TermoConfig) { c.Messages.WordLength = "too short" }, "%d"},
		{"ragged ending", func(c *TermoConfig) { c.Ending = []string{"abc", "ab"} }, "ending row 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTermoConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  max_tries: 6\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Rules.MaxTries)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [not a map"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTermoConfig(), cfg)

	// Local configs directory
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "termo.yaml"), []byte("rules:\n  max_tries: 7\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rules.MaxTries)

	// User directory wins over the local one
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".termo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".termo", "termo.yaml"), []byte("rules:\n  max_tries: 5\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rules.MaxTries)

	// An invalid user file is skipped
	require.NoError(t, os.WriteFile(filepath.Join(home, ".termo", "termo.yaml"), []byte("rules:\n  max_tries: -1\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rules.MaxTries)
}

func TestApplyRulesPreset(t *testing.T) {
	tests := []struct {
		preset  RulesPreset
		scoring string
		marking string
	}{
		{RulesLegacy, "naive", "overwrite"},
		{RulesStandard, "naive", "priority"},
		{RulesFair, "two-pass", "priority"},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTermoConfig()
			require.NoError(t, ApplyRulesPreset(&cfg, tc.preset))
			assert.Equal(t, tc.scoring, cfg.Rules.Scoring)
			assert.Equal(t, tc.marking, cfg.Rules.KeyMarking)
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultTermoConfig()
	require.NoError(t, ApplyRulesPreset(&cfg, ""))
	assert.Equal(t, DefaultTermoConfig(), cfg)

	err := ApplyRulesPreset(&cfg, "hardcore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "legacy, standard, fair")
}

func TestRulesPresetsAllApply(t *testing.T) {
	assert.Equal(t, "legacy, standard, fair", RulesPresetNames())
	for _, p := range RulesPresets {
		cfg := DefaultTermoConfig()
		assert.NoError(t, ApplyRulesPreset(&cfg, p), "preset %s", p)
	}
}
