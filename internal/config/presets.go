package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/termo/internal/game"
)

// RulesPreset represents a named combination of rule switches.
type RulesPreset string

const (
	// RulesLegacy is the classic behaviour: naive scoring and keys
	// that take whatever classification was revealed last.
	RulesLegacy RulesPreset = "legacy"
	// RulesStandard keeps naive scoring but never downgrades a key.
	RulesStandard RulesPreset = "standard"
	// RulesFair counts repeated letters against the target.
	RulesFair RulesPreset = "fair"
)

// RulesPresets lists the presets in the order shown to users.
var RulesPresets = []RulesPreset{RulesLegacy, RulesStandard, RulesFair}

// RulesPresetNames returns the preset names joined for help and error text.
func RulesPresetNames() string {
	return strings.Join(lo.Map(RulesPresets, func(p RulesPreset, _ int) string { return string(p) }), ", ")
}

// ApplyRulesPreset modifies the config based on a rules preset.
// An empty preset leaves the config unchanged.
func ApplyRulesPreset(cfg *TermoConfig, preset RulesPreset) error {
	switch preset {
	case "":
		return nil
	case RulesLegacy:
		cfg.Rules.Scoring = string(game.ScoringNaive)
		cfg.Rules.KeyMarking = string(game.KeyMarkingOverwrite)
	case RulesStandard:
		cfg.Rules.Scoring = string(game.ScoringNaive)
		cfg.Rules.KeyMarking = string(game.KeyMarkingPriority)
	case RulesFair:
		cfg.Rules.Scoring = string(game.ScoringTwoPass)
		cfg.Rules.KeyMarking = string(game.KeyMarkingPriority)
	default:
		return fmt.Errorf("config: unknown rules preset %q (want one of %s)", string(preset), RulesPresetNames())
	}
	return nil
}
