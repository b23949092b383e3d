package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Long:  `Shows the levels of the active config, in play order, with the rules in effect.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, dict, err := loadPuzzle()
	if err != nil {
		return err
	}

	levels := cfg.GameLevels()
	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxHeaderLen := len("Header")
	for _, l := range levels {
		if n := len([]rune(l.Header)); n > maxHeaderLen {
			maxHeaderLen = n
		}
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "Level", maxHeaderLen, "Header", "Letters", "Words")
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "-----", maxHeaderLen, "------", "-------", "-----")

	// Print levels; the target stays hidden
	for i, l := range levels {
		fmt.Printf("  %-5d  %-*s  %-7d  %d\n", i+1, maxHeaderLen, l.Header, l.Width(), len(dict.WithLength(l.Width())))
	}

	rules := cfg.GameRules()
	fmt.Println()
	fmt.Printf("Tries per level: %d\n", rules.MaxTries)
	fmt.Printf("Scoring: %s, key marking: %s\n", rules.Scoring, rules.KeyMarking)
	fmt.Println()
	fmt.Println("Run 'termo play --level <n>' to start on a level.")
	return nil
}
