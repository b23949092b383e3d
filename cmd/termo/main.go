// termo is a ten-level word-guessing puzzle for the terminal.
//
// Usage:
//
//	termo play               - Play the puzzle in this terminal
//	termo serve              - Start SSH server for remote play
//	termo levels             - List the configured levels
//	termo stats              - Show run statistics
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Use a custom puzzle config YAML
//	--rules <preset>  - Rules preset: legacy, standard, fair
//	--words <path>    - Use a custom word list
//	--db <path>       - Set database path (default: ~/.termo/termo.db)
//
// A .env file in the working directory is loaded first; TERMO_DB,
// TERMO_SSH_ADDR and TERMO_HOST_KEY override the flag defaults.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termo/internal/config"
	"github.com/vovakirdan/termo/internal/storage"
	"github.com/vovakirdan/termo/internal/words"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagRules     string
	flagWordsPath string
	flagDBPath    string
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termo",
		Short: "Termo - guess ten Portuguese words in your terminal",
		Long: `Termo is a ten-level word-guessing puzzle. Each level hides a word;
you have nine tries to find it. Tiles turn green for a letter in the right
place, yellow for a letter that appears elsewhere in the word.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  levels   - Show the level table
  stats    - View run statistics

Examples:
  termo play
  termo play --level 4 --rules fair
  termo serve --ssh :2222
  termo stats --tui`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules preset: "+config.RulesPresetNames())
	rootCmd.PersistentFlags().StringVar(&flagWordsPath, "words", "", "Path to a word list (one word per line)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("TERMO_DB", storage.DefaultPath), "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	return rootCmd
}

// envOr returns the environment variable key, or def when it is unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// loadPuzzle resolves the puzzle config, the rules preset and the dictionary
// from the global flags.
func loadPuzzle() (config.TermoConfig, *words.Dictionary, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if err := config.ApplyRulesPreset(&cfg, config.RulesPreset(flagRules)); err != nil {
		return cfg, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	levels := cfg.GameLevels()
	if flagWordsPath == "" {
		return cfg, words.Default(levels), nil
	}
	dict, err := words.Load(flagWordsPath, levels)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, dict, nil
}
