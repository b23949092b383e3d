package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termo/internal/core"
	"github.com/vovakirdan/termo/internal/platform/tui"
	"github.com/vovakirdan/termo/internal/storage"
)

var (
	flagLevel   int
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the ten-level puzzle in this terminal.

Controls:
  Letters    - Type a letter
  Backspace  - Delete the last letter
  Enter      - Submit the guess
  Mouse      - Click the on-screen keyboard
  ?          - Toggle help
  Esc/Ctrl+C - Quit

Rules presets:
  legacy   - Naive scoring, keys show the last reveal
  standard - Naive scoring, keys never get worse (default)
  fair     - Repeated letters count against the target

Examples:
  termo play
  termo play --level 8
  termo play --rules fair
  termo play --config ./my-termo.yaml --log ./termo.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, dict, err := loadPuzzle()
	if err != nil {
		return err
	}
	if flagLevel < 1 || flagLevel > len(cfg.Levels) {
		return fmt.Errorf("level must be between 1 and %d", len(cfg.Levels))
	}

	// The TUI owns stdout, so logs only go to a file
	var logger *log.Logger
	if flagLogPath != "" {
		f, logErr := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if logErr != nil {
			return fmt.Errorf("cannot open log file: %w", logErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "termo",
			Level:           log.DebugLevel,
		})
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:     cfg,
		Dict:       dict,
		Logger:     logger,
		StartLevel: flagLevel - 1,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		return tui.Run(opts)
	}
	defer store.Close()

	return playRecorded(store, localPlayer(), opts, tui.Run)
}

// playRecorded runs play with a recorder for a new run and finishes the run
// when play returns, whether or not it failed.
func playRecorded(store *storage.Store, player string, opts tui.Options, play func(tui.Options) error) error {
	run, err := store.StartRun(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not start run: %v\n", err)
		return play(opts)
	}
	opts.Recorder = run

	playErr := play(opts)
	if err := run.Finish(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not finish run: %v\n", err)
	}
	return playErr
}

// localPlayer names the player of a local game after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
