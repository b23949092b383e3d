package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termo/internal/platform/tui"
	"github.com/vovakirdan/termo/internal/storage"
)

var (
	flagStatsTUI  bool
	flagStatsRuns int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run statistics",
	Long: `Display wins and losses per level and the most recent runs.

Examples:
  termo stats
  termo stats --runs 5
  termo stats --tui`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse the statistics interactively")
	statsCmd.Flags().IntVar(&flagStatsRuns, "runs", 10, "Number of recent runs to list")
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagStatsTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunStats(store, width, height)
	}

	if err := printStats(store); err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	return nil
}

func printStats(store *storage.Store) error {
	totals, err := store.Totals()
	if err != nil {
		return err
	}
	levels, err := store.LevelStats()
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(flagStatsRuns)
	if err != nil {
		return err
	}

	fmt.Println("Termo stats")
	fmt.Println()
	fmt.Printf("Runs: %d  Completed: %d  Levels won: %d  Lost: %d\n",
		totals.Runs, totals.Completed, totals.Wins, totals.Losses)
	fmt.Println()

	if totals.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termo play' to start the first run!")
		return nil
	}

	// Print level table
	fmt.Printf("  %-5s  %-8s  %-4s  %-6s  %s\n", "Level", "Word", "Wins", "Losses", "Avg tries")
	fmt.Printf("  %-5s  %-8s  %-4s  %-6s  %s\n", "-----", "----", "----", "------", "---------")
	for _, l := range levels {
		fmt.Printf("  %-5d  %-8s  %-4d  %-6d  %.1f\n", l.Level, l.Target, l.Wins, l.Losses, l.AvgTries)
	}
	fmt.Println()

	// Print recent runs
	fmt.Println("Recent runs:")
	for _, r := range runs {
		status := "open"
		switch {
		case r.Completed:
			status = "completed"
		case !r.FinishedAt.IsZero():
			status = "quit"
		}
		fmt.Printf("  %-14s  %s  best %-2d  won %-2d  lost %-2d  %s\n",
			r.Player, r.StartedAt.Format("2006-01-02 15:04"), r.BestLevel, r.Wins, r.Losses, status)
	}
	return nil
}
