package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/imjvdn/vision-snake/internal/platform/tui"
	"github.com/imjvdn/vision-snake/internal/storage"
)

var (
	flagInteractive bool
	flagClearRuns   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View the run history",
	Long: `Display the top 10 runs and aggregate statistics.

Examples:
  vision-snake scores
  vision-snake scores --interactive
  vision-snake scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vision-snake play' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-7s  %-8s  %s\n",
		"Rank", "Score", "Peak", "Food", "Time", "Source", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-7s  %-8s  %s\n",
		"----", "-----", "----", "----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6d  %-6d  %-7s  %-8s  %s\n",
			i+1, r.Score, r.PeakLength, r.FoodEaten,
			formatSecs(r.DurationSecs), r.Source,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Avg: %.0f   Food eaten: %d   Played: %s\n",
		stats.RunsCount, stats.BestScore, stats.AvgScore, stats.TotalFood,
		stats.TotalPlayed.Round(time.Second).String())
}

func formatSecs(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
