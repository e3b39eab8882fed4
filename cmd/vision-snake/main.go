// vision-snake is a terminal snake game steered by your hand through a
// webcam. A browser page does the hand tracking and streams fingertip
// landmarks to the game over a local websocket.
//
// Usage:
//
//	vision-snake play             - Play with the webcam bridge
//	vision-snake play --source demo - Play with a synthetic hand (no camera)
//	vision-snake replay <file>    - Re-run a recorded landmark session
//	vision-snake track            - Headless gesture diagnostics
//	vision-snake scores           - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.vision-snake/runs.db)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "vision-snake",
	})
)

func main() {
	// Local overrides for development, absent in normal installs.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vision-snake",
	Short: "Snake steered by your hand through a webcam",
	Long: `vision-snake turns your webcam into a game controller. A browser
page tracks your hand and streams index fingertip positions to the
terminal, where the snake follows your finger.

Available commands:
  play     - Start a game session
  replay   - Re-run a recorded landmark session
  track    - Print gesture diagnostics without the game
  scores   - View the run history

Examples:
  vision-snake play
  vision-snake play --source demo
  vision-snake play --camera 1 --difficulty hard
  vision-snake replay landmarks_a1b2c3d4_1700000000.jsonl
  vision-snake scores --interactive`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vision-snake/runs.db", "Path to the run database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(scoresCmd)
}
