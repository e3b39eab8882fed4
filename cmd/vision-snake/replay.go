package main

import (
	"github.com/spf13/cobra"

	"github.com/imjvdn/vision-snake/internal/vision"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded landmark session",
	Long: `Play a game driven by a landmark recording instead of a camera.
Recordings are JSONL files produced by 'play --record'. Frames are
re-emitted on their original schedule, so a replayed session moves the
snake exactly as the recorded hand did.

Examples:
  vision-snake play --record ./sessions
  vision-snake replay ./sessions/landmarks_a1b2c3d4_1700000000.jsonl`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	source := vision.NewReplaySource(args[0])
	runSession(source, cfg, nil)
}
