package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/imjvdn/vision-snake/internal/gesture"
	"github.com/imjvdn/vision-snake/internal/vision/bridge"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Print gesture diagnostics without the game",
	Long: `Run the landmark bridge headless and print what the gesture
classifier sees: fingertip position, palm state and reset hold progress.
Useful for checking lighting and camera placement before playing.

Examples:
  vision-snake track
  vision-snake track --listen :9000 --camera 1`,
	Run: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&flagListen, "listen", "", "Bridge listen address (default :8089, or $VISION_SNAKE_LISTEN)")
	trackCmd.Flags().IntVar(&flagCamera, "camera", 0, "Camera index for the tracking page")
	trackCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runTrack(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger.SetLevel(logLevelForTrack())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := bridge.New(bridge.Config{
		Addr:   listenAddr(),
		Camera: flagCamera,
		PlayW:  cfg.Engine.PlayfieldW,
		PlayH:  cfg.Engine.PlayfieldH,
		MaxFPS: flagFPS,
		Logger: logger,
	})
	if err := source.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot acquire landmark source: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	fmt.Printf("Open http://localhost%s in a browser, then watch this log.\n", source.Addr())
	fmt.Println("Press Ctrl+C to stop.")

	classifier := gesture.NewClassifier(cfg.Vision)
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-source.Frames():
			if !ok {
				return
			}
			now := time.Now()
			sig := classifier.Classify(frame.Landmarks, now.Sub(last))
			last = now

			switch {
			case sig.Fingertip == nil:
				logger.Info("no hand")
			case sig.ResetConfirmed:
				logger.Info("reset confirmed")
			case sig.PalmOpen:
				logger.Info("open palm",
					"hold", fmt.Sprintf("%.0f%%", classifier.HoldProgress()*100))
			default:
				logger.Info("tracking",
					"x", fmt.Sprintf("%.1f", sig.Fingertip.X),
					"y", fmt.Sprintf("%.1f", sig.Fingertip.Y))
			}
		}
	}
}

// logLevelForTrack keeps diagnostics visible even without --debug.
func logLevelForTrack() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
