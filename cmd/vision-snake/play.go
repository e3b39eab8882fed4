package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/imjvdn/vision-snake/internal/config"
	"github.com/imjvdn/vision-snake/internal/core"
	"github.com/imjvdn/vision-snake/internal/game"
	"github.com/imjvdn/vision-snake/internal/gesture"
	"github.com/imjvdn/vision-snake/internal/platform/tui"
	"github.com/imjvdn/vision-snake/internal/state"
	"github.com/imjvdn/vision-snake/internal/storage"
	"github.com/imjvdn/vision-snake/internal/vision"
	"github.com/imjvdn/vision-snake/internal/vision/bridge"
)

var (
	flagSource     string
	flagListen     string
	flagCamera     int
	flagConfig     string
	flagDifficulty string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Start a game session with the chosen landmark source.

With the default bridge source the command serves a tracking page on the
listen address. Open it in a browser, allow camera access, and steer the
snake with your index finger. Hold an open palm for two seconds to reset.

Controls:
  Enter/Space - Start (menu / after game over)
  P/Esc       - Pause and resume
  R           - Restart after game over
  M           - Back to menu
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  vision-snake play
  vision-snake play --source demo
  vision-snake play --camera 1 --listen :9000
  vision-snake play --difficulty hard --record ./sessions`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSource, "source", "bridge", "Landmark source: bridge, demo")
	playCmd.Flags().StringVar(&flagListen, "listen", "", "Bridge listen address (default :8089, or $VISION_SNAKE_LISTEN)")
	playCmd.Flags().IntVar(&flagCamera, "camera", 0, "Camera index for the tracking page")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Directory for landmark session recordings")
}

// listenAddr resolves the bridge address: flag, env, then default.
func listenAddr() string {
	if flagListen != "" {
		return flagListen
	}
	if addr := os.Getenv("VISION_SNAKE_LISTEN"); addr != "" {
		return addr
	}
	return ":8089"
}

// loadConfig loads the game configuration and applies the difficulty
// preset from the command line.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	var source vision.Source
	switch flagSource {
	case "bridge":
		source = bridge.New(bridge.Config{
			Addr:   listenAddr(),
			Camera: flagCamera,
			PlayW:  cfg.Engine.PlayfieldW,
			PlayH:  cfg.Engine.PlayfieldH,
			MaxFPS: flagFPS,
			Logger: logger,
		})
	case "demo":
		source = vision.NewDemoSource(cfg.Engine.PlayfieldW, cfg.Engine.PlayfieldH, flagFPS)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown source %q (want bridge or demo)\n", flagSource)
		os.Exit(1)
	}

	var recorder *vision.Recorder
	if flagRecord != "" {
		var err error
		recorder, err = vision.NewRecorder(flagRecord)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot start recording: %v\n", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	runSession(source, cfg, recorder)
}

// runSession wires the source into the game loop and runs the TUI.
// Shared by play and replay.
func runSession(source vision.Source, cfg config.Config, recorder *vision.Recorder) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A source that cannot start is fatal: without landmarks there is no
	// way to steer.
	if err := source.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot acquire landmark source: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	if srv, ok := source.(*bridge.Server); ok {
		fmt.Printf("Open http://localhost%s in a browser to start tracking.\n", srv.Addr())
	}

	runtime := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	runtime.PlayW = cfg.Engine.PlayfieldW
	runtime.PlayH = cfg.Engine.PlayfieldH

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	engine := game.New(cfg.Engine, cfg.Difficulty)
	machine := state.New(engine, runtime.Seed)
	classifier := gesture.NewClassifier(cfg.Vision)

	runErr := tui.Run(tui.Options{
		Source:     source,
		Machine:    machine,
		Classifier: classifier,
		Store:      store,
		Recorder:   recorder,
		Config:     cfg,
		Runtime:    runtime,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
