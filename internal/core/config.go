package core

// RuntimeConfig contains runtime parameters passed to the engine and the
// platform at initialization.
type RuntimeConfig struct {
	ScreenW  int     // Terminal width in characters
	ScreenH  int     // Terminal height in characters
	TickRate int     // Simulation ticks per second (default 30)
	Seed     int64   // RNG seed for deterministic food placement
	PlayW    float64 // Playfield width in pixel units
	PlayH    float64 // Playfield height in pixel units
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The playfield matches a typical webcam frame.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
		PlayW:    640,
		PlayH:    480,
	}
}
