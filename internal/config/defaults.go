package config

import (
	_ "embed"
)

//go:embed defaults/vision-snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Vision: VisionConfig{
			MinConfidence: 0.7,
			PalmMargin:    0.1,
			HoldSeconds:   2.0,
			StaleAfterMs:  1000,
		},
		Engine: EngineConfig{
			PlayfieldW:      640,
			PlayfieldH:      480,
			CollisionRadius: 10,
			BaseStep:        12,
			MaxStep:         26,
			GrowthPerFood:   5,
			PointsPerFood:   10,
			MinSelfLen:      6,
			ExemptSegments:  2,
			FoodMargin:      50,
			PlaceAttempts:   64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
